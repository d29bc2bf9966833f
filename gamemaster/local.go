package gamemaster

import (
	"fmt"

	"github.com/jarvarvarvis/rostware23/game"
	"github.com/jarvarvarvis/rostware23/utils"
)

type local struct {
	initial  game.State
	state    game.State
	updateCh chan Update
	started  bool
	gameOver bool
}

// NewLocal referees a game starting from state.
func NewLocal(state game.State) GameMaster {
	return &local{initial: state}
}

func (l *local) Init() (game.State, UpdateGetter) {
	l.state = l.initial.SkipIfStuck()
	l.gameOver = l.state.IsOver()
	// A game has at most one update per fish tile
	l.updateCh = make(chan Update, game.MaxMoves+1)
	l.started = true

	return l.state, func() (Update, bool) {
		select {
		case u, ok := <-l.updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

func (l *local) State() game.State {
	return l.state
}

func (l *local) Play(team game.Team, move game.Move) error {
	if !l.started {
		return ErrNotStarted
	}
	if l.gameOver {
		return ErrGameOver
	}
	if team != l.state.CurrentTeam() {
		return fmt.Errorf("%w: %s played on turn %d", ErrOutOfTurn, team, l.state.Turn)
	}
	if utils.FindIndex(l.state.PossibleMoves(), move) < 0 {
		return fmt.Errorf("%w: %s by %s", game.ErrIllegalMove, move, team)
	}

	next, err := l.state.Apply(move)
	if err != nil {
		return err
	}
	skipped := next.SkipIfStuck()
	l.state = skipped
	l.gameOver = skipped.IsOver()

	l.updateCh <- Update{
		Team:    team,
		Move:    move,
		State:   skipped,
		Skipped: skipped.Turn != next.Turn,
		Over:    l.gameOver,
	}
	if l.gameOver {
		close(l.updateCh)
	}
	return nil
}
