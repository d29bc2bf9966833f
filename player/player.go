package player

import (
	"errors"
	"fmt"

	"github.com/jarvarvarvis/rostware23/agent"
	"github.com/jarvarvarvis/rostware23/communication"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/rs/zerolog/log"
)

var ErrNoState = errors.New("move requested before any state was received")

// Player answers the move requests of one game.
type Player struct {
	Communicator communication.Communicator
	Agent        agent.Agent

	team     game.Team
	state    game.State
	hasTeam  bool
	hasState bool
}

func NewPlayer(comm communication.Communicator, a agent.Agent) *Player {
	return &Player{
		Communicator: comm,
		Agent:        a,
	}
}

// Play starts the player's turn loop and returns once the game is over.
func (p *Player) Play() (communication.Result, error) {
	for {
		msg, err := p.Communicator.Receive()
		if err != nil {
			return communication.Result{}, err
		}

		switch m := msg.(type) {
		case communication.Welcome:
			p.team, p.hasTeam = m.Team, true
			log.Info().Msgf("playing as team %s", m.Team)
		case communication.Memento:
			p.state, p.hasState = m.State, true
			log.Debug().Msgf("turn %d, fish %d to %d", m.State.Turn, m.State.Fish[game.One], m.State.Fish[game.Two])
		case communication.MoveRequest:
			if err := p.TakeTurn(); err != nil {
				return communication.Result{}, err
			}
		case communication.Result:
			logResult(p.team, m)
			return m, nil
		case communication.Left:
			log.Info().Msg("left the room")
			return communication.Result{}, nil
		}
	}
}

// TakeTurn finds and sends a move for the stored state.
func (p *Player) TakeTurn() error {
	if !p.hasState {
		return ErrNoState
	}
	state := p.state
	// The server does not count the turn of a stuck team
	if p.hasTeam && state.CurrentTeam() != p.team {
		state = state.Skip()
	}

	move, metric, err := p.Agent.FindMove(state)
	if err != nil {
		return fmt.Errorf("turn %d: %w", state.Turn, err)
	}
	log.Info().Msgf("turn %d: playing %s (depth %d, score %d, %s)", state.Turn, move, metric.Depth, metric.Score, metric.Duration)
	return p.Communicator.Send(move)
}

func logResult(team game.Team, r communication.Result) {
	switch {
	case r.Draw:
		log.Info().Msgf("game ended in a draw with %d fish each", r.Scores[game.One])
	case r.Winner == team:
		log.Info().Msgf("won %d to %d", r.Scores[team], r.Scores[team.Opponent()])
	default:
		log.Info().Msgf("lost %d to %d", r.Scores[team], r.Scores[team.Opponent()])
	}
}
