package gamemaster

import (
	"errors"

	"github.com/jarvarvarvis/rostware23/game"
)

var (
	ErrGameOver   = errors.New("game is over - no moves allowed")
	ErrOutOfTurn  = errors.New("team is not to move")
	ErrNotStarted = errors.New("game not initialized")
)

// Update is published after every accepted move. Skipped is set when the
// team after the mover was stuck and its turn was passed.
type Update struct {
	Team    game.Team
	Move    game.Move
	State   game.State
	Skipped bool
	Over    bool
}

// UpdateGetter returns the next pending update without blocking.
type UpdateGetter func() (Update, bool)

// GameMaster holds the authoritative state of one game and resolves moves.
type GameMaster interface {
	Init() (game.State, UpdateGetter)
	Play(team game.Team, move game.Move) error
	State() game.State
}
