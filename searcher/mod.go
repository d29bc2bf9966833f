package searcher

import (
	"errors"

	"github.com/jarvarvarvis/rostware23/experiments/metrics"
	"github.com/jarvarvarvis/rostware23/game"
)

var (
	// ErrNoMoves is returned when asked to move for a team that cannot move.
	// Callers apply game.State.Skip first.
	ErrNoMoves   = errors.New("team to move has no legal moves")
	ErrTableMiss = errors.New("state not in transposition table")
)

type Searcher interface {
	Search(state game.State) (Result, error)
}

// Result of a search. Depth is the deepest completed iteration, or -1 when
// the budget ran out before any iteration finished and Move is only the
// first ordered move.
type Result struct {
	Move    game.Move
	HasMove bool
	Score   int
	Depth   int
	Metric  metrics.SearchMetric
}
