package agent

import (
	"github.com/jarvarvarvis/rostware23/experiments/metrics"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/jarvarvarvis/rostware23/searcher"
	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns a move for the team to move and the metrics of the search (if collected).
	// The state must not require a skip.
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}

type searchAgent struct {
	searcher searcher.Searcher
}

func NewSearchAgent(s searcher.Searcher) Agent {
	return &searchAgent{searcher: s}
}

func (a *searchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	result, err := a.searcher.Search(state)
	if err != nil {
		return game.Move{}, result.Metric, err
	}
	return result.Move, result.Metric, nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays uniformly random legal moves.
func NewRandomAgent(rng *rand.Rand) Agent {
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{Depth: -1}, searcher.ErrNoMoves
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Depth: -1}, nil
}
