package engine

import (
	"testing"

	"github.com/jarvarvarvis/rostware23/agent"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/jarvarvarvis/rostware23/searcher"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLocalEngine(t *testing.T) {
	t.Run("random games", func(t *testing.T) {
		for seed := uint64(0); seed < 5; seed++ {
			state := game.GenerateState(rand.New(rand.NewSource(seed)))
			agents := [2]agent.Agent{
				agent.NewRandomAgent(rand.New(rand.NewSource(seed + 100))),
				agent.NewRandomAgent(rand.New(rand.NewSource(seed + 200))),
			}
			gameMetric, moveMetrics, err := NewLocalEngine(state, agents).Run()
			require.NoError(t, err, "seed %d", seed)
			require.LessOrEqual(t, gameMetric.TotalMoves, game.MaxMoves)
			require.Len(t, moveMetrics, gameMetric.TotalMoves)
			require.Equal(t, "ONE", gameMetric.StartTeam)

			switch {
			case gameMetric.FishOne > gameMetric.FishTwo:
				require.Equal(t, "ONE", gameMetric.Winner)
			case gameMetric.FishOne < gameMetric.FishTwo:
				require.Equal(t, "TWO", gameMetric.Winner)
			default:
				require.Empty(t, gameMetric.Winner, "a draw has no winner")
			}
		}
	})

	t.Run("search against random", func(t *testing.T) {
		state := game.GenerateState(rand.New(rand.NewSource(42)))
		agents := [2]agent.Agent{
			agent.NewSearchAgent(searcher.NewPVS(searcher.WithFixedDepth(0))),
			agent.NewRandomAgent(rand.New(rand.NewSource(42))),
		}
		_, moveMetrics, err := NewLocalEngine(state, agents).Run()
		require.NoError(t, err)
		require.Equal(t, "ONE", moveMetrics[0].Team)
		require.Equal(t, 0, moveMetrics[0].Depth, "search moves should record their depth")
	})

	t.Run("missing agent", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine(game.State{}, [2]agent.Agent{}) })
	})
}
