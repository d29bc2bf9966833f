package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/jarvarvarvis/rostware23/agent"
	"github.com/jarvarvarvis/rostware23/experiments/metrics"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/jarvarvarvis/rostware23/gamemaster"
	"github.com/rs/zerolog/log"
)

var ErrTooLong = errors.New("game exceeded the move limit")

type local struct {
	master gamemaster.GameMaster
	agents [2]agent.Agent // Indexed by team
}

// NewLocalEngine plays agents[game.One] against agents[game.Two] from state.
func NewLocalEngine(state game.State, agents [2]agent.Agent) Engine {
	if agents[game.One] == nil || agents[game.Two] == nil {
		panic("need an agent for both teams")
	}
	return &local{master: gamemaster.NewLocal(state), agents: agents}
}

func (e *local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, getUpdate := e.master.Init()
	gameMetric := metrics.GameMetric{
		StartTeam: state.StartTeam.String(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("team %s is starting", state.CurrentTeam())
	for step := 1; !state.IsOver(); step++ {
		if step > game.MaxMoves {
			return gameMetric, moveMetrics, fmt.Errorf("%w: %d moves", ErrTooLong, step-1)
		}
		team := state.CurrentTeam()
		move, metric, err := e.agents[team].FindMove(state)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d, team %s: %w", step, team, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Team:         team.String(),
			Move:         move.String(),
			SearchMetric: metric,
		})

		if err := e.master.Play(team, move); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}
		u, ok := getUpdate()
		if !ok {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: missing update", step)
		}
		if u.Skipped {
			log.Debug().Msgf("team %s cannot move and is skipped", team.Opponent())
		}
		state = u.State
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.FishOne = state.Score(game.One)
	gameMetric.FishTwo = state.Score(game.Two)
	if winner, ok := state.Winner(); ok {
		gameMetric.Winner = winner.String()
	}
	log.Debug().Msgf("game over after %d moves: %d to %d", gameMetric.TotalMoves, gameMetric.FishOne, gameMetric.FishTwo)
	return gameMetric, moveMetrics, nil
}
