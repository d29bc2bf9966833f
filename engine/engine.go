package engine

import "github.com/jarvarvarvis/rostware23/experiments/metrics"

type Engine interface {
	// Run plays a game till neither team can move
	Run() (metrics.GameMetric, []metrics.MoveMetric, error)
}
