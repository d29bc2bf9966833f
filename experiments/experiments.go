package experiments

import (
	"context"
	"fmt"

	"github.com/jarvarvarvis/rostware23/agent"
	"github.com/jarvarvarvis/rostware23/engine"
	"github.com/jarvarvarvis/rostware23/experiments/metrics"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/jarvarvarvis/rostware23/meta"
	"github.com/jarvarvarvis/rostware23/rater"
	"github.com/jarvarvarvis/rostware23/searcher"
	"github.com/jarvarvarvis/rostware23/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

const TimeBudget = meta.BATTLE_BUDGET

// Battle plays A against B. Every seed generates one board that is played
// twice so that both agents start once.
type Battle struct {
	A, B        metrics.AgentConfig
	Games       int // Seeds, so twice as many games
	Seed        uint64
	Parallelism int
}

// Summary is seen from agent A. Margins are A's fish minus B's.
type Summary struct {
	Games      int
	WinsA      int
	WinsB      int
	Draws      int
	MeanMargin float64
	StdMargin  float64
	MaxMargin  int // Largest absolute margin
}

type outcome struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays all games of the battle and returns the records in game order.
func (b Battle) Run(ctx context.Context) (Summary, []metrics.GameRecord, []metrics.MoveRecord, error) {
	outcomes := make([]outcome, 2*b.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.Parallelism, 1))
	for i := range outcomes {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := b.Seed + uint64(i/2)
			one, two := b.A, b.B
			if i%2 == 1 {
				one, two = two, one
			}

			gameMetric, moveMetrics, err := runGame(seed, one, two)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			o := outcome{record: metrics.GameRecord{
				ID:         i + 1,
				Seed:       seed,
				Agent1:     one.ID,
				Agent2:     two.ID,
				GameMetric: gameMetric,
			}}
			for _, mm := range moveMetrics {
				o.moves = append(o.moves, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
			}
			outcomes[i] = o

			log.Info().Msgf("completed game %d of %d: %d to %d", i+1, len(outcomes), gameMetric.FishOne, gameMetric.FishTwo)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, nil, nil, err
	}

	var games []metrics.GameRecord
	var moves []metrics.MoveRecord
	for _, o := range outcomes {
		games = append(games, o.record)
		moves = append(moves, o.moves...)
	}
	return b.summarize(games), games, moves, nil
}

func (b Battle) summarize(games []metrics.GameRecord) Summary {
	summary := Summary{Games: len(games)}
	margins := make([]float64, 0, len(games))
	for i, record := range games {
		margin := record.FishOne - record.FishTwo
		if i%2 == 1 { // B played team One
			margin = -margin
		}
		switch {
		case margin > 0:
			summary.WinsA++
		case margin < 0:
			summary.WinsB++
		default:
			summary.Draws++
		}
		summary.MaxMargin = max(summary.MaxMargin, utils.Abs(margin))
		margins = append(margins, float64(margin))
	}
	if len(margins) > 1 {
		summary.MeanMargin, summary.StdMargin = stat.MeanStdDev(margins, nil)
	} else if len(margins) == 1 {
		summary.MeanMargin = margins[0]
	}
	return summary
}

// RunAndStore runs the battle and writes its setup and records below dir.
func RunAndStore(ctx context.Context, b Battle, dir string) (Summary, error) {
	log.Info().Msgf("starting battle of %d games between agent %d and agent %d...", 2*b.Games, b.A.ID, b.B.ID)
	summary, games, moves, err := b.Run(ctx)
	if err != nil {
		return summary, err
	}
	log.Info().Msgf("completed battle: %+v", summary)

	writer, err := metrics.NewWriter(dir, "battle")
	if err != nil {
		return summary, err
	}
	setup := struct {
		Battle  Battle
		Summary Summary
	}{b, summary}
	if err := writer.WriteSetup(setup); err != nil {
		return summary, err
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return summary, err
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return summary, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return summary, nil
}

func runGame(seed uint64, one, two metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state := game.GenerateState(rand.New(rand.NewSource(seed)))
	agents := [2]agent.Agent{
		NewAgent(one, seed),
		NewAgent(two, seed+1),
	}
	return engine.NewLocalEngine(state, agents).Run()
}

// NewAgent builds a fresh agent; searchers are not shared between games.
func NewAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(rand.New(rand.NewSource(seed)))
	}
	return agent.NewSearchAgent(createPVS(config))
}

func createPVS(config metrics.AgentConfig) *searcher.PVS {
	options := []searcher.Option{}

	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithMaxDepth(config.Depth))
	}
	if config.Duration <= 0 && config.Depth <= 0 {
		options = append(options, searcher.WithDuration(TimeBudget))
	}
	switch config.Rater {
	case "fish":
		options = append(options, searcher.WithRater(rater.FishDifference))
	case "early":
		options = append(options, searcher.WithRater(rater.Weighted{
			{Weight: 20, Rater: rater.FishDifference},
			{Weight: 5, Rater: rater.EarlyGame(rater.ReachableFish)},
		}))
	case "", "default":
	default:
		panic(fmt.Sprintf("unknown rater %q", config.Rater))
	}
	if config.Admission < 0 {
		options = append(options, searcher.WithAdmission(searcher.AdmitNone))
	} else if config.Admission > 0 {
		options = append(options, searcher.WithAdmission(searcher.MinDepth(config.Admission)))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewPVS(options...)
}
