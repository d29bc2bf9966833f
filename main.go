package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jarvarvarvis/rostware23/agent"
	"github.com/jarvarvarvis/rostware23/communication/client"
	"github.com/jarvarvarvis/rostware23/experiments"
	"github.com/jarvarvarvis/rostware23/experiments/metrics"
	"github.com/jarvarvarvis/rostware23/meta"
	"github.com/jarvarvarvis/rostware23/player"
	"github.com/jarvarvarvis/rostware23/searcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	host := flag.String("host", meta.DEFAULT_HOST, "Game server host")
	port := flag.Int("port", meta.DEFAULT_PORT, "Game server port")
	reservation := flag.String("reservation", "", "Reservation code of a prepared game")
	room := flag.String("room", "", "Room to join")
	budget := flag.Duration("budget", meta.MOVE_BUDGET, "Search time per move")
	debug := flag.Bool("debug", false, "Log search iterations")
	battle := flag.Int("battle", 0, "Play this many seeds locally instead of joining a server")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "First seed of a battle")
	parallel := flag.Int("parallel", 1, "Concurrent games of a battle")
	out := flag.String("out", meta.OUTPUT_DIR, "Directory for battle records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *battle > 0 {
		runBattle(*battle, *seed, *parallel, *out)
		return
	}

	c, err := client.Dial(*host, *port, *reservation, *room)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect")
	}
	defer c.Close()

	if _, err := c.Join(); err != nil {
		log.Fatal().Err(err).Msg("failed to join")
	}
	p := player.NewPlayer(c, agent.NewSearchAgent(searcher.NewPVS(searcher.WithDuration(*budget))))
	if _, err := p.Play(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// runBattle plays the default search against a fish-only search.
func runBattle(games int, seed uint64, parallel int, out string) {
	b := experiments.Battle{
		A:           metrics.AgentConfig{ID: 1, Duration: meta.BATTLE_BUDGET},
		B:           metrics.AgentConfig{ID: 2, Duration: meta.BATTLE_BUDGET, Rater: "fish"},
		Games:       games,
		Seed:        seed,
		Parallelism: parallel,
	}
	summary, err := experiments.RunAndStore(context.Background(), b, out)
	if err != nil {
		log.Fatal().Err(err).Msg("battle failed")
	}
	log.Info().Msgf("agent 1 won %d, agent 2 won %d, %d draws, margin %.1f +- %.1f",
		summary.WinsA, summary.WinsB, summary.Draws, summary.MeanMargin, summary.StdMargin)
}
