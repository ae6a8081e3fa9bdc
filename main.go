package main

import (
	"flag"
	"net/http"
	"time"

	"tictac/engine"
	"tictac/experiments"
	"tictac/game"
	"tictac/searcher"
	"tictac/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	serve := flag.String("serve", "", "serve the analysis API on this address instead of running the benchmark")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *serve != "" {
		log.Info().Msgf("serving analysis API on %s", *serve)
		if err := http.ListenAndServe(*serve, server.New()); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	experiments.RunNodeCountComparison()
	runShowcaseGame()
}

// runShowcaseGame plays one ordered alpha-beta agent against a random
// opponent.
func runShowcaseGame() {
	agents := []engine.Agent{
		engine.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithOrdering(game.ByPriority))),
		engine.NewRandomAgent(uint64(time.Now().UnixNano())),
	}
	e := engine.New(game.NewBoard(), agents)
	e.Run()
}
