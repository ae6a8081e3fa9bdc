package experiments

import (
	"fmt"

	"tictac/experiments/metrics"
	"tictac/game"
	"tictac/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Mid-game benchmark position with the maximizer (X) to move.
const midGameBoard = "XOX/OX_/__O"

type scenario struct {
	name  string
	state game.State
}

type run struct {
	scenario  scenario
	algorithm string
	ordered   bool
}

// RunNodeCountComparison evaluates both algorithms with and without move
// ordering on each benchmark position and stores the node counts. The runs
// are independent top-level searches, so they execute concurrently, each
// with its own evaluator and counter.
func RunNodeCountComparison() {
	scenarios := []scenario{
		{name: "start", state: game.NewBoard()},
		{name: "midgame", state: game.MustParse(midGameBoard)},
	}

	runs := []run{}
	for _, sc := range scenarios {
		for _, ordered := range []bool{false, true} {
			for _, algorithm := range []string{"minimax", "alphabeta"} {
				runs = append(runs, run{scenario: sc, algorithm: algorithm, ordered: ordered})
			}
		}
	}

	log.Info().Msgf("starting node count comparison with %d runs...", len(runs))

	records := make([]metrics.SearchRecord, len(runs))
	var group errgroup.Group
	for i, r := range runs {
		i, r := i, r
		group.Go(func() error {
			result := evaluate(r)
			records[i] = metrics.SearchRecord{
				Scenario:  r.scenario.name,
				Algorithm: r.algorithm,
				Ordered:   r.ordered,
				Action:    fmt.Sprintf("%v", result.Action),
				Value:     int(result.Value),
				Nodes:     result.Nodes,
			}
			log.Info().Msgf("%s %s ordered=%t: action=%v value=%d nodes=%d",
				r.scenario.name, r.algorithm, r.ordered, result.Action, result.Value, result.Nodes)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		panic(err)
	}

	log.Info().Msg("completed node count comparison")

	// Store experiment results
	writer, err := metrics.NewWriter("node_count")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteSearchRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to store search records: %v", err))
	}
	log.Info().Msg("stored search records")
}

func evaluate(r run) searcher.Result {
	options := []searcher.Option{}
	if r.ordered {
		options = append(options, searcher.WithOrdering(game.ByPriority))
	}

	var evaluator searcher.Evaluator
	switch r.algorithm {
	case "minimax":
		evaluator = searcher.NewMinimax(options...)
	case "alphabeta":
		evaluator = searcher.NewAlphaBeta(options...)
	default:
		panic("unknown algorithm: " + r.algorithm)
	}
	return evaluator.BestAction(r.scenario.state)
}
