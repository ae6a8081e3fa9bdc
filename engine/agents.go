package engine

import (
	"tictac/game"
	"tictac/searcher"

	"golang.org/x/exp/rand"
)

// SearchAgent plays the evaluator's best action.
type SearchAgent struct {
	evaluator searcher.Evaluator
}

func NewSearchAgent(evaluator searcher.Evaluator) *SearchAgent {
	if evaluator == nil {
		panic("need an evaluator")
	}
	return &SearchAgent{evaluator: evaluator}
}

func (a *SearchAgent) FindAction(state game.State) game.Action {
	return a.evaluator.BestAction(state).Action
}

// RandomAgent plays a uniformly random legal action. Useful as a baseline
// opponent: an exact searcher should never lose to it.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindAction(state game.State) game.Action {
	actions := state.LegalActions()
	return actions[a.rng.Intn(len(actions))]
}
