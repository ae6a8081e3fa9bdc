package searcher

import "tictac/game"

// Sentinels strictly outside the legal score range, so root comparisons
// behave before any child has been evaluated.
const (
	scoreCeil  = game.MaximizerWin + 1
	scoreFloor = game.MinimizerWin - 1
)

// Evaluator computes the exact game-theoretic value of a position and an
// action that achieves it.
type Evaluator interface {
	BestAction(state game.State) Result
}

// Result of one top-level search. Action is nil when the searched position
// is already terminal. Nodes is the counter's total after the call, which
// equals the nodes of this call unless the caller shares a counter across
// calls.
type Result struct {
	Action game.Action
	Value  game.Score
	Nodes  int
}

// Orderer returns the legal actions of a state in the order the search
// should explore them. It must return a permutation of
// state.LegalActions(): same actions, no omissions, no duplicates.
type Orderer func(state game.State) []game.Action

type config struct {
	orderer Orderer
	counter *NodeCounter
}

type Option func(c *config)

// WithOrdering explores actions in the orderer's order instead of the
// state's natural enumeration order. Ordering changes which branches a
// pruning search reaches first, never the reported value.
func WithOrdering(orderer Orderer) Option {
	return func(c *config) {
		if orderer != nil {
			c.orderer = orderer
		}
	}
}

// WithCounter accumulates node visits into a caller-supplied counter across
// calls. Without it every BestAction call counts from zero.
func WithCounter(counter *NodeCounter) Option {
	return func(c *config) {
		if counter != nil {
			c.counter = counter
		}
	}
}

func newConfig(options []Option) config {
	c := config{}
	for _, option := range options {
		option(&c)
	}
	return c
}

func (c config) actions(state game.State) []game.Action {
	if c.orderer != nil {
		return c.orderer(state)
	}
	return state.LegalActions()
}

// The evaluators only ever play actions drawn from LegalActions, so an
// error here means the rules contract is broken; fail fast.
func apply(state game.State, action game.Action) game.State {
	child, err := state.Apply(action)
	if err != nil {
		panic(err)
	}
	return child
}

func utility(state game.State) game.Score {
	score, err := state.Utility()
	if err != nil {
		panic(err)
	}
	return score
}
