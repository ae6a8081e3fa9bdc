package searcher

import "tictac/game"

// Minimax searches the full game tree below a position, with no pruning and
// no depth cutoff. The reported value is exact: it is the score of the
// terminal position reached under optimal play by both actors.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

// BestAction returns an optimal action for the actor to move, the value of
// the position, and the node count. On equal values the first action seen in
// enumeration order wins: later children only replace the best on a strictly
// better value. For a terminal position the action is nil and exactly one
// node is counted.
func (m *Minimax) BestAction(state game.State) Result {
	counter := m.counter
	if counter == nil {
		counter = &NodeCounter{}
	}

	if state.IsTerminal() {
		counter.increment()
		return Result{Value: utility(state), Nodes: counter.Count()}
	}

	var best game.Action
	if state.Player() == game.Maximizer {
		value := scoreFloor
		for _, action := range m.actions(state) {
			if v := m.value(apply(state, action), counter); v > value {
				value, best = v, action
			}
		}
		return Result{Action: best, Value: value, Nodes: counter.Count()}
	}

	value := scoreCeil
	for _, action := range m.actions(state) {
		if v := m.value(apply(state, action), counter); v < value {
			value, best = v, action
		}
	}
	return Result{Action: best, Value: value, Nodes: counter.Count()}
}

// value is the minimax value of state. The actor is derived from the state
// itself, so one function covers both the maximizing and minimizing step.
func (m *Minimax) value(state game.State, counter *NodeCounter) game.Score {
	counter.increment()
	if state.IsTerminal() {
		return utility(state)
	}

	if state.Player() == game.Maximizer {
		value := scoreFloor
		for _, action := range m.actions(state) {
			if v := m.value(apply(state, action), counter); v > value {
				value = v
			}
		}
		return value
	}

	value := scoreCeil
	for _, action := range m.actions(state) {
		if v := m.value(apply(state, action), counter); v < value {
			value = v
		}
	}
	return value
}
