package searcher

import "tictac/game"

// AlphaBeta has the same contract as Minimax for every input: identical
// value, an equally optimal action, the same first-seen tie-break. It prunes
// subtrees that provably cannot change the decision, so its node count is at
// most Minimax's and usually far below it.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

func (ab *AlphaBeta) BestAction(state game.State) Result {
	counter := ab.counter
	if counter == nil {
		counter = &NodeCounter{}
	}

	if state.IsTerminal() {
		counter.increment()
		return Result{Value: utility(state), Nodes: counter.Count()}
	}

	// The root never cuts off: every child gets evaluated so the best
	// action is picked among all of them, but each child after the first
	// benefits from the bound tightened by its earlier siblings.
	alpha, beta := scoreFloor, scoreCeil
	var best game.Action

	if state.Player() == game.Maximizer {
		value := scoreFloor
		for _, action := range ab.actions(state) {
			if v := ab.value(apply(state, action), alpha, beta, counter); v > value {
				value, best = v, action
			}
			if value > alpha {
				alpha = value
			}
		}
		return Result{Action: best, Value: value, Nodes: counter.Count()}
	}

	value := scoreCeil
	for _, action := range ab.actions(state) {
		if v := ab.value(apply(state, action), alpha, beta, counter); v < value {
			value, best = v, action
		}
		if value < beta {
			beta = value
		}
	}
	return Result{Action: best, Value: value, Nodes: counter.Count()}
}

// value is the minimax value of state under the window (alpha, beta): alpha
// is the best value the maximizer already has on the path here, beta the
// minimizer's. Once beta <= alpha the remaining siblings cannot influence
// any ancestor's choice and the loop stops.
func (ab *AlphaBeta) value(state game.State, alpha, beta game.Score, counter *NodeCounter) game.Score {
	counter.increment()
	if state.IsTerminal() {
		return utility(state)
	}

	if state.Player() == game.Maximizer {
		value := scoreFloor
		for _, action := range ab.actions(state) {
			if v := ab.value(apply(state, action), alpha, beta, counter); v > value {
				value = v
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := scoreCeil
	for _, action := range ab.actions(state) {
		if v := ab.value(apply(state, action), alpha, beta, counter); v < value {
			value = v
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	return value
}
