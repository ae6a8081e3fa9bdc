package game

import "sort"

// ByPriority returns the legal actions ordered by descending static cell
// priority: center first, then corners, then edges. The sort is stable, so
// cells of equal priority keep their enumeration order. Ordering is a search
// heuristic only and never changes which actions are legal.
func ByPriority(state State) []Action {
	legal := state.LegalActions()
	actions := make([]Action, len(legal))
	copy(actions, legal)

	sort.SliceStable(actions, func(i, j int) bool {
		return priorityOf(actions[i]) > priorityOf(actions[j])
	})
	return actions
}

func priorityOf(a Action) int {
	c, ok := a.(Cell)
	if !ok {
		return 0
	}
	return Priority(c)
}
