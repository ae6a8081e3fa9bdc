package game

import "errors"

// Actor identifies which of the two roles moves at a position. The maximizer
// plays X and wants score +1, the minimizer plays O and wants -1.
type Actor int

const (
	Maximizer Actor = iota
	Minimizer
)

func (a Actor) String() string {
	if a == Maximizer {
		return "max"
	}
	return "min"
}

// Score of a finished game from the maximizer's point of view.
type Score int

const (
	MaximizerWin Score = 1
	Draw         Score = 0
	MinimizerWin Score = -1
)

// Action is an opaque move identifier, only meaningful for the state that
// produced it.
type Action any

var (
	ErrInvalidMove = errors.New("move is not legal in this position")
	ErrNotTerminal = errors.New("position is not terminal")
)

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player returns the actor to move. It is a pure function of the
	// position, total and deterministic.
	Player() Actor
	// LegalActions is non-empty exactly when the position is non-terminal.
	LegalActions() []Action
	// Apply plays an action and returns the resulting position, or
	// ErrInvalidMove if the action is not currently legal.
	Apply(action Action) (State, error)
	IsTerminal() bool
	// Utility returns the score of a terminal position, or ErrNotTerminal.
	Utility() (Score, error)
}
