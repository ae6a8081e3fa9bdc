package engine

import (
	"tictac/game"

	"github.com/rs/zerolog/log"
)

// Agent picks an action to play at a position.
type Agent interface {
	FindAction(state game.State) game.Action
}

// Engine drives a local game between two agents until the position is
// terminal.
type Engine struct {
	State  game.State
	agents []Agent
}

// New builds an engine from a starting state and two agents; agents[0]
// moves as the maximizer, agents[1] as the minimizer.
func New(state game.State, agents []Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Engine{State: state, agents: agents}
}

// Run plays the game out and returns the terminal state with its score.
func (e *Engine) Run() (game.State, game.Score) {
	step := 1
	for !e.State.IsTerminal() {
		actor := e.State.Player()
		agent := e.agents[0]
		if actor == game.Minimizer {
			agent = e.agents[1]
		}

		action := agent.FindAction(e.State)
		next, err := e.State.Apply(action)
		if err != nil {
			// Agents are supposed to pick among legal actions only
			panic(err)
		}

		log.Debug().Msgf("step %d: %s played %v -> %v", step, actor, action, next)
		e.State = next
		step++
	}

	score, err := e.State.Utility()
	if err != nil {
		panic(err)
	}
	log.Info().Msgf("game over after %d steps: final=%v score=%d", step-1, e.State, score)
	return e.State, score
}
