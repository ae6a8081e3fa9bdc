package searcher

import (
	"testing"

	"tictac/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMinimaxTerminalPosition(t *testing.T) {
	t.Run("returns the score with no action and one counted node", func(t *testing.T) {
		result := NewMinimax().BestAction(leaf(game.MinimizerWin))
		require.Nil(t, result.Action)
		require.Equal(t, game.MinimizerWin, result.Value)
		require.Equal(t, 1, result.Nodes)
	})

	t.Run("terminal board behaves the same", func(t *testing.T) {
		result := NewMinimax().BestAction(game.MustParse("XXX/OO_/___"))
		require.Nil(t, result.Action)
		require.Equal(t, game.MaximizerWin, result.Value)
		require.Equal(t, 1, result.Nodes)
	})
}

func TestMinimaxValue(t *testing.T) {
	t.Run("backs up the min of maxes and the max of mins", func(t *testing.T) {
		root := maxNode(
			minNode(leaf(game.MaximizerWin), leaf(game.MinimizerWin)), // worth -1
			minNode(leaf(game.Draw), leaf(game.MaximizerWin)),         // worth 0
		)

		result := NewMinimax().BestAction(root)
		require.Equal(t, game.Draw, result.Value)
		require.Equal(t, 1, result.Action)
		require.Equal(t, 6, result.Nodes, "every interior and leaf node below the root counts once")
	})

	t.Run("minimizing root mirrors the maximizing one", func(t *testing.T) {
		root := minNode(
			maxNode(leaf(game.MaximizerWin), leaf(game.Draw)), // worth 1
			maxNode(leaf(game.Draw), leaf(game.MinimizerWin)), // worth 0
		)

		result := NewMinimax().BestAction(root)
		require.Equal(t, game.Draw, result.Value)
		require.Equal(t, 1, result.Action)
	})
}

func TestMinimaxTieBreak(t *testing.T) {
	t.Run("first strictly better value wins at a maximizing root", func(t *testing.T) {
		root := maxNode(leaf(game.Draw), leaf(game.Draw), leaf(game.MaximizerWin), leaf(game.MaximizerWin))
		result := NewMinimax().BestAction(root)
		require.Equal(t, 2, result.Action, "later equal values must not overwrite the stored action")
		require.Equal(t, game.MaximizerWin, result.Value)
	})

	t.Run("all equal keeps the first action", func(t *testing.T) {
		root := maxNode(leaf(game.Draw), leaf(game.Draw), leaf(game.Draw))
		require.Equal(t, 0, NewMinimax().BestAction(root).Action)
	})

	t.Run("minimizing root keeps the first minimum", func(t *testing.T) {
		root := minNode(leaf(game.MaximizerWin), leaf(game.Draw), leaf(game.MinimizerWin), leaf(game.MinimizerWin))
		result := NewMinimax().BestAction(root)
		require.Equal(t, 2, result.Action)
		require.Equal(t, game.MinimizerWin, result.Value)
	})
}

func TestMinimaxOpening(t *testing.T) {
	t.Run("the empty board is a draw under optimal play", func(t *testing.T) {
		for _, ordered := range []bool{false, true} {
			options := []Option{}
			if ordered {
				options = append(options, WithOrdering(game.ByPriority))
			}

			result := NewMinimax(options...).BestAction(game.NewBoard())
			require.Equal(t, game.Draw, result.Value, "ordered=%t", ordered)
			require.Contains(t, game.NewBoard().LegalActions(), result.Action, "ordered=%t", ordered)
		}
	})
}

func TestMinimaxMidGame(t *testing.T) {
	board := game.MustParse("XOX/OX_/__O")

	t.Run("finds the winning corner", func(t *testing.T) {
		result := NewMinimax().BestAction(board)
		require.Equal(t, game.MaximizerWin, result.Value)
		require.Equal(t, game.Cell(6), result.Action, "completing the 2-4-6 diagonal wins outright")
	})

	t.Run("ordering finds the same value", func(t *testing.T) {
		result := NewMinimax(WithOrdering(game.ByPriority)).BestAction(board)
		require.Equal(t, game.MaximizerWin, result.Value)
		require.Equal(t, game.Cell(6), result.Action)
	})
}

func TestMinimaxActionLegality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 12; i++ {
		state := randomPosition(rng, 3+rng.Intn(5))
		if state.IsTerminal() {
			continue
		}
		result := NewMinimax().BestAction(state)
		require.Contains(t, state.LegalActions(), result.Action, "position %v", state)
	}
}
