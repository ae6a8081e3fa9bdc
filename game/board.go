package game

import (
	"fmt"
	"strings"
)

// Cell is a board index 0..8, row-major from the top-left corner.
type Cell int

type mark byte

const (
	empty mark = iota
	markX
	markO
)

var winLines = [8][3]Cell{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// cellPriority ranks cells by static geometry: center over corners over
// edges. Independent of the position being searched.
var cellPriority = [9]int{2, 1, 2, 1, 3, 1, 2, 1, 2}

// Priority returns the static ordering weight of a cell.
func Priority(c Cell) int {
	return cellPriority[c]
}

// Board is a 3x3 tic-tac-toe position. Boards are values: playing a move
// returns a new board and never touches the old one. The zero value is the
// empty board with X to move.
type Board struct {
	cells [9]mark
}

// NewBoard returns the empty starting position.
func NewBoard() Board {
	return Board{}
}

// Player derives the turn from occupancy parity: X moves first, so X is to
// move whenever both sides have placed equally many marks.
func (b Board) Player() Actor {
	x, o := 0, 0
	for _, m := range b.cells {
		switch m {
		case markX:
			x++
		case markO:
			o++
		}
	}
	if x == o {
		return Maximizer
	}
	return Minimizer
}

func (b Board) LegalActions() []Action {
	if b.winner() != empty {
		return nil
	}
	var actions []Action
	for i, m := range b.cells {
		if m == empty {
			actions = append(actions, Cell(i))
		}
	}
	return actions
}

func (b Board) Apply(action Action) (State, error) {
	c, ok := action.(Cell)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a cell", ErrInvalidMove, action)
	}
	if c < 0 || c > 8 {
		return nil, fmt.Errorf("%w: cell %d out of range", ErrInvalidMove, c)
	}
	if b.IsTerminal() || b.cells[c] != empty {
		return nil, fmt.Errorf("%w: cell %d", ErrInvalidMove, c)
	}

	next := b
	if b.Player() == Maximizer {
		next.cells[c] = markX
	} else {
		next.cells[c] = markO
	}
	return next, nil
}

func (b Board) IsTerminal() bool {
	return b.winner() != empty || b.full()
}

func (b Board) Utility() (Score, error) {
	switch b.winner() {
	case markX:
		return MaximizerWin, nil
	case markO:
		return MinimizerWin, nil
	}
	if !b.full() {
		return 0, fmt.Errorf("%w: %v", ErrNotTerminal, b)
	}
	return Draw, nil
}

func (b Board) winner() mark {
	for _, line := range winLines {
		m := b.cells[line[0]]
		if m != empty && m == b.cells[line[1]] && m == b.cells[line[2]] {
			return m
		}
	}
	return empty
}

func (b Board) full() bool {
	for _, m := range b.cells {
		if m == empty {
			return false
		}
	}
	return true
}

// Parse reads a board in row notation, e.g. "XOX/OX_/__O". Both '_' and '.'
// denote an empty cell.
func Parse(s string) (Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != 3 {
		return Board{}, fmt.Errorf("board %q: want 3 rows, got %d", s, len(rows))
	}

	var b Board
	i := 0
	for _, row := range rows {
		if len(row) != 3 {
			return Board{}, fmt.Errorf("board %q: row %q is not 3 cells", s, row)
		}
		for _, r := range row {
			switch r {
			case 'X':
				b.cells[i] = markX
			case 'O':
				b.cells[i] = markO
			case '_', '.':
			default:
				return Board{}, fmt.Errorf("board %q: invalid cell %q", s, r)
			}
			i++
		}
	}
	return b, nil
}

// MustParse is Parse for fixed fixtures; it panics on malformed input.
func MustParse(s string) Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) String() string {
	var sb strings.Builder
	for i, m := range b.cells {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}
		switch m {
		case markX:
			sb.WriteByte('X')
		case markO:
			sb.WriteByte('O')
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
