package entity

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""

	// PlayerTie is stored as the winner of a drawn game.
	PlayerTie Mark = "-"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Mark is the value occupying a cell.
type Mark string

// Opponent returns the other player. Non-player marks are returned unchanged.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return that
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Line is one row, column or diagonal of the board.
type Line [BoardSize]Mark

// Uniform reports the mark filling the whole line, if any.
func (that Line) Uniform() (Mark, bool) {
	if that[0] == EmptyCell {
		return EmptyCell, false
	}

	for _, cell := range that[1:] {
		if cell != that[0] {
			return EmptyCell, false
		}
	}

	return that[0], true
}

// Board is a 3x3 grid addressed by Coord or by flat index row*3+col.
// It is a value: WithMove returns a copy and never touches the receiver.
type Board [CellCount]Mark

func (that Board) Get(c Coord) (Mark, error) {
	if err := c.Validate(); err != nil {
		return EmptyCell, err
	}

	return that[c.Index()], nil
}

func (that Board) At(index int) (Mark, error) {
	if index < 0 || index >= CellCount {
		return EmptyCell, fmt.Errorf("%w: index %d", apperror.ErrInvalidCoordinate, index)
	}

	return that[index], nil
}

// IsValidMove reports whether c is on the board and empty.
func (that Board) IsValidMove(c Coord) bool {
	mark, err := that.Get(c)
	return err == nil && mark == EmptyCell
}

// WithMove returns a new board with mark placed at c.
func (that Board) WithMove(c Coord, mark Mark) (Board, error) {
	current, err := that.Get(c)
	if err != nil {
		return that, err
	}

	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: mark %q", apperror.ErrInvalidMove, mark)
	}

	if current != EmptyCell {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, c)
	}

	next := that
	next[c.Index()] = mark

	return next, nil
}

// LegalMoves yields the empty cells in row-major order.
func (that Board) LegalMoves() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for i, cell := range that {
			if cell != EmptyCell {
				continue
			}

			if !yield(Coord{Row: i / BoardSize, Col: i % BoardSize}) {
				return
			}
		}
	}
}

func (that Board) LegalMoveList() []Coord {
	return slices.Collect(that.LegalMoves())
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

func (that Board) IsEmpty() bool {
	return that.Count(EmptyCell) == CellCount
}

func (that Board) Rows() [BoardSize]Line {
	var rows [BoardSize]Line
	for r := range BoardSize {
		rows[r] = Line{that[r*BoardSize], that[r*BoardSize+1], that[r*BoardSize+2]}
	}

	return rows
}

func (that Board) Columns() [BoardSize]Line {
	var cols [BoardSize]Line
	for c := range BoardSize {
		cols[c] = Line{that[c], that[BoardSize+c], that[2*BoardSize+c]}
	}

	return cols
}

// Diagonals returns top-left to bottom-right first, then top-right to bottom-left.
func (that Board) Diagonals() [2]Line {
	return [2]Line{
		{that[0], that[4], that[8]},
		{that[2], that[4], that[6]},
	}
}

// Lines returns rows, then columns, then diagonals.
func (that Board) Lines() [8]Line {
	var lines [8]Line

	rows, cols, diags := that.Rows(), that.Columns(), that.Diagonals()
	copy(lines[0:3], rows[:])
	copy(lines[3:6], cols[:])
	copy(lines[6:8], diags[:])

	return lines
}

// Winner returns the mark of the first uniform line. An empty board has no winner.
func (that Board) Winner() (Mark, bool) {
	if that.IsEmpty() {
		return EmptyCell, false
	}

	for _, line := range that.Lines() {
		if mark, ok := line.Uniform(); ok {
			return mark, true
		}
	}

	return EmptyCell, false
}

func (that Board) String() string {
	var sb strings.Builder

	sb.WriteString("   0 1 2\n")
	sb.WriteString("  -------\n")
	for r, row := range that.Rows() {
		fmt.Fprintf(&sb, "%d|", r)
		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteString("  ")
				continue
			}
			fmt.Fprintf(&sb, " %s", cell)
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  -------\n")

	return sb.String()
}
