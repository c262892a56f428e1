package tictactoe

import "github.com/rocketscienceinc/tictactoe-ai/internal/entity"

type Outcome int

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Result is derived from a board on demand and never stored.
type Result struct {
	Outcome Outcome
	Winner  entity.Mark
}

// WinCombos lists the flat cells of every line in evaluation order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner returns the owner of the first complete line.
func Winner(board entity.Board) (entity.Mark, bool) {
	return board.Winner()
}

func Evaluate(board entity.Board) Result {
	if winner, ok := board.Winner(); ok {
		return Result{Outcome: Win, Winner: winner}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Result{Outcome: InProgress}
	}

	return Result{Outcome: Draw}
}

// IsTerminal reports whether the board is full or already won.
func IsTerminal(board entity.Board) bool {
	return Evaluate(board).Outcome != InProgress
}

// HasImmediateWin reports whether player owns two cells of the line and the third is empty.
func HasImmediateWin(line entity.Line, player entity.Mark) bool {
	own, empty := 0, 0

	for _, cell := range line {
		switch cell {
		case player:
			own++
		case entity.EmptyCell:
			empty++
		}
	}

	return own == 2 && empty == 1
}

// FindEmptyIndex returns the position of the first empty cell in the line.
func FindEmptyIndex(line entity.Line) (int, bool) {
	for i, cell := range line {
		if cell == entity.EmptyCell {
			return i, true
		}
	}

	return -1, false
}

// FindImmediateWin scans rows, then columns, then diagonals for a line player can complete in one move
// and returns the cell completing the first one found.
// WinCombos maps the empty position back to the board, so the second diagonal position i lands on (i, 2-i).
func FindImmediateWin(board entity.Board, player entity.Mark) (entity.Coord, bool) {
	for i, line := range board.Lines() {
		if !HasImmediateWin(line, player) {
			continue
		}

		pos, ok := FindEmptyIndex(line)
		if !ok {
			continue
		}

		c, err := entity.CoordFromIndex(WinCombos[i][pos])
		if err != nil {
			continue
		}

		return c, true
	}

	return entity.Coord{}, false
}
