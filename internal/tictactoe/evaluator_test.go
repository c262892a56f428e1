package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestWinCombos_MatchBoardLines(t *testing.T) {
	// Given: a board whose cells hold their own flat index
	board := entity.Board{"0", "1", "2", "3", "4", "5", "6", "7", "8"}

	// Then: every combo lists the cells of the line at the same position
	for i, line := range board.Lines() {
		for j, cell := range line {
			assert.Equal(t, board[WinCombos[i][j]], cell)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		board  entity.Board
		want   Result
		isTerm bool
	}{
		{
			name:  "Empty board is in progress",
			board: entity.Board{},
			want:  Result{Outcome: InProgress},
		},
		{
			name:  "Partial board is in progress",
			board: entity.Board{x, o, e, e, x, e, e, e, o},
			want:  Result{Outcome: InProgress},
		},
		{
			name:   "X wins the top row",
			board:  entity.Board{x, x, x, o, o, e, e, e, e},
			want:   Result{Outcome: Win, Winner: x},
			isTerm: true,
		},
		{
			name:   "O wins the second column",
			board:  entity.Board{x, o, e, x, o, e, e, o, x},
			want:   Result{Outcome: Win, Winner: o},
			isTerm: true,
		},
		{
			name:   "O wins the second diagonal",
			board:  entity.Board{x, x, o, e, o, e, o, e, x},
			want:   Result{Outcome: Win, Winner: o},
			isTerm: true,
		},
		{
			name:   "Full board without a line is a draw",
			board:  entity.Board{x, o, x, x, o, o, o, x, x},
			want:   Result{Outcome: Draw},
			isTerm: true,
		},
		{
			name:   "Win on the last cell is not a draw",
			board:  entity.Board{x, o, x, o, x, o, o, x, x},
			want:   Result{Outcome: Win, Winner: x},
			isTerm: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.board)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.isTerm, IsTerminal(tt.board))
		})
	}
}

func TestWinner(t *testing.T) {
	t.Run("Returns nothing for a draw", func(t *testing.T) {
		_, ok := Winner(entity.Board{x, o, x, x, o, o, o, x, x})

		assert.False(t, ok)
	})

	t.Run("Returns the diagonal owner", func(t *testing.T) {
		winner, ok := Winner(entity.Board{x, e, e, e, x, e, e, e, x})

		require.True(t, ok)
		assert.Equal(t, x, winner)
	})
}

func TestHasImmediateWin(t *testing.T) {
	assert.True(t, HasImmediateWin(entity.Line{x, x, e}, x))
	assert.True(t, HasImmediateWin(entity.Line{x, e, x}, x))
	assert.False(t, HasImmediateWin(entity.Line{x, x, e}, o))
	assert.False(t, HasImmediateWin(entity.Line{x, x, o}, x))
	assert.False(t, HasImmediateWin(entity.Line{x, x, x}, x))
	assert.False(t, HasImmediateWin(entity.Line{x, e, e}, x))
}

func TestFindEmptyIndex(t *testing.T) {
	pos, ok := FindEmptyIndex(entity.Line{x, e, x})
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	_, ok = FindEmptyIndex(entity.Line{x, o, x})
	assert.False(t, ok)
}

func TestFindImmediateWin(t *testing.T) {
	tests := []struct {
		name   string
		board  entity.Board
		player entity.Mark
		want   entity.Coord
		found  bool
	}{
		{
			name:   "Row",
			board:  entity.Board{x, x, e, o, o, e, e, e, e},
			player: x,
			want:   entity.Coord{Row: 0, Col: 2},
			found:  true,
		},
		{
			name:   "Row for the other player",
			board:  entity.Board{x, x, e, o, o, e, e, e, e},
			player: o,
			want:   entity.Coord{Row: 1, Col: 2},
			found:  true,
		},
		{
			name:   "Column",
			board:  entity.Board{o, x, e, e, x, e, o, e, e},
			player: x,
			want:   entity.Coord{Row: 2, Col: 1},
			found:  true,
		},
		{
			name:   "First diagonal",
			board:  entity.Board{x, o, e, e, e, o, e, e, x},
			player: x,
			want:   entity.Coord{Row: 1, Col: 1},
			found:  true,
		},
		{
			name:   "Second diagonal maps to (i, 2-i)",
			board:  entity.Board{x, x, o, e, e, e, o, e, e},
			player: o,
			want:   entity.Coord{Row: 1, Col: 1},
			found:  true,
		},
		{
			name:   "Second diagonal bottom-left",
			board:  entity.Board{e, x, o, x, o, e, e, e, x},
			player: o,
			want:   entity.Coord{Row: 2, Col: 0},
			found:  true,
		},
		{
			name:   "Rows are scanned before columns",
			board:  entity.Board{x, e, e, x, x, e, e, e, e},
			player: x,
			want:   entity.Coord{Row: 1, Col: 2},
			found:  true,
		},
		{
			name:   "No immediate win",
			board:  entity.Board{x, o, e, e, e, e, e, e, e},
			player: x,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindImmediateWin(tt.board, tt.player)

			require.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
