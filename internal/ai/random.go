package ai

import (
	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Random samples a cell uniformly and resamples until it hits an empty one.
func (that *Player) Random(board entity.Board, _ entity.Mark) (entity.Coord, error) {
	if board.IsFull() {
		return entity.Coord{}, apperror.ErrNoLegalMoves
	}

	for {
		c := entity.Coord{Row: that.intN(entity.BoardSize), Col: that.intN(entity.BoardSize)}
		if board.IsValidMove(c) {
			return c, nil
		}
	}
}
