package ai

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// ParallelMinimax returns the same move as Minimax, scoring each top-level branch on its own goroutine.
func (that *Player) ParallelMinimax(board entity.Board, player entity.Mark) (entity.Coord, error) {
	if board.IsEmpty() {
		return that.corner(), nil
	}

	moves := board.LegalMoveList()
	if len(moves) == 0 {
		return entity.Coord{}, apperror.ErrNoLegalMoves
	}

	scores := make([]int, len(moves))
	var group errgroup.Group

	for i, c := range moves {
		group.Go(func() error {
			next, err := board.WithMove(c, player)
			if err != nil {
				return fmt.Errorf("failed to evaluate move %s: %w", c, err)
			}

			scores[i] = Score(next, player.Opponent(), 0)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return entity.Coord{}, err
	}

	return moves[bestIndex(player, scores)], nil
}
