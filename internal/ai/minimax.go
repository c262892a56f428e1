package ai

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

const winScore = 10

var corners = [4]entity.Coord{
	{Row: 0, Col: 0},
	{Row: 0, Col: 2},
	{Row: 2, Col: 0},
	{Row: 2, Col: 2},
}

// Score is the exhaustive minimax value of board with toMove to play. X maximizes, O minimizes.
// Terminal scores are 10-depth for an X win, depth-10 for an O win and 0 for a draw, so quicker
// wins and slower losses are preferred.
func Score(board entity.Board, toMove entity.Mark, depth int) int {
	switch result := tictactoe.Evaluate(board); result.Outcome {
	case tictactoe.Win:
		if result.Winner == entity.PlayerX {
			return winScore - depth
		}
		return depth - winScore
	case tictactoe.Draw:
		return 0
	}

	best, first := 0, true
	for c := range board.LegalMoves() {
		// legal moves are empty cells, so the copy can be written directly
		next := board
		next[c.Index()] = toMove

		score := Score(next, toMove.Opponent(), depth+1)
		if first || better(toMove, score, best) {
			best, first = score, false
		}
	}

	return best
}

// Minimax plays a random corner on an empty board, otherwise the legal move with the best score for
// player. Ties go to the first move in row-major order.
func (that *Player) Minimax(board entity.Board, player entity.Mark) (entity.Coord, error) {
	if board.IsEmpty() {
		return that.corner(), nil
	}

	moves := board.LegalMoveList()
	if len(moves) == 0 {
		return entity.Coord{}, apperror.ErrNoLegalMoves
	}

	scores := make([]int, len(moves))
	for i, c := range moves {
		next, err := board.WithMove(c, player)
		if err != nil {
			return entity.Coord{}, fmt.Errorf("failed to evaluate move: %w", err)
		}

		scores[i] = Score(next, player.Opponent(), 0)
	}

	return moves[bestIndex(player, scores)], nil
}

func (that *Player) corner() entity.Coord {
	return corners[that.intN(len(corners))]
}

// better reports whether score strictly improves on best for player.
func better(player entity.Mark, score, best int) bool {
	if player == entity.PlayerX {
		return score > best
	}

	return score < best
}

func bestIndex(player entity.Mark, scores []int) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if better(player, scores[i], scores[best]) {
			best = i
		}
	}

	return best
}
