package ai

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

// FindWinningMoves plays the first one-move win for player, scanning rows, columns and then
// diagonals. Without one it plays a random move.
func (that *Player) FindWinningMoves(board entity.Board, player entity.Mark) (entity.Coord, error) {
	if c, ok := tictactoe.FindImmediateWin(board, player); ok {
		return c, nil
	}

	return that.Random(board, player)
}

// FindWinningAndLosingMoves plays the winning lookahead move for player, otherwise blocks the
// opponent's own lookahead move when that one would win, otherwise plays randomly.
//
// Only the cell the opponent's lookahead picks is checked. An opponent with two winning cells is
// blocked on at most one of them.
func (that *Player) FindWinningAndLosingMoves(board entity.Board, player entity.Mark) (entity.Coord, error) {
	opponent := player.Opponent()

	own, err := that.FindWinningMoves(board, player)
	if err != nil {
		return entity.Coord{}, err
	}

	theirs, err := that.FindWinningMoves(board, opponent)
	if err != nil {
		return entity.Coord{}, err
	}

	ownWins, err := winsWith(board, own, player)
	if err != nil {
		return entity.Coord{}, err
	}

	if ownWins {
		return own, nil
	}

	theirsWin, err := winsWith(board, theirs, opponent)
	if err != nil {
		return entity.Coord{}, err
	}

	if theirsWin {
		return theirs, nil
	}

	return that.Random(board, player)
}

func winsWith(board entity.Board, c entity.Coord, mark entity.Mark) (bool, error) {
	next, err := board.WithMove(c, mark)
	if err != nil {
		return false, fmt.Errorf("failed to simulate move: %w", err)
	}

	winner, ok := next.Winner()

	return ok && winner == mark, nil
}
