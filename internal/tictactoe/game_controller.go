package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// MakeTurn applies the move of mark at c to the game. The game is left untouched on error.
func MakeTurn(gameInstance *entity.Game, mark entity.Mark, c entity.Coord) error {
	if err := ConfirmOngoingState(gameInstance); err != nil {
		return err
	}

	if gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := gameInstance.Board.WithMove(c, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board = board
	updateGameStatus(gameInstance, mark)

	return nil
}

// ConfirmOngoingState - checks the game accepts moves.
func ConfirmOngoingState(gameInstance *entity.Game) error {
	switch gameInstance.Status {
	case entity.StatusOngoing:
		return nil
	case entity.StatusWaiting:
		return apperror.ErrGameIsNotStarted
	case entity.StatusFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("unknown game status: %s", gameInstance.Status)
	}
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, mark entity.Mark) {
	switch result := Evaluate(gameInstance.Board); result.Outcome {
	case Win:
		gameInstance.Winner = result.Winner
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.EmptyCell
	case Draw:
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.EmptyCell
	default:
		gameInstance.Turn = mark.Opponent()
	}
}
