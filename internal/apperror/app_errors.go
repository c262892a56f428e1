package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoLegalMoves      = errors.New("no legal moves left")

	// ErrCellOccupied is an ErrInvalidMove.
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)

	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrUnknownStrategy  = errors.New("unknown strategy")
	ErrNotFound         = errors.New("not found")
	ErrNoStats          = errors.New("no games have been played yet")
)
