package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		game := entity.NewGame("123", "random_ai")

		// When: player X makes a turn
		err := MakeTurn(game, x, entity.Coord{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		expectedGame := &entity.Game{
			ID:        "123",
			Board:     entity.Board{x, e, e, e, e, e, e, e, e},
			Turn:      o,
			Status:    entity.StatusOngoing,
			Strategy:  "random_ai",
			BotMark:   x,
			HumanMark: o,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: new game where X took the corner
		game := entity.NewGame("123", "random_ai")
		require.NoError(t, MakeTurn(game, x, entity.Coord{Row: 0, Col: 0}))
		before := *game

		// When: player O tries to make a move to the same square
		err := MakeTurn(game, o, entity.Coord{Row: 0, Col: 0})

		// Then: an error ErrCellOccupied must be returned and the game state remains unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, before, *game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		game := entity.NewGame("123", "random_ai")

		err := MakeTurn(game, o, entity.Coord{Row: 1, Col: 1})

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.True(t, game.Board.IsEmpty())
	})

	t.Run("Error on invalid coordinate", func(t *testing.T) {
		game := entity.NewGame("123", "random_ai")

		err := MakeTurn(game, x, entity.Coord{Row: 3, Col: 3})

		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		game := entity.NewGame("123", "random_ai")
		game.Status = entity.StatusFinished

		err := MakeTurn(game, x, entity.Coord{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Error on waiting game", func(t *testing.T) {
		game := entity.NewGame("123", "random_ai")
		game.Status = entity.StatusWaiting

		err := MakeTurn(game, x, entity.Coord{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move away from the top row
		game := entity.NewGame("123", "random_ai")
		game.Board = entity.Board{x, x, e, o, o, e, e, e, e}

		// When: X completes the row
		err := MakeTurn(game, x, entity.Coord{Row: 0, Col: 2})
		require.NoError(t, err)

		// Then: X is the winner
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, x, game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Last move without a line is a tie", func(t *testing.T) {
		game := entity.NewGame("123", "random_ai")
		game.Board = entity.Board{x, o, x, x, o, o, o, x, e}

		err := MakeTurn(game, x, entity.Coord{Row: 2, Col: 2})
		require.NoError(t, err)

		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerTie, game.Winner)
	})
}
