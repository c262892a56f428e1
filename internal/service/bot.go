package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

var ErrNotBotTurn = errors.New("it's not the bot's turn")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Coord, error)
}

type botService struct {
	player *ai.Player
}

func NewBotService(player *ai.Player) BotService {
	return &botService{
		player: player,
	}
}

// MakeTurn asks the game's strategy for a move and plays it with the bot mark.
func (that *botService) MakeTurn(game *entity.Game) (entity.Coord, error) {
	if !game.IsBotTurn() {
		return entity.Coord{}, ErrNotBotTurn
	}

	strategy, err := ai.ParseStrategy(game.Strategy)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("failed to parse strategy: %w", err)
	}

	move, err := that.player.Select(strategy)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("failed to select strategy: %w", err)
	}

	chosenCell, err := move(game.Board, game.BotMark)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%s failed to choose a move: %w", strategy, err)
	}

	if err = tictactoe.MakeTurn(game, game.BotMark, chosenCell); err != nil {
		return entity.Coord{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return chosenCell, nil
}
