package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (entity.Coord, error)
}

type statsService interface {
	Record(ctx context.Context, winner entity.Mark) (*entity.Stats, error)
	Get(ctx context.Context) (*entity.Stats, error)
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) (*entity.Stats, error)
}

const gameLockStripes = 64

// GameManager drives human-against-bot games. The bot always plays X and opens, the human plays O.
// Turns on the same game are serialized within the process.
type GameManager struct {
	logger *slog.Logger

	gameLocks [gameLockStripes]sync.Mutex

	gameRepo     gameRepo
	botService   botService
	statsService statsService
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, botService botService, statsService statsService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:     gameRepo,
		botService:   botService,
		statsService: statsService,
	}
}

// NewGame creates a game against strategy and plays the bot's opening move.
func (that *GameManager) NewGame(ctx context.Context, strategy ai.Strategy) (*entity.Game, error) {
	if _, err := strategy.MarshalText(); err != nil {
		return nil, err
	}

	game := entity.NewGame(uuid.NewString(), strategy.String())

	if _, err := that.botService.MakeTurn(game); err != nil {
		return nil, fmt.Errorf("failed to make bot turn: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "strategy", game.Strategy)

	return game, nil
}

// MakeTurn plays the human move and the bot reply. When the game ends the stats are recorded, the game
// is removed from storage and the final game is returned together with apperror.ErrGameFinished.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, c entity.Coord) (*entity.Game, error) {
	unlock := that.lockGame(gameID)
	defer unlock()

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeTurn(game, game.HumanMark, c); err != nil {
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if !game.IsFinished() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("failed to make bot turn: %w", err)
		}
	}

	if game.IsFinished() {
		return game, that.finishGame(ctx, game)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) Stats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.statsService.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (that *GameManager) ExportStats(ctx context.Context, path string) error {
	if err := that.statsService.Export(ctx, path); err != nil {
		return fmt.Errorf("failed to download stats: %w", err)
	}

	that.logger.Info("stats exported", "path", path)

	return nil
}

func (that *GameManager) ImportStats(ctx context.Context, path string) (*entity.Stats, error) {
	stats, err := that.statsService.Import(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load game history: %w", err)
	}

	that.logger.Info("stats imported", "path", path, "total", stats.Total)

	return stats, nil
}

func (that *GameManager) Strategies() []ai.Strategy {
	return ai.Strategies()
}

// lockGame holds the stripe guarding gameID until the returned func is called.
func (that *GameManager) lockGame(gameID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(gameID))

	mu := &that.gameLocks[h.Sum32()%gameLockStripes]
	mu.Lock()

	return mu.Unlock
}

func (that *GameManager) finishGame(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	if _, err := that.statsService.Record(ctx, game.Winner); err != nil {
		return fmt.Errorf("failed to record stats: %w", err)
	}

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	log.Info("game finished", "winner", game.Winner)

	return apperror.ErrGameFinished
}

// IsFinished reports whether err only signals the end of the game.
func IsFinished(err error) bool {
	return errors.Is(err, apperror.ErrGameFinished)
}
