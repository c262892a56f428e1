package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type StatsService interface {
	Record(ctx context.Context, winner entity.Mark) (*entity.Stats, error)
	Get(ctx context.Context) (*entity.Stats, error)

	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) (*entity.Stats, error)
}

type statsRepo interface {
	Get(ctx context.Context) (*entity.Stats, error)
	Save(ctx context.Context, stats *entity.Stats) error
	Increment(ctx context.Context, winner entity.Mark) (*entity.Stats, error)
}

type statsFile interface {
	Export(path string, stats *entity.Stats) error
	Import(path string) (*entity.Stats, error)
}

type statsService struct {
	statsRepo statsRepo
	statsFile statsFile
}

func NewStatsService(statsRepo statsRepo, statsFile statsFile) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		statsFile: statsFile,
	}
}

// Record counts a finished game. A tie or an empty winner counts as a draw.
func (that *statsService) Record(ctx context.Context, winner entity.Mark) (*entity.Stats, error) {
	stats, err := that.statsRepo.Increment(ctx, winner)
	if err != nil {
		return nil, fmt.Errorf("failed to record stats: %w", err)
	}

	return stats, nil
}

func (that *statsService) Get(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.statsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (that *statsService) Export(ctx context.Context, path string) error {
	stats, err := that.Get(ctx)
	if err != nil {
		return err
	}

	if stats.IsEmpty() {
		return apperror.ErrNoStats
	}

	if err = that.statsFile.Export(path, stats); err != nil {
		return fmt.Errorf("failed to export stats: %w", err)
	}

	return nil
}

// Import replaces the current stats with the ones stored at path.
func (that *statsService) Import(ctx context.Context, path string) (*entity.Stats, error) {
	stats, err := that.statsFile.Import(path)
	if err != nil {
		return nil, fmt.Errorf("failed to import stats: %w", err)
	}

	if err = that.statsRepo.Save(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to save stats: %w", err)
	}

	return stats, nil
}
