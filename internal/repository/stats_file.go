package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var ErrInvalidStats = errors.New("invalid stats")

// StatsFile reads and writes the flat stats JSON object.
type StatsFile struct{}

func NewStatsFile() *StatsFile {
	return &StatsFile{}
}

func (that *StatsFile) Export(path string, stats *entity.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("could not marshal stats: %w", err)
	}

	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}

func (that *StatsFile) Import(path string) (*entity.Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	var stats entity.Stats
	if err = json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	if stats.X < 0 || stats.O < 0 || stats.Draw < 0 || stats.Total < 0 {
		return nil, fmt.Errorf("%w: negative counter in %s", ErrInvalidStats, path)
	}

	if stats.Total != stats.X+stats.O+stats.Draw {
		return nil, fmt.Errorf("%w: total %d does not match the outcomes in %s", ErrInvalidStats, stats.Total, path)
	}

	return &stats, nil
}
