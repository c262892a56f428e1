package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statsRepositories runs fn against every StatsRepository implementation.
func statsRepositories(t *testing.T, fn func(t *testing.T, ctx context.Context, repo StatsRepository)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, context.Background(), NewMemoryStatsRepository())
	})

	t.Run("sqlite", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)
		fn(t, ctx, NewSQLiteStatsRepository(db.Connection))
	})

	t.Run("redis", func(t *testing.T) {
		ctx, st := suite.New(t)
		fn(t, ctx, NewStatsRepository(st.Storage))
	})
}

func TestStatsRepository_Get(t *testing.T) {
	t.Run("Get_Empty", func(t *testing.T) {
		statsRepositories(t, func(t *testing.T, ctx context.Context, statsRepo StatsRepository) {
			// When: Get is called before anything was saved
			stats, err := statsRepo.Get(ctx)

			// Then: empty stats are returned
			require.NoError(t, err)
			assert.Equal(t, &entity.Stats{}, stats)
		})
	})

	t.Run("Get_AfterSave", func(t *testing.T) {
		statsRepositories(t, func(t *testing.T, ctx context.Context, statsRepo StatsRepository) {
			// Given: saved stats
			saved := &entity.Stats{X: 4, O: 1, Draw: 2, Total: 7}
			require.NoError(t, statsRepo.Save(ctx, saved))

			// When: Get is called
			stats, err := statsRepo.Get(ctx)

			// Then: the saved counters are returned
			require.NoError(t, err)
			assert.Equal(t, saved, stats)
		})
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		statsRepositories(t, func(t *testing.T, ctx context.Context, statsRepo StatsRepository) {
			require.NoError(t, statsRepo.Save(ctx, &entity.Stats{X: 1, Total: 1}))
			require.NoError(t, statsRepo.Save(ctx, &entity.Stats{X: 1, Draw: 1, Total: 2}))

			stats, err := statsRepo.Get(ctx)

			require.NoError(t, err)
			assert.Equal(t, &entity.Stats{X: 1, Draw: 1, Total: 2}, stats)
		})
	})
}

func TestStatsRepository_Increment(t *testing.T) {
	t.Run("Increment_Counts", func(t *testing.T) {
		statsRepositories(t, func(t *testing.T, ctx context.Context, statsRepo StatsRepository) {
			// Given: stats loaded from a previous session
			require.NoError(t, statsRepo.Save(ctx, &entity.Stats{O: 1, Total: 1}))

			// When: an X win, an O win and a draw are recorded
			_, err := statsRepo.Increment(ctx, entity.PlayerX)
			require.NoError(t, err)
			_, err = statsRepo.Increment(ctx, entity.PlayerO)
			require.NoError(t, err)
			stats, err := statsRepo.Increment(ctx, entity.PlayerTie)
			require.NoError(t, err)

			// Then: the returned and the stored stats hold every result
			want := &entity.Stats{X: 1, O: 2, Draw: 1, Total: 4}
			assert.Equal(t, want, stats)

			stored, err := statsRepo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, stored)
		})
	})

	t.Run("Increment_Concurrent", func(t *testing.T) {
		statsRepositories(t, func(t *testing.T, ctx context.Context, statsRepo StatsRepository) {
			const games = 50

			var wg sync.WaitGroup
			for i := range games {
				wg.Add(1)
				go func() {
					defer wg.Done()

					winner := entity.PlayerX
					if i%2 == 1 {
						winner = entity.PlayerTie
					}

					_, err := statsRepo.Increment(ctx, winner)
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			stats, err := statsRepo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, &entity.Stats{X: games / 2, Draw: games / 2, Total: games}, stats)
		})
	})
}
