package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	statsKey     = "stats"
	totalCounter = "Total"
)

// StatsRepository stores the single stats object. Get returns empty stats before the first Save.
// Increment records one finished game atomically and returns the stats after it.
type StatsRepository interface {
	Get(ctx context.Context) (*entity.Stats, error)
	Save(ctx context.Context, stats *entity.Stats) error
	Increment(ctx context.Context, winner entity.Mark) (*entity.Stats, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func (that *dbStats) Get(ctx context.Context) (*entity.Stats, error) {
	fields, err := that.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return statsFromHash(fields)
}

func (that *dbStats) Save(ctx context.Context, stats *entity.Stats) error {
	values := make(map[string]any, 4)
	for name, counter := range statsCounters(stats) {
		values[name] = *counter
	}

	if _, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, statsKey)
		pipe.HSet(ctx, statsKey, values)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to set stats: %w", err)
	}

	return nil
}

func (that *dbStats) Increment(ctx context.Context, winner entity.Mark) (*entity.Stats, error) {
	var all *redis.MapStringStringCmd

	if _, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, statsKey, counterName(winner), 1)
		pipe.HIncrBy(ctx, statsKey, totalCounter, 1)
		all = pipe.HGetAll(ctx, statsKey)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to increment stats: %w", err)
	}

	return statsFromHash(all.Val())
}

func statsFromHash(fields map[string]string) (*entity.Stats, error) {
	stats := &entity.Stats{}
	counters := statsCounters(stats)

	for name, value := range fields {
		counter, ok := counters[name]
		if !ok {
			continue
		}

		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s counter: %w", name, err)
		}

		*counter = count
	}

	return stats, nil
}

type sqliteStats struct {
	conn *sql.DB
}

// NewSQLiteStatsRepository expects the stats table created by storage.SQLite.Init.
func NewSQLiteStatsRepository(conn *sql.DB) StatsRepository {
	return &sqliteStats{
		conn: conn,
	}
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (that *sqliteStats) Get(ctx context.Context) (*entity.Stats, error) {
	return readStats(ctx, that.conn)
}

func readStats(ctx context.Context, conn querier) (*entity.Stats, error) {
	rows, err := conn.QueryContext(ctx, `SELECT name, count FROM stats`)
	if err != nil {
		return nil, fmt.Errorf("can't query stats: %w", err)
	}
	defer rows.Close()

	stats := &entity.Stats{}
	counters := statsCounters(stats)

	for rows.Next() {
		var (
			name  string
			count int
		)

		if err = rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("can't scan stats: %w", err)
		}

		if counter, ok := counters[name]; ok {
			*counter = count
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read stats: %w", err)
	}

	return stats, nil
}

func (that *sqliteStats) Save(ctx context.Context, stats *entity.Stats) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // rollback after commit is a no-op

	query := `INSERT INTO stats (name, count) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET count = excluded.count`

	for name, counter := range statsCounters(stats) {
		if _, err = tx.ExecContext(ctx, query, name, *counter); err != nil {
			return fmt.Errorf("can't save %s counter: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit stats: %w", err)
	}

	return nil
}

func (that *sqliteStats) Increment(ctx context.Context, winner entity.Mark) (*entity.Stats, error) {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // rollback after commit is a no-op

	query := `INSERT INTO stats (name, count) VALUES (?, 1) ON CONFLICT(name) DO UPDATE SET count = count + 1`

	for _, name := range []string{counterName(winner), totalCounter} {
		if _, err = tx.ExecContext(ctx, query, name); err != nil {
			return nil, fmt.Errorf("can't increment %s counter: %w", name, err)
		}
	}

	stats, err := readStats(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("can't commit stats: %w", err)
	}

	return stats, nil
}

// counterName is the persisted key counting games won by winner. Anything but X or O is a draw.
func counterName(winner entity.Mark) string {
	switch winner {
	case entity.PlayerX, entity.PlayerO:
		return string(winner)
	default:
		return "Draw"
	}
}

// statsCounters maps the persisted key of every counter to its field.
func statsCounters(stats *entity.Stats) map[string]*int {
	return map[string]*int{
		"X":          &stats.X,
		"O":          &stats.O,
		"Draw":       &stats.Draw,
		totalCounter: &stats.Total,
	}
}

type memoryStats struct {
	mu    sync.Mutex
	stats entity.Stats
}

func NewMemoryStatsRepository() StatsRepository {
	return &memoryStats{}
}

func (that *memoryStats) Get(_ context.Context) (*entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats := that.stats

	return &stats, nil
}

func (that *memoryStats) Save(_ context.Context, stats *entity.Stats) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stats = *stats

	return nil
}

func (that *memoryStats) Increment(_ context.Context, winner entity.Mark) (*entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stats.Record(winner)
	stats := that.stats

	return &stats, nil
}
