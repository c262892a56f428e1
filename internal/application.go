package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-ai/transport/console"
	"github.com/rocketscienceinc/tictactoe-ai/transport/rest"
	"github.com/rocketscienceinc/tictactoe-ai/transport/websocket"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrUnknownStorage = errors.New("unknown storage")
)

type repositories struct {
	game  repository.GameRepository
	stats repository.StatsRepository

	closers []io.Closer
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	defaultStrategy, err := ai.ParseStrategy(conf.AI.DefaultStrategy)
	if err != nil {
		return fmt.Errorf("invalid default strategy: %w", err)
	}

	repos, err := openRepositories(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		for _, closer := range repos.closers {
			if err = closer.Close(); err != nil {
				log.Error("could not close storage", "error", err)
			}
		}
	}()

	var opts []ai.Option
	if conf.AI.ParallelSearch {
		opts = append(opts, ai.WithParallelSearch())
	}

	botService := service.NewBotService(ai.New(opts...))
	statsService := service.NewStatsService(repos.stats, repository.NewStatsFile())
	gameManager := usecase.NewGameManager(logger, repos.game, botService, statsService)

	switch conf.Mode {
	case config.ModeConsole:
		return runConsole(ctx, logger, conf, gameManager)
	case config.ModeServer:
		return runServers(ctx, logger, conf, gameManager, defaultStrategy)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}
}

func openRepositories(ctx context.Context, conf *config.Config) (*repositories, error) {
	switch conf.Storage {
	case config.StorageMemory:
		return &repositories{
			game:  repository.NewMemoryGameRepository(),
			stats: repository.NewMemoryStatsRepository(),
		}, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return &repositories{
			game:    repository.NewGameRepository(redisStorage),
			stats:   repository.NewStatsRepository(redisStorage),
			closers: []io.Closer{redisStorage},
		}, nil
	case config.StorageSQLite:
		if err := os.MkdirAll(filepath.Dir(conf.SQLiteStoragePath), 0o750); err != nil {
			return nil, fmt.Errorf("could not create sqlite directory: %w", err)
		}

		sqliteStorage, err := storage.NewSQLite(conf.SQLiteStoragePath)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		// sessions are short lived, only the stats go to sqlite
		return &repositories{
			game:    repository.NewMemoryGameRepository(),
			stats:   repository.NewSQLiteStatsRepository(sqliteStorage.Connection),
			closers: []io.Closer{sqliteStorage},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStorage, conf.Storage)
	}
}

func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, gameManager *usecase.GameManager) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- console.New(logger, gameManager, conf.StatsFile, os.Stdin, os.Stdout).Run(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

func runServers(ctx context.Context, logger *slog.Logger, conf *config.Config, gameManager *usecase.GameManager, defaultStrategy ai.Strategy) error {
	log := logger.With("component", "app")

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, gameManager, defaultStrategy).Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, defaultStrategy)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
