package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger          *slog.Logger
	gameUseCase     gameUseCase
	defaultStrategy ai.Strategy

	router *gin.Engine
}

// New builds the HTTP API. defaultStrategy is used when a new game request names none.
func New(logger *slog.Logger, gameUseCase gameUseCase, defaultStrategy ai.Strategy) *Server {
	server := &Server{
		logger:          logger.With("component", "rest"),
		gameUseCase:     gameUseCase,
		defaultStrategy: defaultStrategy,

		router: gin.New(),
	}

	server.router.Use(gin.Recovery())

	server.router.GET("/ping", server.ping)
	server.router.GET("/stats", server.getStats)
	server.router.GET("/strategies", server.getStrategies)

	games := server.router.Group("/games")
	games.POST("", server.createGame)
	games.GET("/:id", server.getGame)
	games.POST("/:id/turn", server.makeTurn)

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves the API until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
