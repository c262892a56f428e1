package rest

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type gameUseCase interface {
	NewGame(ctx context.Context, strategy ai.Strategy) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, c entity.Coord) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	Stats(ctx context.Context) (*entity.Stats, error)
	Strategies() []ai.Strategy
}

type newGameRequest struct {
	Strategy string `json:"strategy"`
}

type turnRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

type statsResponse struct {
	entity.Stats

	Percent map[string]float64 `json:"percent"`
}

func (that *Server) ping(ctx *gin.Context) {
	ctx.String(http.StatusOK, "pong")
}

func (that *Server) getStats(ctx *gin.Context) {
	stats, err := that.gameUseCase.Stats(ctx.Request.Context())
	if err != nil {
		that.sendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, statsResponse{
		Stats: *stats,
		Percent: map[string]float64{
			string(entity.PlayerX): stats.Percent(stats.X),
			string(entity.PlayerO): stats.Percent(stats.O),
			"Draw":                 stats.Percent(stats.Draw),
		},
	})
}

func (that *Server) getStrategies(ctx *gin.Context) {
	strategies := that.gameUseCase.Strategies()

	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		names = append(names, s.String())
	}

	ctx.JSON(http.StatusOK, gin.H{"strategies": names})
}

func (that *Server) createGame(ctx *gin.Context) {
	var req newGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid game request"})
		return
	}

	strategy := that.defaultStrategy
	if req.Strategy != "" {
		var err error
		if strategy, err = ai.ParseStrategy(req.Strategy); err != nil {
			that.sendError(ctx, err)
			return
		}
	}

	game, err := that.gameUseCase.NewGame(ctx.Request.Context(), strategy)
	if err != nil {
		that.sendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, game)
}

func (that *Server) getGame(ctx *gin.Context) {
	game, err := that.gameUseCase.GetGame(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		that.sendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

func (that *Server) makeTurn(ctx *gin.Context) {
	var req turnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid turn data"})
		return
	}

	game, err := that.gameUseCase.MakeTurn(ctx.Request.Context(), ctx.Param("id"), entity.Coord{Row: *req.Row, Col: *req.Col})
	if errors.Is(err, apperror.ErrGameFinished) && game != nil && game.IsFinished() {
		ctx.JSON(http.StatusOK, game)
		return
	}

	if err != nil {
		that.sendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

func (that *Server) sendError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrInvalidCoordinate),
		errors.Is(err, apperror.ErrUnknownStrategy),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted):
		status = http.StatusBadRequest
	default:
		that.logger.Error("request failed", "path", ctx.FullPath(), "error", err)
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
