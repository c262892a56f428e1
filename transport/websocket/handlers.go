package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, ok := that.readPayload(msg)
	if !ok {
		return that.sendErrorResponse(conn, msg.Action, "invalid payload")
	}

	strategy := that.defaultStrategy
	if payloadReq.Strategy != "" {
		var err error
		if strategy, err = ai.ParseStrategy(payloadReq.Strategy); err != nil {
			return that.sendErrorResponse(conn, msg.Action, err.Error())
		}
	}

	game, err := that.gameUseCase.NewGame(ctx, strategy)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new game")
	}

	log.Info("game created", "gameID", game.ID)

	return that.sendMessage(conn, msg.Action, Payload{Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, ok := that.readPayload(msg)
	if !ok {
		return that.sendErrorResponse(conn, msg.Action, "invalid payload")
	}

	if payloadReq.GameID == "" {
		return that.sendErrorResponse(conn, msg.Action, "game_id is required")
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(conn, msg.Action, "cell is required")
	}

	log = log.With("gameID", payloadReq.GameID)

	game, err := that.gameUseCase.MakeTurn(ctx, payloadReq.GameID, *payloadReq.Cell)
	if errors.Is(err, apperror.ErrGameFinished) && game != nil && game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
		return that.sendMessage(conn, msg.Action, Payload{Game: game})
	}

	if err != nil {
		if !isClientError(err) {
			log.Error("failed to make turn", "error", err)
		}

		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: game})
}

func (that *Server) handleGetGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok := that.readPayload(msg)
	if !ok {
		return that.sendErrorResponse(conn, msg.Action, "invalid payload")
	}

	game, err := that.gameUseCase.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: game})
}

func (that *Server) handleGetStats(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	stats, err := that.gameUseCase.Stats(ctx)
	if err != nil {
		that.logger.Error("failed to get stats", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to get stats")
	}

	return that.sendMessage(conn, msg.Action, Payload{Stats: stats})
}

// readPayload decodes the message payload. An absent payload is an empty one.
func (that *Server) readPayload(msg *Message) (Payload, bool) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, true
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.logger.Warn("failed to unmarshal payload", "action", msg.Action, "error", err)
		return payload, false
	}

	return payload, true
}

func isClientError(err error) bool {
	return errors.Is(err, apperror.ErrNotFound) ||
		errors.Is(err, apperror.ErrInvalidMove) ||
		errors.Is(err, apperror.ErrInvalidCoordinate) ||
		errors.Is(err, apperror.ErrNotYourTurn)
}
