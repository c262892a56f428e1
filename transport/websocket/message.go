package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	actionGameNew  = "game:new"
	actionGameTurn = "game:turn"
	actionGameGet  = "game:get"
	actionStatsGet = "stats:get"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameID   string        `json:"game_id,omitempty"`
	Strategy string        `json:"strategy,omitempty"`
	Cell     *entity.Coord `json:"cell,omitempty"`
	Game     *entity.Game  `json:"game,omitempty"`
	Stats    *entity.Stats `json:"stats,omitempty"`
	Error    string        `json:"error,omitempty"`
}
