package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

// Game is one session of a human against a bot strategy.
type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Winner    Mark   `json:"winner"`
	Status    string `json:"status"`
	Turn      Mark   `json:"player_turn"`
	Strategy  string `json:"strategy"`
	BotMark   Mark   `json:"bot_mark"`
	HumanMark Mark   `json:"human_mark"`
}

// NewGame creates an ongoing game where the bot plays X and opens.
func NewGame(id, strategy string) *Game {
	return &Game{
		ID:        id,
		Turn:      PlayerX,
		Status:    StatusOngoing,
		Strategy:  strategy,
		BotMark:   PlayerX,
		HumanMark: PlayerO,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}
