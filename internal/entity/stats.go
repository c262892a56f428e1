package entity

// Stats counts finished games. It serializes to the flat {"X","O","Draw","Total"} object.
type Stats struct {
	X     int `json:"X"`
	O     int `json:"O"`
	Draw  int `json:"Draw"`
	Total int `json:"Total"`
}

// Record counts one finished game. Anything but X or O is a draw.
func (that *Stats) Record(winner Mark) {
	switch winner {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	default:
		that.Draw++
	}

	that.Total++
}

// Percent returns count as a share of all games.
func (that *Stats) Percent(count int) float64 {
	if that.Total == 0 {
		return 0
	}

	return float64(count) / float64(that.Total) * 100
}

func (that *Stats) IsEmpty() bool {
	return that.Total == 0
}
