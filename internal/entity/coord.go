package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func CoordFromIndex(index int) (Coord, error) {
	if index < 0 || index >= CellCount {
		return Coord{}, fmt.Errorf("%w: index %d", apperror.ErrInvalidCoordinate, index)
	}

	return Coord{Row: index / BoardSize, Col: index % BoardSize}, nil
}

func (that Coord) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Coord) Validate() error {
	if that.Row < 0 || that.Row >= BoardSize || that.Col < 0 || that.Col >= BoardSize {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCoordinate, that)
	}

	return nil
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// ParseCoord reads "row,col", "row col" or a flat index.
// Ranges such as "0:3" or "0-2" address several cells and are rejected as invalid moves.
func ParseCoord(input string) (Coord, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Coord{}, fmt.Errorf("%w: empty input", apperror.ErrInvalidCoordinate)
	}

	if isRange(input) {
		return Coord{}, fmt.Errorf("%w: cannot make a move in more than one cell", apperror.ErrInvalidMove)
	}

	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	switch len(fields) {
	case 1:
		index, err := strconv.Atoi(fields[0])
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinate, input)
		}

		return CoordFromIndex(index)
	case 2:
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinate, input)
		}

		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinate, input)
		}

		c := Coord{Row: row, Col: col}
		if err = c.Validate(); err != nil {
			return Coord{}, err
		}

		return c, nil
	default:
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinate, input)
	}
}

func isRange(input string) bool {
	if strings.Contains(input, ":") {
		return true
	}

	before, after, found := strings.Cut(strings.TrimSpace(input), "-")

	return found && isDigits(before) && isDigits(after)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
