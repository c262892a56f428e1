package ai

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// MoveFunc picks a cell for player. It fails with apperror.ErrNoLegalMoves on a full board.
type MoveFunc func(board entity.Board, player entity.Mark) (entity.Coord, error)

type Strategy int

const (
	Random Strategy = iota + 1
	FindWinningMoves
	FindWinningAndLosingMoves
	Minimax
)

var strategyNames = map[Strategy]string{
	Random:                    "random_ai",
	FindWinningMoves:          "find_winning_moves_ai",
	FindWinningAndLosingMoves: "find_winning_moves_and_losing_moves_ai",
	Minimax:                   "minimax_ai",
}

// Strategies returns every strategy in menu order.
func Strategies() []Strategy {
	return []Strategy{Random, FindWinningMoves, FindWinningAndLosingMoves, Minimax}
}

// ParseStrategy accepts an identifier such as "minimax_ai" or its menu number.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if name == s.String() || name == fmt.Sprint(int(s)) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, name)
}

func (that Strategy) String() string {
	if name, ok := strategyNames[that]; ok {
		return name
	}

	return fmt.Sprintf("strategy(%d)", int(that))
}

func (that Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[that]; !ok {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownStrategy, int(that))
	}

	return []byte(that.String()), nil
}

func (that *Strategy) UnmarshalText(text []byte) error {
	s, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}

	*that = s

	return nil
}

type Option func(*Player)

// WithRand fixes the random source used for sampling and corner openings.
func WithRand(rnd *rand.Rand) Option {
	return func(p *Player) {
		p.rnd = rnd
	}
}

// WithParallelSearch evaluates the top-level minimax branches concurrently.
func WithParallelSearch() Option {
	return func(p *Player) {
		p.parallel = true
	}
}

// Player holds what the strategies share: the random source and search options.
type Player struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	parallel bool
}

func New(opts ...Option) *Player {
	player := &Player{}
	for _, opt := range opts {
		opt(player)
	}

	return player
}

// Select is the single dispatch point from a strategy to its move function.
func Select(s Strategy, opts ...Option) (MoveFunc, error) {
	return New(opts...).Select(s)
}

func (that *Player) Select(s Strategy) (MoveFunc, error) {
	switch s {
	case Random:
		return that.Random, nil
	case FindWinningMoves:
		return that.FindWinningMoves, nil
	case FindWinningAndLosingMoves:
		return that.FindWinningAndLosingMoves, nil
	case Minimax:
		if that.parallel {
			return that.ParallelMinimax, nil
		}
		return that.Minimax, nil
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownStrategy, s)
	}
}

func (that *Player) intN(n int) int {
	if that.rnd == nil {
		return rand.IntN(n) //nolint: gosec // it's ok
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.IntN(n)
}
