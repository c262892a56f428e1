package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const menu = `
Select something to do:

    1 - Play a game of Tic Tac Toe
    2 - Get statistics
    3 - Download statistics
    4 - Load game history
    0 - Exit
`

const (
	prompt       = "> "
	noStatistics = "No games have been played yet: No statistics available!"
)

var errInputClosed = errors.New("input closed")

type gameUseCase interface {
	NewGame(ctx context.Context, strategy ai.Strategy) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, c entity.Coord) (*entity.Game, error)
	Stats(ctx context.Context) (*entity.Stats, error)
	ExportStats(ctx context.Context, path string) error
	ImportStats(ctx context.Context, path string) (*entity.Stats, error)
	Strategies() []ai.Strategy
}

// Console is the interactive menu driver over a line based input.
type Console struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	statsFile   string

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, gameUseCase gameUseCase, statsFile string, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		statsFile:   statsFile,

		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run shows the menu until the user exits, the input ends or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	defer that.println("Thank you for playing!")

	for ctx.Err() == nil {
		that.print(menu)

		choice, err := that.readLine(prompt)
		if errors.Is(err, errInputClosed) {
			return nil
		}

		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = that.playGame(ctx)
		case "2":
			err = that.printStats(ctx)
		case "3":
			err = that.downloadStats(ctx)
		case "4":
			err = that.loadGameHistory(ctx)
		case "0":
			return nil
		default:
			that.println("Invalid input! Try something else")
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (that *Console) playGame(ctx context.Context) error {
	strategy, err := that.selectStrategy()
	if err != nil {
		return err
	}

	game, err := that.gameUseCase.NewGame(ctx, strategy)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.print(game.Board.String())

	for !game.IsFinished() {
		c, err := that.readMove()
		if err != nil {
			return err
		}

		next, err := that.gameUseCase.MakeTurn(ctx, game.ID, c)
		if errors.Is(err, apperror.ErrGameFinished) && next != nil {
			game = next
			break
		}

		if errors.Is(err, apperror.ErrInvalidMove) || errors.Is(err, apperror.ErrInvalidCoordinate) {
			that.println(fmt.Sprintf("Invalid move %s: %v", c, err))
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		game = next
		that.print(game.Board.String())
	}

	that.print(game.Board.String())
	that.println(resultLine(game.Winner))

	return nil
}

func (that *Console) selectStrategy() (ai.Strategy, error) {
	that.println("Choose an AI to play against.")
	that.println("\nAIs available:")

	for i, s := range that.gameUseCase.Strategies() {
		that.println(fmt.Sprintf("    %d - %s", i+1, s))
	}

	for {
		inp, err := that.readLine(prompt)
		if err != nil {
			return 0, err
		}

		strategy, err := ai.ParseStrategy(inp)
		if err == nil {
			return strategy, nil
		}

		that.println("Invalid input, please try again.")
	}
}

func (that *Console) readMove() (entity.Coord, error) {
	for {
		inp, err := that.readLine("Enter the coordinates of where you want to place your next move (row col): ")
		if err != nil {
			return entity.Coord{}, err
		}

		c, err := entity.ParseCoord(inp)
		if err == nil {
			return c, nil
		}

		that.println(fmt.Sprintf("Invalid input %q: %v", inp, err))
	}
}

func (that *Console) printStats(ctx context.Context) error {
	stats, err := that.gameUseCase.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if stats.IsEmpty() {
		that.println(noStatistics)
		return nil
	}

	that.println("Leaderboard:")
	that.println(fmt.Sprintf(" - AI (X): %d games won (%.2f%%)", stats.X, stats.Percent(stats.X)))
	that.println(fmt.Sprintf(" - Human (O): %d games won (%.2f%%)", stats.O, stats.Percent(stats.O)))
	that.println(fmt.Sprintf(" - Draws: %d games (%.2f%%)", stats.Draw, stats.Percent(stats.Draw)))

	return nil
}

func (that *Console) downloadStats(ctx context.Context) error {
	err := that.gameUseCase.ExportStats(ctx, that.statsFile)
	if errors.Is(err, apperror.ErrNoStats) {
		that.println(noStatistics)
		return nil
	}

	if err != nil {
		that.logger.Error("failed to download stats", "error", err)
		that.println("Could not create the file, try again.")
		return nil
	}

	that.println("Your file has been created.")

	return nil
}

func (that *Console) loadGameHistory(ctx context.Context) error {
	path, err := that.readLine(fmt.Sprintf("Enter the file name [%s]: ", that.statsFile))
	if err != nil {
		return err
	}

	if path == "" {
		path = that.statsFile
	}

	if _, err = that.gameUseCase.ImportStats(ctx, path); err != nil {
		that.logger.Error("failed to load game history", "path", path, "error", err)
		that.println(fmt.Sprintf("Could not load game history from %s.", path))
		return nil
	}

	that.println("Game history successfully loaded.")

	return nil
}

func resultLine(winner entity.Mark) string {
	switch winner {
	case entity.PlayerX:
		return "The winner is the AI."
	case entity.PlayerO:
		return "The winner is the human"
	default:
		return "The game ended in a draw"
	}
}

func (that *Console) readLine(text string) (string, error) {
	that.print(text)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", errInputClosed
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}
