package console

import (
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-ai/testing/suite"
)

// every cell in row-major order, occupied ones are re-prompted
const allCells = "0 0\n0 1\n0 2\n1 0\n1 1\n1 2\n2 0\n2 1\n2 2\n"

func run(t *testing.T, statsFile, input string) string {
	t.Helper()

	logger := suite.NewLogger()
	player := ai.New(ai.WithRand(rand.New(rand.NewPCG(7, 8)))) //nolint: gosec // it's ok
	statsService := service.NewStatsService(repository.NewMemoryStatsRepository(), repository.NewStatsFile())
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(), service.NewBotService(player), statsService)

	var out bytes.Buffer
	require.NoError(t, New(logger, manager, statsFile, strings.NewReader(input), &out).Run(context.Background()))

	return out.String()
}

func TestConsole_Run(t *testing.T) {
	t.Run("Exit right away", func(t *testing.T) {
		out := run(t, "unused.json", "0\n")

		assert.Contains(t, out, "1 - Play a game of Tic Tac Toe")
		assert.True(t, strings.HasSuffix(out, "Thank you for playing!\n"))
	})

	t.Run("Closed input ends the session", func(t *testing.T) {
		out := run(t, "unused.json", "1\n")

		assert.Contains(t, out, "Choose an AI to play against.")
		assert.Contains(t, out, "Thank you for playing!")
	})

	t.Run("No statistics before the first game", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game_stats.json")

		out := run(t, path, "2\n3\n9\n0\n")

		assert.Equal(t, 2, strings.Count(out, noStatistics))
		assert.Contains(t, out, "Invalid input! Try something else")
		assert.NoFileExists(t, path)
	})

	t.Run("Play against minimax", func(t *testing.T) {
		// Given: a human who tries every cell in order
		path := filepath.Join(t.TempDir(), "game_stats.json")
		input := "1\nalpha_beta_ai\nminimax_ai\n" + "not a move\n0:3\n" + allCells + "2\n3\n0\n"

		// When: the session runs
		out := run(t, path, input)

		// Then: bad input was re-prompted
		assert.Contains(t, out, "Invalid input, please try again.")
		assert.Contains(t, out, `Invalid input "not a move"`)
		assert.Contains(t, out, `Invalid input "0:3"`)

		// And: the AI did not lose
		assert.NotContains(t, out, "The winner is the human")
		assert.True(t, strings.Contains(out, "The winner is the AI.") || strings.Contains(out, "The game ended in a draw"))

		// And: the game made it into the statistics and the file
		assert.Contains(t, out, "Leaderboard:")
		assert.Contains(t, out, " - Human (O): 0 games won (0.00%)")
		assert.Contains(t, out, "Your file has been created.")
		assert.FileExists(t, path)
	})

	t.Run("Load game history", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"X":2,"O":1,"Draw":1,"Total":4}`), 0o600))

		out := run(t, path, "4\n\n2\n0\n")

		assert.Contains(t, out, "Game history successfully loaded.")
		assert.Contains(t, out, " - AI (X): 2 games won (50.00%)")
		assert.Contains(t, out, " - Draws: 1 games (25.00%)")
	})

	t.Run("Load a missing file", func(t *testing.T) {
		out := run(t, "game_stats.json", "4\n"+filepath.Join(t.TempDir(), "absent.json")+"\n0\n")

		assert.Contains(t, out, "Could not load game history from")
	})
}

func TestResultLine(t *testing.T) {
	assert.Equal(t, "The winner is the AI.", resultLine("X"))
	assert.Equal(t, "The winner is the human", resultLine("O"))
	assert.Equal(t, "The game ended in a draw", resultLine("-"))
}
