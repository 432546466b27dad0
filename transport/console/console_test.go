package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository"
	"github.com/rocketscienceinc/tictactoe-grid/internal/usecase"
)

func runConsole(t *testing.T, width, height int, input string) (string, *usecase.Session) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	session, err := usecase.NewSession(context.Background(), logger, repository.NewMemoryPlayerRepository(), nil,
		width, height, []*entity.Player{
			entity.NewPlayer("x", "Alice", "X"),
			entity.NewPlayer("o", "Bob", "O"),
		})
	require.NoError(t, err)

	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

	require.NoError(t, New(logger, session, strings.NewReader(input), out).Run(context.Background()))

	return buf.String(), session
}

func TestConsole_Run(t *testing.T) {
	t.Run("Renders the empty board and turn", func(t *testing.T) {
		// Given: No input at all
		// When: Running the console
		output, _ := runConsole(t, 3, 2, "")

		// Then: Labels, empty cells and the first player's turn are shown
		assert.Contains(t, output, "   0  1  2 \n")
		assert.Contains(t, output, "0  .  .  . \n")
		assert.Contains(t, output, "1  .  .  . \n")
		assert.Contains(t, output, "Turn: Alice (X)")
		assert.Contains(t, output, "Score (W-L): X 0-0  O 0-0")
	})

	t.Run("Places marks and alternates turns", func(t *testing.T) {
		// Given: Two placements
		// When: Running the console
		output, session := runConsole(t, 3, 3, "1 1\n0 2\n")

		// Then: Both marks are on the board and it is Alice's turn again
		assert.Contains(t, output, "1  .  X  . \n")
		assert.Contains(t, output, "2  O  .  . \n")
		assert.Equal(t, "x", session.Snapshot().CurrentPlayer.ID)
	})

	t.Run("Explains rejected input", func(t *testing.T) {
		// Given: An occupied cell, an off-board cell and nonsense
		// When: Running the console
		output, _ := runConsole(t, 3, 3, "1 1\n1 1\n5 0\nhello\n1 x\n")

		// Then: Each problem is reported
		assert.Contains(t, output, "cell (1, 1) is taken by Alice")
		assert.Contains(t, output, "coordinates are off the board")
		assert.Contains(t, output, errUsage.Error())
	})

	t.Run("Highlights the winning line and updates the score", func(t *testing.T) {
		// Given: Alice completes the top row
		// When: Running the console
		output, _ := runConsole(t, 3, 3, "0 0\n0 1\n1 0\n1 1\n2 0\n2 2\n")

		// Then: The row is bracketed, the win announced and further marks refused
		assert.Contains(t, output, "0 [X][X][X]\n")
		assert.Contains(t, output, "Alice (X) wins!")
		assert.Contains(t, output, "Score (W-L): X 1-0  O 0-1")
		assert.Contains(t, output, `game is over, type "restart" to play again`)
	})

	t.Run("Restarts and quits", func(t *testing.T) {
		// Given: A mark, a restart and a quit followed by more input
		// When: Running the console
		_, session := runConsole(t, 3, 3, "2 2\nrestart\nquit\n0 0\n")

		// Then: The board is empty and input after quit is ignored
		snapshot := session.Snapshot()
		for _, row := range snapshot.Rows {
			for _, cell := range row {
				assert.False(t, cell.Occupied)
			}
		}
	})

	t.Run("Reports a draw", func(t *testing.T) {
		// Given: Moves that fill the board without a line
		// When: Running the console
		output, _ := runConsole(t, 3, 3, "0 0\n1 0\n2 0\n1 1\n0 1\n2 1\n1 2\n0 2\n2 2\n")

		// Then: The draw is announced
		assert.Contains(t, output, "Draw.")
	})
}

func TestConsole_RunStopsOnCancel(t *testing.T) {
	// Given: Input that never ends
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	session, err := usecase.NewSession(context.Background(), logger, repository.NewMemoryPlayerRepository(), nil,
		3, 3, []*entity.Player{entity.NewPlayer("x", "Alice", "X")})
	require.NoError(t, err)

	reader, writer := io.Pipe()
	defer writer.Close()

	var buf bytes.Buffer
	console := New(logger, session, reader, termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When: Running with a canceled context
	err = console.Run(ctx)

	// Then: Run returns
	require.NoError(t, err)
}

func TestPad(t *testing.T) {
	assert.Equal(t, " X ", pad("X", 3))
	assert.Equal(t, "XY ", pad("XY", 3))
	assert.Equal(t, "long", pad("long", 2))
}
