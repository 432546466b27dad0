package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-grid/internal/usecase"
)

const emptyCell = "."

var errUsage = errors.New(`expected "x y", "restart" or "quit"`)

type gameSession interface {
	PlaceMark(ctx context.Context, x, y int) (usecase.Snapshot, error)
	Restart(ctx context.Context) usecase.Snapshot
	Snapshot() usecase.Snapshot
}

// Console is a hot-seat terminal frontend: players take turns typing coordinates.
type Console struct {
	logger  *slog.Logger
	session gameSession
	in      io.Reader
	out     *termenv.Output
}

func New(logger *slog.Logger, session gameSession, in io.Reader, out *termenv.Output) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		session: session,
		in:      in,
		out:     out,
	}
}

// Run renders the board and reads commands until quit, end of input or ctx cancellation.
func (that *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	that.render(that.session.Snapshot())

	for {
		that.prompt()

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}

				return nil
			}

			if quit := that.handle(ctx, line); quit {
				return nil
			}
		}
	}
}

// handle executes one command line and reports whether the user asked to quit.
func (that *Console) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)

	switch {
	case len(fields) == 0:
		return false
	case len(fields) == 1 && (fields[0] == "quit" || fields[0] == "exit"):
		return true
	case len(fields) == 1 && fields[0] == "restart":
		that.render(that.session.Restart(ctx))
		return false
	}

	x, y, err := parseCoordinates(fields)
	if err != nil {
		that.printError(err.Error())
		return false
	}

	snapshot, err := that.session.PlaceMark(ctx, x, y)
	if err != nil {
		that.printError(describeError(err))
		return false
	}

	that.render(snapshot)

	return false
}

func parseCoordinates(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, errUsage
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errUsage
	}

	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errUsage
	}

	return x, y, nil
}

func describeError(err error) string {
	var occupied *tictactoe.OccupiedError

	switch {
	case errors.As(err, &occupied):
		return fmt.Sprintf("cell (%d, %d) is taken by %s", occupied.X, occupied.Y, occupied.Owner.Name)
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "coordinates are off the board"
	case errors.Is(err, apperror.ErrGameFinished):
		return `game is over, type "restart" to play again`
	default:
		return err.Error()
	}
}
