package console

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-grid/internal/usecase"
)

// render prints the grid with column and row labels. Winning cells are bracketed and highlighted.
func (that *Console) render(snapshot usecase.Snapshot) {
	var sb strings.Builder

	width := cellWidth(snapshot)

	sb.WriteString(strings.Repeat(" ", labelWidth(snapshot.Height)+1))
	for x := 0; x < snapshot.Width; x++ {
		sb.WriteString(" " + pad(strconv.Itoa(x), width) + " ")
	}
	sb.WriteString("\n")

	for y, row := range snapshot.Rows {
		sb.WriteString(pad(strconv.Itoa(y), labelWidth(snapshot.Height)) + " ")

		for _, cell := range row {
			sb.WriteString(that.renderCell(cell, width))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(that.status(snapshot))
	sb.WriteString("\n")
	sb.WriteString(scoreboard(snapshot))
	sb.WriteString("\n")

	_, _ = fmt.Fprint(that.out, sb.String())
}

func (that *Console) renderCell(cell usecase.CellView, width int) string {
	text := " " + pad(emptyCell, width) + " "
	if cell.Occupied {
		text = " " + pad(cell.Sign, width) + " "
	}

	if cell.Combo {
		text = "[" + pad(cell.Sign, width) + "]"

		return that.out.String(text).Foreground(that.out.Color("2")).Bold().Reverse().String()
	}

	if cell.Occupied {
		return that.out.String(text).Bold().String()
	}

	return that.out.String(text).Faint().String()
}

func (that *Console) status(snapshot usecase.Snapshot) string {
	switch snapshot.Outcome {
	case tictactoe.OutcomeWon.String():
		return that.out.String(fmt.Sprintf("%s (%s) wins!", snapshot.Winner.Name, snapshot.Winner.Sign)).
			Foreground(that.out.Color("2")).Bold().String()
	case tictactoe.OutcomeDraw.String():
		return that.out.String("Draw.").Foreground(that.out.Color("3")).Bold().String()
	default:
		return fmt.Sprintf("Turn: %s (%s)", snapshot.CurrentPlayer.Name, snapshot.CurrentPlayer.Sign)
	}
}

func scoreboard(snapshot usecase.Snapshot) string {
	entries := make([]string, 0, len(snapshot.Players))
	for _, player := range snapshot.Players {
		entries = append(entries, fmt.Sprintf("%s %d-%d", player.Sign, player.Wins, player.Losses))
	}

	return "Score (W-L): " + strings.Join(entries, "  ")
}

func (that *Console) prompt() {
	_, _ = fmt.Fprint(that.out, "> ")
}

func (that *Console) printError(message string) {
	_, _ = fmt.Fprintln(that.out, that.out.String(message).Foreground(that.out.Color("1")).String())
}

// cellWidth fits the widest sign and column label.
func cellWidth(snapshot usecase.Snapshot) int {
	width := utf8.RuneCountInString(strconv.Itoa(snapshot.Width - 1))
	for _, player := range snapshot.Players {
		width = max(width, utf8.RuneCountInString(player.Sign))
	}

	return width
}

func labelWidth(height int) int {
	return utf8.RuneCountInString(strconv.Itoa(height - 1))
}

func pad(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}

	left := gap / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
