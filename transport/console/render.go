package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/pentago-backend/internal/entity"
)

const emptyCell = "."

// render writes the composite board with board separators and a status line.
//
//	  0 1 2   3 4 5
//	0 1 . . | . . .
//	...
//	  ------+------
func render(out io.Writer, game *entity.Game) error {
	var sb strings.Builder

	width := game.Width()

	sb.WriteString(" ")
	for x := 0; x < width; x++ {
		if x > 0 && x%game.BoardSize == 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, " %d", x)
	}
	sb.WriteString("\n")

	for y := 0; y < width; y++ {
		if y > 0 && y%game.BoardSize == 0 {
			sb.WriteString("  " + separator(game) + "\n")
		}

		fmt.Fprintf(&sb, "%d", y)
		for x := 0; x < width; x++ {
			if x > 0 && x%game.BoardSize == 0 {
				sb.WriteString(" |")
			}
			sb.WriteString(" " + cell(game.PieceAt(x, y)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(status(game) + "\n")

	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func separator(game *entity.Game) string {
	parts := make([]string, game.Size)
	for i := range parts {
		parts[i] = strings.Repeat("-", 2*game.BoardSize-1)
	}

	return strings.Join(parts, "-+-")
}

func cell(player int) string {
	if player == entity.NoPlayer {
		return emptyCell
	}

	return fmt.Sprint(player)
}

func status(game *entity.Game) string {
	if game.IsFinished() {
		return fmt.Sprintf("player %d wins!", game.Winner)
	}

	return fmt.Sprintf("player %d to %s", game.Turn, game.Phase)
}
