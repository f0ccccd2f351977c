package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/akarpov/t2048/internal/board"
	"github.com/akarpov/t2048/internal/config"
	"github.com/akarpov/t2048/internal/core"
)

const cellWidth = 5

// Status and help text shown below the board.
const (
	statusWon     = "You won!"
	statusLost    = "You lost!"
	statusPlaying = "Use the arrow keys or H, J, K, L to move."
	helpLine      = "N for new game, Q to quit."
	minScreenW    = board.Size * cellWidth
	minScreenH    = board.Size + 4
)

// tileColor maps a tile value to its display color.
func tileColor(value int, theme string) core.Color {
	if theme == config.ThemeMono {
		return core.ColorDefault
	}
	switch value {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorBrightYellow
	case 32:
		return core.ColorOrange
	case 64:
		return core.ColorBrightRed
	case 128:
		return core.ColorGreen
	case 256:
		return core.ColorBrightGreen
	case 512:
		return core.ColorCyan
	case 1024:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightMagenta
	}
}

// drawGame renders the board, status line and help line onto the screen.
func drawGame(dst *core.Screen, b *board.Board, ui config.UIConfig) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	glyph := emptyGlyph(ui.EmptyGlyph)

	boardW := board.Size * cellWidth
	boardX := (dst.Width() - boardW) / 2
	boardY := core.Max(0, (dst.Height()-minScreenH)/2)

	for r := range board.Size {
		for c := range board.Size {
			drawCell(dst, boardX+c*cellWidth, boardY+r, b.Cell(r, c), glyph, ui.Theme)
		}
	}

	status := statusPlaying
	statusColor := core.ColorDefault
	switch {
	case b.Won():
		status = statusWon
		statusColor = core.ColorBrightGreen
	case b.Lost():
		status = statusLost
		statusColor = core.ColorBrightRed
	}

	statusY := boardY + board.Size + 1
	drawCentered(dst, statusY, status, statusColor)
	drawCentered(dst, statusY+2, helpLine, core.ColorGray)
}

// drawCell draws one fixed-width cell with its value centered, or the
// placeholder glyph when empty.
func drawCell(dst *core.Screen, x, y, value int, glyph rune, theme string) {
	text := string(glyph)
	color := core.ColorGray
	if value != 0 {
		text = strconv.Itoa(value)
		color = tileColor(value, theme)
	}

	pad := core.Max(0, (cellWidth-utf8.RuneCountInString(text))/2)
	for i := range cellWidth {
		dst.Set(x+i, y, ' ')
	}
	dst.DrawTextColored(x+pad, y, text, color)
}

func drawCentered(dst *core.Screen, y int, text string, color core.Color) {
	x := core.Max(0, (dst.Width()-len(text))/2)
	dst.DrawTextColored(x, y, text, color)
}

// emptyGlyph picks the first rune of the configured glyph, falling back
// to the default when the config value is empty.
func emptyGlyph(s string) rune {
	for _, r := range s {
		return r
	}
	for _, r := range config.Default().UI.EmptyGlyph {
		return r
	}
	return '.'
}

// boardLines returns the board as plain text rows of fixed-width cells.
func boardLines(b *board.Board, glyph rune) []string {
	lines := make([]string, 0, board.Size)
	for r := range board.Size {
		var sb strings.Builder
		for c := range board.Size {
			text := string(glyph)
			if v := b.Cell(r, c); v != 0 {
				text = strconv.Itoa(v)
			}
			width := utf8.RuneCountInString(text)
			pad := core.Max(0, (cellWidth-width)/2)
			sb.WriteString(strings.Repeat(" ", pad))
			sb.WriteString(text)
			sb.WriteString(strings.Repeat(" ", cellWidth-pad-width))
		}
		lines = append(lines, sb.String())
	}
	return lines
}
