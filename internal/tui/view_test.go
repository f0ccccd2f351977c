package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/akarpov/t2048/internal/board"
	"github.com/akarpov/t2048/internal/config"
	"github.com/akarpov/t2048/internal/core"
)

func newTestBoard() *board.Board {
	return board.New(rand.New(rand.NewSource(42)))
}

func TestDrawCellCentersValue(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{2, "  2  "},
		{16, " 16  "},
		{128, " 128 "},
		{2048, "2048 "},
	}

	for _, tt := range tests {
		s := core.NewScreen(cellWidth, 1)
		drawCell(s, 0, 0, tt.value, '.', config.ThemeColor)
		if got := s.Row(0); got != tt.want {
			t.Errorf("drawCell(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDrawCellEmptyUsesGlyph(t *testing.T) {
	s := core.NewScreen(cellWidth, 1)
	drawCell(s, 0, 0, 0, '.', config.ThemeColor)
	if got := s.Row(0); got != "  .  " {
		t.Errorf("empty cell = %q, want %q", got, "  .  ")
	}
}

func TestDrawGameLayout(t *testing.T) {
	b := newTestBoard()
	s := core.NewScreen(60, 12)
	drawGame(s, b, config.Default().UI)

	out := s.String()
	if !strings.Contains(out, statusPlaying) {
		t.Errorf("screen should contain the instruction line, got:\n%s", out)
	}
	if !strings.Contains(out, helpLine) {
		t.Errorf("screen should contain the help line, got:\n%s", out)
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	b := newTestBoard()
	s := core.NewScreen(30, 3)
	drawGame(s, b, config.Default().UI)

	if !strings.Contains(s.String(), "too small") {
		t.Errorf("small screen should show a resize hint, got:\n%s", s.String())
	}
}

func TestBoardLinesShape(t *testing.T) {
	b := newTestBoard()
	lines := boardLines(b, '.')

	if len(lines) != board.Size {
		t.Fatalf("expected %d lines, got %d", board.Size, len(lines))
	}

	tiles := 0
	for _, line := range lines {
		if n := len([]rune(line)); n != board.Size*cellWidth {
			t.Errorf("line %q has width %d, expected %d", line, n, board.Size*cellWidth)
		}
		for _, f := range strings.Fields(line) {
			if f != "." {
				tiles++
			}
		}
	}

	// A fresh board holds exactly the two starting tiles.
	if tiles != 2 {
		t.Errorf("expected 2 tiles on a fresh board, got %d", tiles)
	}
}

func TestTileColorThemes(t *testing.T) {
	if tileColor(2048, config.ThemeMono) != core.ColorDefault {
		t.Error("mono theme should not color tiles")
	}
	if tileColor(2, config.ThemeColor) == tileColor(2048, config.ThemeColor) {
		t.Error("color theme should distinguish tile values")
	}
}
