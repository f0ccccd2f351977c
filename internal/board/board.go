// Package board implements the 2048 board engine: grid state, the
// direction-generic slide/merge algorithm, tile spawning and win/loss
// detection. It contains no terminal or platform dependencies so the
// game logic stays pure and testable.
package board

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Size is the board dimension (Size x Size grid).
const Size = 4

// Goal is the tile value that wins the game.
const Goal = 2048

// Spawn weights: a new tile is 2 nine times out of ten, 4 otherwise.
const (
	spawnWeight2 = 9
	spawnWeight4 = 1
)

// Grid holds the tile values. Zero means empty; occupied cells are always
// powers of two >= 2.
type Grid [Size][Size]int

// Board owns the grid state and the win/loss flags. It is not safe for
// concurrent use; a single input loop is expected to drive it.
type Board struct {
	cells Grid
	won   bool
	lost  bool
	moves int
	rng   *rand.Rand
}

// New creates a board seeded from rng and deals the two starting tiles.
// A nil rng falls back to a time-based seed.
func New(rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &Board{rng: rng}
	b.Reset()
	return b
}

// Reset reinitializes to a fresh starting state: empty grid, two spawned
// tiles, flags cleared.
func (b *Board) Reset() {
	b.cells = Grid{}
	b.won = false
	b.lost = false
	b.moves = 0
	b.spawnTile()
	b.spawnTile()
}

// spawnTile places a new tile in a uniformly random empty cell.
// No-op when the grid is full; fullness itself is a loss-detection concern.
func (b *Board) spawnTile() {
	empty := b.cells.emptyCells()
	if len(empty) == 0 {
		return
	}
	p := empty[b.rng.Intn(len(empty))]
	b.cells[p.Row][p.Col] = b.randTile()
}

// randTile returns 2 or 4 with the fixed 9:1 skew.
func (b *Board) randTile() int {
	if b.rng.Intn(spawnWeight2+spawnWeight4) < spawnWeight2 {
		return 2
	}
	return 4
}

// Move applies one full-board move in the given direction and reports
// whether anything changed. Once the game is over every move is a no-op
// until Reset. After a changed move that leaves the game running, exactly
// one new tile is spawned.
func (b *Board) Move(dir Direction) bool {
	if b.GameOver() {
		return false
	}

	moved := b.slide(&b.cells, dir, false)

	// Loss is checked after the slide and before the spawn: stuck means no
	// direction can change anything from here.
	b.lost = !b.won && !b.canMove()

	if moved {
		b.moves++
		if !b.GameOver() {
			b.spawnTile()
		}
	}
	return moved
}

// slide runs the slide/merge pass over every line of dir, mutating g.
// For each position in a line (far edge first): pull the next occupied cell
// into a gap, stop the line once a gap persists, then merge one step with
// the next occupied cell when values match. A cell that just merged is not
// reconsidered, so each tile merges at most once per move.
//
// With checkOnly set the won flag is left untouched; callers pass a scratch
// copy of the grid to test move legality without touching real state.
func (b *Board) slide(g *Grid, dir Direction, checkOnly bool) bool {
	moved := false
	for _, line := range traversals[dir] {
		for i, p := range line {
			rest := line[i+1:]
			if g[p.Row][p.Col] == 0 {
				if q, ok := nextOccupied(g, rest); ok {
					g[p.Row][p.Col] = g[q.Row][q.Col]
					g[q.Row][q.Col] = 0
					moved = true
				}
			}
			if g[p.Row][p.Col] == 0 {
				// Still empty: everything further along the line is empty too.
				break
			}
			q, ok := nextOccupied(g, rest)
			if !ok {
				break
			}
			if g[q.Row][q.Col] == g[p.Row][p.Col] {
				g[q.Row][q.Col] = 0
				g[p.Row][p.Col] *= 2
				moved = true
				if !checkOnly && g[p.Row][p.Col] == Goal {
					b.won = true
				}
			}
		}
	}
	return moved
}

// canMove reports whether any direction would change the grid, using
// dry-run slides over disposable copies.
func (b *Board) canMove() bool {
	for _, d := range Directions {
		scratch := b.cells
		if b.slide(&scratch, d, true) {
			return true
		}
	}
	return false
}

// nextOccupied returns the first occupied position among rest, in order.
func nextOccupied(g *Grid, rest []Pos) (Pos, bool) {
	for _, p := range rest {
		if g[p.Row][p.Col] != 0 {
			return p, true
		}
	}
	return Pos{}, false
}

// Won reports whether a merge has produced the goal tile.
func (b *Board) Won() bool {
	return b.won
}

// Lost reports whether the board is stuck with no legal move.
func (b *Board) Lost() bool {
	return b.lost
}

// GameOver reports whether the game has ended. Derived, never stored.
func (b *Board) GameOver() bool {
	return b.won || b.lost
}

// Cell returns the tile value at (row, col), 0 for empty.
func (b *Board) Cell(row, col int) int {
	return b.cells[row][col]
}

// Cells returns a copy of the grid.
func (b *Board) Cells() Grid {
	return b.cells
}

// Moves returns the number of moves that changed the board since Reset.
func (b *Board) Moves() int {
	return b.moves
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] > maxVal {
				maxVal = b.cells[r][c]
			}
		}
	}
	return maxVal
}

// emptyCells returns the coordinates of all empty cells in row-major order.
func (g *Grid) emptyCells() []Pos {
	var cells []Pos
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// String renders the grid as rows of 5-char cells, empties as dots.
// Mainly for test failure output.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
			} else {
				sb.WriteString(fmt.Sprintf("%5d", g[r][c]))
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
