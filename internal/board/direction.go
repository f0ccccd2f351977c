package board

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Directions lists all four directions, in the order loss detection probes them.
var Directions = [...]Direction{DirUp, DirLeft, DirDown, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Pos is a grid coordinate.
type Pos struct {
	Row, Col int
}

// Line is one row or column of the grid, as an ordered sequence of
// coordinates. The first position is on the edge tiles pile up against.
type Line [Size]Pos

// traversals maps each direction to its four lines. The move algorithm is
// generic over this table; only the coordinate ordering differs between
// directions.
var traversals [4][Size]Line

func init() {
	for i := range Size {
		for j := range Size {
			traversals[DirUp][i][j] = Pos{Row: j, Col: i}
			traversals[DirLeft][i][j] = Pos{Row: i, Col: j}
			traversals[DirDown][i][j] = Pos{Row: Size - 1 - j, Col: i}
			traversals[DirRight][i][j] = Pos{Row: i, Col: Size - 1 - j}
		}
	}
}

// Lines returns the traversal order for a direction.
func Lines(d Direction) [Size]Line {
	return traversals[d]
}
