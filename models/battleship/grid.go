package battleship

import (
	"fmt"
	"regexp"
	"strings"

	cerr "github.com/battledinghy/dinghy-backend/internal/error"
)

const GridSize = 6

// Cell states of a board. Ship codes double as ship sizes so that
// a hit cell keeps its ship identity: hit value = hitOffset + size.
// This exact value domain is the storage/wire format of a board;
// changing it is a breaking schema change.
const (
	CellWater = 0
	CellMiss  = 9

	CellSmallDinghy = 2
	CellDinghy      = 3
	CellBigDinghy   = 4

	hitOffset = 10
)

// ShipSizes holds the fleet composition, largest first.
var ShipSizes = [3]int{CellBigDinghy, CellDinghy, CellSmallDinghy}

func ShipName(size int) string {
	switch size {
	case CellSmallDinghy:
		return "Small Dinghy"
	case CellDinghy:
		return "Dinghy"
	case CellBigDinghy:
		return "Big Dinghy"
	default:
		return "Unknown"
	}
}

// Grid is a 6x6 board. Serialized as-is (array of integer arrays)
// for the games table and the rendering collaborator.
type Grid [][]int

// NewGrid creates an all-water grid.
func NewGrid() Grid {
	grid := make(Grid, GridSize)
	for i := 0; i < GridSize; i++ {
		grid[i] = make([]int, GridSize)
	}
	return grid
}

func (g Grid) Copy() Grid {
	copied := make(Grid, len(g))
	for i, row := range g {
		copied[i] = make([]int, len(row))
		copy(copied[i], row)
	}
	return copied
}

func (g Grid) inBounds(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g[row])
}

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Label renders the coordinate back to its text form, e.g. {0,0} -> "A1".
func (c Coordinates) Label() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col+1)
}

// ParseCoordinate validates and converts a text coordinate ("A1".."F6",
// case-insensitive) into grid indexes. Row letters map to rows 0-5 and
// column digits to cols 0-5.
func ParseCoordinate(raw string) (Coordinates, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if len(trimmed) != 2 {
		return Coordinates{}, cerr.ErrCoordinateMalformed(raw)
	}

	rowChar, colChar := trimmed[0], trimmed[1]
	if rowChar < 'A' || rowChar > 'Z' || colChar < '0' || colChar > '9' {
		return Coordinates{}, cerr.ErrCoordinateMalformed(raw)
	}
	if rowChar > 'F' {
		return Coordinates{}, cerr.ErrCoordinateRowOutOfRange(raw)
	}
	if colChar < '1' || colChar > '6' {
		return Coordinates{}, cerr.ErrCoordinateColOutOfRange(raw)
	}

	return NewCoordinates(int(rowChar-'A'), int(colChar-'1')), nil
}

// Players fire by replying "fire <coordinate>" somewhere in their post.
var fireCommandRegex = regexp.MustCompile(`(?i)fire\s+([a-fA-F][1-6])`)

// ParseFireCommand extracts the coordinate of a fire command from raw
// post text. The second return is false when the text holds no fire
// command at all.
func ParseFireCommand(text string) (Coordinates, bool) {
	match := fireCommandRegex.FindStringSubmatch(text)
	if match == nil {
		return Coordinates{}, false
	}

	coord, err := ParseCoordinate(match[1])
	if err != nil {
		// The regex only matches A-F/1-6, so this cannot fail.
		return Coordinates{}, false
	}
	return coord, true
}
