package battleship

import (
	"math/rand"

	cerr "github.com/battledinghy/dinghy-backend/internal/error"
)

const (
	OrientationHorizontal uint8 = iota
	OrientationVertical
)

// ShipPlacement describes one ship of a candidate fleet: its size,
// the cell of its top-left segment and the direction it extends in.
type ShipPlacement struct {
	Size        int
	Origin      Coordinates
	Orientation uint8
}

type FleetLayout []ShipPlacement

// cells expands the placement into the coordinates its segments occupy,
// failing if any segment falls outside the grid.
func (p ShipPlacement) cells() ([]Coordinates, error) {
	cells := make([]Coordinates, 0, p.Size)
	for i := 0; i < p.Size; i++ {
		row, col := p.Origin.Row, p.Origin.Col
		if p.Orientation == OrientationHorizontal {
			col += i
		} else {
			row += i
		}

		if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
			return nil, cerr.ErrPlacementOutOfBounds(p.Size, p.Origin.Row, p.Origin.Col)
		}
		cells = append(cells, NewCoordinates(row, col))
	}
	return cells, nil
}

// PlaceFleet validates a candidate layout and builds the resulting grid:
// exactly one ship per size in ShipSizes, every segment in bounds, no two
// ships sharing a cell. Validation happens before any grid is built, so a
// failed call leaves nothing half-placed.
func PlaceFleet(layout FleetLayout) (Grid, error) {
	counts := make(map[int]int, len(ShipSizes))
	for _, placement := range layout {
		switch placement.Size {
		case CellSmallDinghy, CellDinghy, CellBigDinghy:
			counts[placement.Size]++
		default:
			return nil, cerr.ErrPlacementUnknownShipSize(placement.Size)
		}
	}
	for _, size := range ShipSizes {
		if counts[size] != 1 {
			return nil, cerr.ErrPlacementWrongFleet(size, counts[size])
		}
	}

	grid := NewGrid()
	for _, placement := range layout {
		cells, err := placement.cells()
		if err != nil {
			return nil, err
		}

		for _, cell := range cells {
			if grid[cell.Row][cell.Col] != CellWater {
				return nil, cerr.ErrPlacementOverlap(placement.Size, cell.Row, cell.Col)
			}
			grid[cell.Row][cell.Col] = placement.Size
		}
	}

	return grid, nil
}

// RandomFleet places the full fleet at random positions, retrying each
// ship until it fits. A 6x6 grid always has room for 4+3+2 segments, so
// this terminates.
func RandomFleet(rng *rand.Rand) Grid {
	grid := NewGrid()

	for _, size := range ShipSizes {
		for {
			placement := ShipPlacement{
				Size:        size,
				Origin:      NewCoordinates(rng.Intn(GridSize), rng.Intn(GridSize)),
				Orientation: uint8(rng.Intn(2)),
			}

			cells, err := placement.cells()
			if err != nil {
				continue
			}

			overlaps := false
			for _, cell := range cells {
				if grid[cell.Row][cell.Col] != CellWater {
					overlaps = true
					break
				}
			}
			if overlaps {
				continue
			}

			for _, cell := range cells {
				grid[cell.Row][cell.Col] = size
			}
			break
		}
	}

	return grid
}
