package battleship

import (
	cerr "github.com/battledinghy/dinghy-backend/internal/error"
)

const (
	ShotOutcomeMiss uint8 = iota
	ShotOutcomeHit
	ShotOutcomeSunk
	ShotOutcomeAlreadyFired
)

// OutcomeLabel is the wire form of a shot classification.
func OutcomeLabel(outcome uint8) string {
	switch outcome {
	case ShotOutcomeMiss:
		return "miss"
	case ShotOutcomeHit:
		return "hit"
	case ShotOutcomeSunk:
		return "sunk"
	case ShotOutcomeAlreadyFired:
		return "already_fired"
	default:
		return "unknown"
	}
}

type ShotResult struct {
	Outcome uint8
	Coord   Coordinates

	// ShipSize identifies the ship for Hit and Sunk outcomes, zero otherwise.
	ShipSize int
}

// ApplyShot resolves one shot against the grid, mutating it in place.
//
//	water          -> miss marker
//	miss or hit    -> AlreadyFired, no mutation
//	ship segment   -> hit marker (hitOffset + size); Sunk when it was the
//	                  ship's last untouched segment
//
// Coordinates are validated by the callers; the bounds check here only
// guards against caller bugs.
func (g Grid) ApplyShot(coord Coordinates) (ShotResult, error) {
	if !g.inBounds(coord.Row, coord.Col) {
		return ShotResult{}, cerr.ErrXorYOutOfGridBound(coord.Row, coord.Col)
	}

	switch value := g[coord.Row][coord.Col]; {
	case value == CellWater:
		g[coord.Row][coord.Col] = CellMiss
		return ShotResult{Outcome: ShotOutcomeMiss, Coord: coord}, nil

	case value == CellMiss || value >= hitOffset:
		return ShotResult{Outcome: ShotOutcomeAlreadyFired, Coord: coord}, nil

	default:
		g[coord.Row][coord.Col] = hitOffset + value

		outcome := ShotOutcomeHit
		if g.remainingSegments(value) == 0 {
			outcome = ShotOutcomeSunk
		}
		return ShotResult{Outcome: outcome, Coord: coord, ShipSize: value}, nil
	}
}

func (g Grid) remainingSegments(size int) int {
	remaining := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == size {
				remaining++
			}
		}
	}
	return remaining
}

// FleetStatus reports the untouched segment count per ship size.
// A ship is afloat iff its count is above zero.
func (g Grid) FleetStatus() map[int]int {
	status := make(map[int]int, len(ShipSizes))
	for _, size := range ShipSizes {
		status[size] = g.remainingSegments(size)
	}
	return status
}

// ShipsAfloat counts ships with at least one untouched segment.
func (g Grid) ShipsAfloat() int {
	afloat := 0
	for _, size := range ShipSizes {
		if g.remainingSegments(size) > 0 {
			afloat++
		}
	}
	return afloat
}

// CountShots tallies fired cells for display: hits are cells holding a
// hit marker, misses are miss markers. Not part of game-legality logic.
func (g Grid) CountShots() (hits, misses int) {
	for _, row := range g {
		for _, cell := range row {
			switch {
			case cell >= hitOffset:
				hits++
			case cell == CellMiss:
				misses++
			}
		}
	}
	return hits, misses
}
