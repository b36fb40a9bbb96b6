package error

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine taxonomy. Callers classify with
// errors.Is; the constructor funcs below attach the offending detail.
var (
	ErrPlacement         = errors.New("invalid fleet placement")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrGameOver          = errors.New("game is over")
	ErrOutOfBounds       = errors.New("position out of grid bounds")

	ErrGameNotFound   = errors.New("game does not exist")
	ErrGameDuplicate  = errors.New("game already exists")
	ErrPlayerNotFound = errors.New("player does not exist")

	// Returned by the store when the optimistic turn guard rejects a save,
	// meaning another shot landed between load and save.
	ErrStaleTurn = errors.New("game turn changed since load")

	ErrSessionNotFound = errors.New("session does not exist")
)

func ErrPlacementOutOfBounds(size, row, col int) error {
	return fmt.Errorf("%w: ship of size %d does not fit at row %d col %d", ErrPlacement, size, row, col)
}

func ErrPlacementOverlap(size, row, col int) error {
	return fmt.Errorf("%w: ship of size %d overlaps another ship at row %d col %d", ErrPlacement, size, row, col)
}

func ErrPlacementWrongFleet(size, count int) error {
	return fmt.Errorf("%w: fleet must have exactly one ship of size %d, got %d", ErrPlacement, size, count)
}

func ErrPlacementUnknownShipSize(size int) error {
	return fmt.Errorf("%w: unknown ship size %d", ErrPlacement, size)
}

func ErrCoordinateMalformed(raw string) error {
	return fmt.Errorf("%w: expected letter A-F followed by digit 1-6, got %q", ErrInvalidCoordinate, raw)
}

func ErrCoordinateRowOutOfRange(raw string) error {
	return fmt.Errorf("%w: row must be A-F, got %q", ErrInvalidCoordinate, raw)
}

func ErrCoordinateColOutOfRange(raw string) error {
	return fmt.Errorf("%w: column must be 1-6, got %q", ErrInvalidCoordinate, raw)
}

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w: row %d col %d", ErrOutOfBounds, row, col)
}

func ErrNotPlayersTurn(playerId string) error {
	return fmt.Errorf("%w: player %s", ErrNotYourTurn, playerId)
}

func ErrGameAlreadyOver(threadId string) error {
	return fmt.Errorf("%w: thread %s", ErrGameOver, threadId)
}

func ErrGameNotExists(threadId string) error {
	return fmt.Errorf("%w: thread %s", ErrGameNotFound, threadId)
}

func ErrGameAlreadyExists(threadId string) error {
	return fmt.Errorf("%w: thread %s", ErrGameDuplicate, threadId)
}

func ErrPlayerNotInGame(playerId, threadId string) error {
	return fmt.Errorf("%w: player %s in thread %s", ErrPlayerNotFound, playerId, threadId)
}

func ErrTurnConflict(threadId string) error {
	return fmt.Errorf("%w: thread %s", ErrStaleTurn, threadId)
}

func ErrSessionNotExists(sessionId string) error {
	return fmt.Errorf("%w: session %s", ErrSessionNotFound, sessionId)
}
