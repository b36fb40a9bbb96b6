package connection

// Signal codes of the event boundary. The bridge that polls mentions
// translates each relevant post into one of these.
const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	// A top-level mention challenging another user: starts a game.
	CodeChallenge

	// A reply containing a fire command: resolves one shot.
	CodeFire

	// Boards, fleet status and shot tallies of a game.
	CodeGameStatus

	CodeInvalidSignal

	// The incoming frame had no "code" field.
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
