package battleship

import (
	"math/rand"

	cerr "github.com/battledinghy/dinghy-backend/internal/error"
)

// Game states. The two waiting states name the player expected to fire
// next; the won states are terminal and absorbing.
const (
	GameStateAwaitingPlayer1Shot uint8 = iota
	GameStateAwaitingPlayer2Shot
	GameStatePlayer1Won
	GameStatePlayer2Won
)

// Wire values of the turn marker and game state in the games table.
const (
	TurnLabelPlayer1 = "player1"
	TurnLabelPlayer2 = "player2"

	StateLabelActive    = "active"
	StateLabelCompleted = "completed"
)

// Game holds everything one match owns: both boards (each the owner's
// fleet plus the shots fired at it), the turn marker and the terminal
// flag, folded into State. The thread id is an opaque key supplied by
// the messaging collaborator; the engine never derives it.
type Game struct {
	ThreadId   string
	GameNumber int

	Player1Id string
	Player2Id string

	Player1Board Grid
	Player2Board Grid

	State uint8
}

// NewGame starts a match with randomly placed fleets. The challenger
// (player1) fires first; that is bot policy, not an engine invariant,
// and stored games may carry a different marker.
func NewGame(threadId string, gameNumber int, player1Id, player2Id string, rng *rand.Rand) *Game {
	return &Game{
		ThreadId:     threadId,
		GameNumber:   gameNumber,
		Player1Id:    player1Id,
		Player2Id:    player2Id,
		Player1Board: RandomFleet(rng),
		Player2Board: RandomFleet(rng),
		State:        GameStateAwaitingPlayer1Shot,
	}
}

// LoadGame rebuilds a Game from its stored tuple. For completed games
// the winner is recovered from the boards: the fleet with no ship
// afloat lost.
func LoadGame(threadId string, gameNumber int, player1Id, player2Id string, player1Board, player2Board Grid, turn, state string) (*Game, error) {
	game := &Game{
		ThreadId:     threadId,
		GameNumber:   gameNumber,
		Player1Id:    player1Id,
		Player2Id:    player2Id,
		Player1Board: player1Board,
		Player2Board: player2Board,
	}

	switch state {
	case StateLabelCompleted:
		if player2Board.ShipsAfloat() == 0 {
			game.State = GameStatePlayer1Won
		} else {
			game.State = GameStatePlayer2Won
		}

	case StateLabelActive:
		switch turn {
		case TurnLabelPlayer1:
			game.State = GameStateAwaitingPlayer1Shot
		case TurnLabelPlayer2:
			game.State = GameStateAwaitingPlayer2Shot
		default:
			return nil, cerr.ErrGameNotExists(threadId)
		}

	default:
		return nil, cerr.ErrGameNotExists(threadId)
	}

	return game, nil
}

func (g *Game) IsFinished() bool {
	return g.State == GameStatePlayer1Won || g.State == GameStatePlayer2Won
}

// WinnerId returns the winning player's id, or "" while the game is active.
func (g *Game) WinnerId() string {
	switch g.State {
	case GameStatePlayer1Won:
		return g.Player1Id
	case GameStatePlayer2Won:
		return g.Player2Id
	default:
		return ""
	}
}

// TurnLabel reports the stored turn marker. For terminal states it keeps
// the winner's label, matching what the last save wrote.
func (g *Game) TurnLabel() string {
	switch g.State {
	case GameStateAwaitingPlayer1Shot, GameStatePlayer1Won:
		return TurnLabelPlayer1
	default:
		return TurnLabelPlayer2
	}
}

func (g *Game) StateLabel() string {
	if g.IsFinished() {
		return StateLabelCompleted
	}
	return StateLabelActive
}

// NextPlayerId returns the id of the player expected to fire next,
// or "" for terminal states.
func (g *Game) NextPlayerId() string {
	switch g.State {
	case GameStateAwaitingPlayer1Shot:
		return g.Player1Id
	case GameStateAwaitingPlayer2Shot:
		return g.Player2Id
	default:
		return ""
	}
}

// TurnResult carries everything the posting and rendering collaborators
// need after one resolved shot.
type TurnResult struct {
	Shot       ShotResult
	TargetGrid Grid
	State      uint8

	// PreviousTurn is the turn marker the game carried when this shot
	// resolved, read under the same serialization as the shot itself.
	// The store's optimistic guard keys on it.
	PreviousTurn string

	FleetStatus map[int]int
	ShipsAfloat int
	Hits        int
	Misses      int
}

// ApplyShot validates turn legality, resolves the shot against the
// opponent's board and advances the state machine.
//
// An already-fired cell still consumes the turn: the shot is reported as
// AlreadyFired, mutates nothing, and the marker still flips: a wasted shot.
// That matches how the bot has always behaved on repeat coordinates.
func (g *Game) ApplyShot(actingPlayerId, rawCoordinate string) (TurnResult, error) {
	if g.IsFinished() {
		return TurnResult{}, cerr.ErrGameAlreadyOver(g.ThreadId)
	}

	previousTurn := g.TurnLabel()

	var (
		targetGrid Grid
		nextState  uint8
		wonState   uint8
	)
	switch g.State {
	case GameStateAwaitingPlayer1Shot:
		if actingPlayerId != g.Player1Id {
			return TurnResult{}, cerr.ErrNotPlayersTurn(actingPlayerId)
		}
		targetGrid = g.Player2Board
		nextState = GameStateAwaitingPlayer2Shot
		wonState = GameStatePlayer1Won

	case GameStateAwaitingPlayer2Shot:
		if actingPlayerId != g.Player2Id {
			return TurnResult{}, cerr.ErrNotPlayersTurn(actingPlayerId)
		}
		targetGrid = g.Player1Board
		nextState = GameStateAwaitingPlayer1Shot
		wonState = GameStatePlayer2Won
	}

	coord, err := ParseCoordinate(rawCoordinate)
	if err != nil {
		return TurnResult{}, err
	}

	shot, err := targetGrid.ApplyShot(coord)
	if err != nil {
		return TurnResult{}, err
	}

	status := targetGrid.FleetStatus()
	afloat := targetGrid.ShipsAfloat()
	if afloat == 0 {
		g.State = wonState
	} else {
		g.State = nextState
	}

	hits, misses := targetGrid.CountShots()
	return TurnResult{
		Shot:         shot,
		TargetGrid:   targetGrid,
		State:        g.State,
		PreviousTurn: previousTurn,
		FleetStatus:  status,
		ShipsAfloat:  afloat,
		Hits:         hits,
		Misses:       misses,
	}, nil
}
