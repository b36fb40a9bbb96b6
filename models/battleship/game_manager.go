package battleship

import (
	"math/rand"
	"sync"

	cerr "github.com/battledinghy/dinghy-backend/internal/error"
)

type GameManager interface {
	CreateGame(threadId string, gameNumber int, player1Id, player2Id string) (*Game, error)
	AddGame(game *Game) *Game
	GetGame(threadId string) (*Game, error)
	ApplyShot(threadId, actingPlayerId, rawCoordinate string) (*Game, TurnResult, error)
	TerminateGame(threadId string)
}

// DinghyGameManager keeps the active games of this process, keyed by
// their opaque thread id. Each game carries its own lock so shots of the
// same game resolve one at a time while different games run in parallel.
type DinghyGameManager struct {
	games map[string]*managedGame
	rng   *rand.Rand
	mu    sync.RWMutex
}

type managedGame struct {
	game *Game
	mu   sync.Mutex
}

var _ GameManager = (*DinghyGameManager)(nil)

func NewDinghyGameManager(rng *rand.Rand) *DinghyGameManager {
	return &DinghyGameManager{
		games: make(map[string]*managedGame, 10),
		rng:   rng,
	}
}

func (dgm *DinghyGameManager) CreateGame(threadId string, gameNumber int, player1Id, player2Id string) (*Game, error) {
	dgm.mu.Lock()
	defer dgm.mu.Unlock()

	if _, prs := dgm.games[threadId]; prs {
		return nil, cerr.ErrGameAlreadyExists(threadId)
	}

	game := NewGame(threadId, gameNumber, player1Id, player2Id, dgm.rng)
	dgm.games[threadId] = &managedGame{game: game}
	return game, nil
}

// AddGame registers a game loaded from durable storage. If the thread is
// already managed the existing game wins, so concurrent loaders converge
// on one instance.
func (dgm *DinghyGameManager) AddGame(game *Game) *Game {
	dgm.mu.Lock()
	defer dgm.mu.Unlock()

	if existing, prs := dgm.games[game.ThreadId]; prs {
		return existing.game
	}
	dgm.games[game.ThreadId] = &managedGame{game: game}
	return game
}

func (dgm *DinghyGameManager) GetGame(threadId string) (*Game, error) {
	dgm.mu.RLock()
	managed, prs := dgm.games[threadId]
	dgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(threadId)
	}

	return managed.game, nil
}

// ApplyShot is the per-game serialization point: it holds the game lock
// across the whole read-resolve-advance step.
func (dgm *DinghyGameManager) ApplyShot(threadId, actingPlayerId, rawCoordinate string) (*Game, TurnResult, error) {
	dgm.mu.RLock()
	managed, prs := dgm.games[threadId]
	dgm.mu.RUnlock()
	if !prs {
		return nil, TurnResult{}, cerr.ErrGameNotExists(threadId)
	}

	managed.mu.Lock()
	defer managed.mu.Unlock()

	result, err := managed.game.ApplyShot(actingPlayerId, rawCoordinate)
	if err != nil {
		return nil, TurnResult{}, err
	}
	return managed.game, result, nil
}

func (dgm *DinghyGameManager) TerminateGame(threadId string) {
	dgm.mu.Lock()
	delete(dgm.games, threadId)
	dgm.mu.Unlock()
}
