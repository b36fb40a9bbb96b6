package battleship

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	cerr "github.com/battledinghy/dinghy-backend/internal/error"
)

func newTestManager() *DinghyGameManager {
	return NewDinghyGameManager(rand.New(rand.NewSource(1)))
}

func TestGameManagerCreateAndGet(t *testing.T) {
	manager := newTestManager()

	created, err := manager.CreateGame("thread-1", 1, "p1", "p2")
	if err != nil {
		t.Fatal(err)
	}

	fetched, err := manager.GetGame("thread-1")
	if err != nil {
		t.Fatal(err)
	}
	if fetched != created {
		t.Fatal("expected the same game instance")
	}

	if _, err := manager.CreateGame("thread-1", 2, "p1", "p2"); !errors.Is(err, cerr.ErrGameDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := manager.GetGame("thread-404"); !errors.Is(err, cerr.ErrGameNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGameManagerAddGameConverges(t *testing.T) {
	manager := newTestManager()

	created, err := manager.CreateGame("thread-1", 1, "p1", "p2")
	if err != nil {
		t.Fatal(err)
	}

	loaded := &Game{ThreadId: "thread-1", Player1Id: "p1", Player2Id: "p2"}
	if got := manager.AddGame(loaded); got != created {
		t.Fatal("AddGame must keep the already-managed instance")
	}
}

func TestGameManagerTerminate(t *testing.T) {
	manager := newTestManager()

	if _, err := manager.CreateGame("thread-1", 1, "p1", "p2"); err != nil {
		t.Fatal(err)
	}
	manager.TerminateGame("thread-1")

	if _, err := manager.GetGame("thread-1"); !errors.Is(err, cerr.ErrGameNotFound) {
		t.Fatalf("expected not-found after terminate, got %v", err)
	}
}

func TestGameManagerApplyShot(t *testing.T) {
	manager := newTestManager()
	manager.AddGame(twoShipGame())

	game, result, err := manager.ApplyShot("thread-1", "player-one", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Shot.Outcome != ShotOutcomeHit {
		t.Fatalf("expected hit, got %s", OutcomeLabel(result.Shot.Outcome))
	}
	if game.State != GameStateAwaitingPlayer2Shot {
		t.Fatalf("expected turn flip, state %d", game.State)
	}

	if _, _, err := manager.ApplyShot("thread-404", "player-one", "A1"); !errors.Is(err, cerr.ErrGameNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGameManagerSerializesShotsPerGame(t *testing.T) {
	manager := newTestManager()
	manager.AddGame(twoShipGame())

	// Both players hammer the manager concurrently; with the per-game
	// lock every call sees a consistent state and the final tallies add
	// up to the accepted shots.
	var wg sync.WaitGroup
	fire := func(playerId string, coords []string) {
		defer wg.Done()
		for _, raw := range coords {
			_, _, err := manager.ApplyShot("thread-1", playerId, raw)
			if err != nil && !errors.Is(err, cerr.ErrNotYourTurn) && !errors.Is(err, cerr.ErrGameOver) {
				t.Error(err)
				return
			}
		}
	}

	wg.Add(2)
	go fire("player-one", []string{"B1", "B2", "B3", "B4", "B5", "B6"})
	go fire("player-two", []string{"C1", "C2", "C3", "C4", "C5", "C6"})
	wg.Wait()

	game, err := manager.GetGame("thread-1")
	if err != nil {
		t.Fatal(err)
	}

	hits1, misses1 := game.Player1Board.CountShots()
	hits2, misses2 := game.Player2Board.CountShots()
	total := hits1 + misses1 + hits2 + misses2
	if total > 12 {
		t.Fatalf("more shots landed than were fired: %d", total)
	}
}
