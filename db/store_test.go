package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/battledinghy/dinghy-backend/db/sqlc"
	cerr "github.com/battledinghy/dinghy-backend/internal/error"
	mb "github.com/battledinghy/dinghy-backend/models/battleship"
)

var gameColumns = []string{
	"id", "game_number", "thread_id", "player1_id", "player2_id",
	"player1_board", "player2_board", "turn", "game_state",
	"bot_post_count", "created_at",
}

func testStore(t *testing.T) (GameStore, sqlmock.Sqlmock) {
	t.Helper()

	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { database.Close() })

	return NewGameStore(sqlc.New(database)), mock
}

func testEngineGame(t *testing.T) *mb.Game {
	t.Helper()

	layout := mb.FleetLayout{
		{Size: mb.CellBigDinghy, Origin: mb.NewCoordinates(0, 0), Orientation: mb.OrientationHorizontal},
		{Size: mb.CellDinghy, Origin: mb.NewCoordinates(2, 0), Orientation: mb.OrientationHorizontal},
		{Size: mb.CellSmallDinghy, Origin: mb.NewCoordinates(4, 0), Orientation: mb.OrientationVertical},
	}
	board1, err := mb.PlaceFleet(layout)
	if err != nil {
		t.Fatal(err)
	}
	board2, err := mb.PlaceFleet(layout)
	if err != nil {
		t.Fatal(err)
	}

	return &mb.Game{
		ThreadId:     "thread-42",
		GameNumber:   42,
		Player1Id:    "alice",
		Player2Id:    "bob",
		Player1Board: board1,
		Player2Board: board2,
		State:        mb.GameStateAwaitingPlayer1Shot,
	}
}

func mustMarshal(t *testing.T, grid mb.Grid) []byte {
	t.Helper()
	raw, err := json.Marshal(grid)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestCreateGame(t *testing.T) {
	store, mock := testStore(t)
	game := testEngineGame(t)

	board1 := mustMarshal(t, game.Player1Board)
	board2 := mustMarshal(t, game.Player2Board)

	mock.ExpectQuery(`INSERT INTO games`).
		WithArgs(int32(42), "thread-42", "alice", "bob", board1, board2, "player1", "active").
		WillReturnRows(sqlmock.NewRows(gameColumns).AddRow(
			int64(1), int32(42), "thread-42", "alice", "bob",
			board1, board2, "player1", "active", int32(0), time.Now(),
		))

	if err := store.CreateGame(context.Background(), game); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadGame(t *testing.T) {
	store, mock := testStore(t)
	game := testEngineGame(t)

	board1 := mustMarshal(t, game.Player1Board)
	board2 := mustMarshal(t, game.Player2Board)

	mock.ExpectQuery(`SELECT (.+) FROM games WHERE thread_id`).
		WithArgs("thread-42").
		WillReturnRows(sqlmock.NewRows(gameColumns).AddRow(
			int64(1), int32(42), "thread-42", "alice", "bob",
			board1, board2, "player2", "active", int32(3), time.Now(),
		))

	loaded, err := store.LoadGame(context.Background(), "thread-42")
	if err != nil {
		t.Fatal(err)
	}

	if loaded.GameNumber != 42 || loaded.Player1Id != "alice" || loaded.Player2Id != "bob" {
		t.Fatalf("unexpected game: %+v", loaded)
	}
	if loaded.State != mb.GameStateAwaitingPlayer2Shot {
		t.Fatalf("expected player2 turn, state %d", loaded.State)
	}
	if loaded.Player1Board.ShipsAfloat() != 3 {
		t.Fatal("board lost its fleet through the round trip")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadGameNotFound(t *testing.T) {
	store, mock := testStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM games WHERE thread_id`).
		WithArgs("thread-404").
		WillReturnError(sql.ErrNoRows)

	_, err := store.LoadGame(context.Background(), "thread-404")
	if !errors.Is(err, cerr.ErrGameNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSaveShot(t *testing.T) {
	store, mock := testStore(t)
	game := testEngineGame(t)

	if _, err := game.ApplyShot("alice", "F6"); err != nil {
		t.Fatal(err)
	}

	board1 := mustMarshal(t, game.Player1Board)
	board2 := mustMarshal(t, game.Player2Board)

	mock.ExpectExec(`UPDATE games`).
		WithArgs("thread-42", board1, board2, "player2", "active", "player1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.SaveShot(context.Background(), game, "player1"); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSaveShotStaleTurn(t *testing.T) {
	store, mock := testStore(t)
	game := testEngineGame(t)

	if _, err := game.ApplyShot("alice", "F6"); err != nil {
		t.Fatal(err)
	}

	// The guarded update matches no row: another shot got there first.
	mock.ExpectExec(`UPDATE games`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.SaveShot(context.Background(), game, "player1")
	if !errors.Is(err, cerr.ErrStaleTurn) {
		t.Fatalf("expected stale-turn error, got %v", err)
	}
}

func TestNextGameNumber(t *testing.T) {
	store, mock := testStore(t)

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(game_number\), 0\) \+ 1`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int32(7)))

	number, err := store.NextGameNumber(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if number != 7 {
		t.Fatalf("expected 7, got %d", number)
	}
}

func TestNextPostNumber(t *testing.T) {
	store, mock := testStore(t)

	mock.ExpectQuery(`UPDATE games SET bot_post_count`).
		WithArgs("thread-42").
		WillReturnRows(sqlmock.NewRows([]string{"bot_post_count"}).AddRow(int32(5)))

	number, err := store.NextPostNumber(context.Background(), "thread-42")
	if err != nil {
		t.Fatal(err)
	}
	if number != 5 {
		t.Fatalf("expected 5, got %d", number)
	}
}
