package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/battledinghy/dinghy-backend/db/sqlc"
	cerr "github.com/battledinghy/dinghy-backend/internal/error"
	mb "github.com/battledinghy/dinghy-backend/models/battleship"
)

// GameStore converts between engine games and their stored tuple:
// (player ids, both boards as 6x6 integer arrays, turn, game_state),
// keyed by the opaque thread id.
type GameStore struct {
	q sqlc.Querier
}

func NewGameStore(q sqlc.Querier) GameStore {
	return GameStore{q: q}
}

func (s GameStore) NextGameNumber(ctx context.Context) (int, error) {
	number, err := s.q.NextGameNumber(ctx)
	if err != nil {
		return 0, err
	}
	return int(number), nil
}

func (s GameStore) CreateGame(ctx context.Context, game *mb.Game) error {
	board1, err := json.Marshal(game.Player1Board)
	if err != nil {
		return err
	}
	board2, err := json.Marshal(game.Player2Board)
	if err != nil {
		return err
	}

	_, err = s.q.CreateGame(ctx, sqlc.CreateGameParams{
		GameNumber:   int32(game.GameNumber),
		ThreadID:     game.ThreadId,
		Player1ID:    game.Player1Id,
		Player2ID:    game.Player2Id,
		Player1Board: board1,
		Player2Board: board2,
		Turn:         game.TurnLabel(),
		GameState:    game.StateLabel(),
	})
	return err
}

func (s GameStore) LoadGame(ctx context.Context, threadId string) (*mb.Game, error) {
	row, err := s.q.GetGameByThreadId(ctx, threadId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerr.ErrGameNotExists(threadId)
		}
		return nil, err
	}

	var board1, board2 mb.Grid
	if err := json.Unmarshal(row.Player1Board, &board1); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(row.Player2Board, &board2); err != nil {
		return nil, err
	}

	return mb.LoadGame(
		row.ThreadID,
		int(row.GameNumber),
		row.Player1ID,
		row.Player2ID,
		board1,
		board2,
		row.Turn,
		row.GameState,
	)
}

// SaveShot persists the post-shot game. expectedTurn is the marker the
// game carried when it was loaded; if another shot slipped in between,
// the guarded update matches no row and the save fails with a stale-turn
// error instead of overwriting it.
func (s GameStore) SaveShot(ctx context.Context, game *mb.Game, expectedTurn string) error {
	board1, err := json.Marshal(game.Player1Board)
	if err != nil {
		return err
	}
	board2, err := json.Marshal(game.Player2Board)
	if err != nil {
		return err
	}

	affected, err := s.q.UpdateGameAfterShot(ctx, sqlc.UpdateGameAfterShotParams{
		ThreadID:     game.ThreadId,
		Player1Board: board1,
		Player2Board: board2,
		Turn:         game.TurnLabel(),
		GameState:    game.StateLabel(),
		ExpectedTurn: expectedTurn,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return cerr.ErrTurnConflict(game.ThreadId)
	}
	return nil
}

// NextPostNumber increments and returns the per-thread reply counter,
// used to number the bot's posts in a game thread.
func (s GameStore) NextPostNumber(ctx context.Context, threadId string) (int, error) {
	count, err := s.q.IncrementBotPostCount(ctx, threadId)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
