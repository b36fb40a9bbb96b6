package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/battledinghy/dinghy-backend/db"
	"github.com/battledinghy/dinghy-backend/db/sqlc"
	cerr "github.com/battledinghy/dinghy-backend/internal/error"
	"github.com/battledinghy/dinghy-backend/internal/render"
	mb "github.com/battledinghy/dinghy-backend/models/battleship"
	mc "github.com/battledinghy/dinghy-backend/models/connection"
)

// Request wraps one incoming frame. Each handler unmarshals the payload
// it expects and always returns a response message; failures travel in
// the message's Error field so the bridge can post them as replies.
type Request struct {
	payload []byte
}

func NewRequest(payload []byte) Request {
	return Request{payload: payload}
}

func contextWithQuerierTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, sqlc.QuerierCtxTimeout)
}

// HandleChallenge starts a new game on a fresh thread: allocates the
// next game number, places both fleets and persists the initial row.
func (r Request) HandleChallenge(gameManager mb.GameManager, store db.GameStore) mc.Message[mc.RespChallenge] {
	var req mc.Message[mc.ReqChallenge]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		return mc.NewErrMessage[mc.RespChallenge](mc.CodeChallenge, err.Error(), "invalid challenge payload")
	}
	challenge := req.Payload
	if challenge.ThreadId == "" || challenge.Player1Id == "" || challenge.Player2Id == "" {
		return mc.NewErrMessage[mc.RespChallenge](mc.CodeChallenge, "missing field", "thread_id, player1_id and player2_id are required")
	}

	ctx, cancel := contextWithQuerierTimeout(context.Background())
	defer cancel()

	gameNumber, err := store.NextGameNumber(ctx)
	if err != nil {
		return mc.NewErrMessage[mc.RespChallenge](mc.CodeChallenge, err.Error(), "could not allocate a game number")
	}

	game, err := gameManager.CreateGame(challenge.ThreadId, gameNumber, challenge.Player1Id, challenge.Player2Id)
	if err != nil {
		return mc.NewErrMessage[mc.RespChallenge](mc.CodeChallenge, err.Error(), "a game is already running on this thread")
	}

	if err := store.CreateGame(ctx, game); err != nil {
		// keep memory and storage in agreement
		gameManager.TerminateGame(challenge.ThreadId)
		return mc.NewErrMessage[mc.RespChallenge](mc.CodeChallenge, err.Error(), "could not persist the new game")
	}

	log.Info().
		Str("thread_id", game.ThreadId).
		Int("game_number", game.GameNumber).
		Str("player1_id", game.Player1Id).
		Str("player2_id", game.Player2Id).
		Msg("game created")

	return mc.NewMessage(mc.CodeChallenge, mc.RespChallenge{
		ThreadId:   game.ThreadId,
		GameNumber: game.GameNumber,
		FirstTurn:  game.Player1Id,
		Board:      render.Board(mb.NewGrid(), fmt.Sprintf("@%s's waters", game.Player2Id), false),
		ReplyText:  render.ChallengeReply(game.GameNumber, game.Player1Id, game.Player2Id),
	})
}

// HandleFire resolves one shot attempt. The game is served from memory
// when this process already manages it and rehydrated from storage
// otherwise, so fire commands survive restarts.
func (r Request) HandleFire(gameManager mb.GameManager, store db.GameStore) mc.Message[mc.RespFire] {
	var req mc.Message[mc.ReqFire]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		return mc.NewErrMessage[mc.RespFire](mc.CodeFire, err.Error(), "invalid fire payload")
	}
	fire := req.Payload
	if fire.ThreadId == "" || fire.PlayerId == "" {
		return mc.NewErrMessage[mc.RespFire](mc.CodeFire, "missing field", "thread_id and player_id are required")
	}

	coord, found := mb.ParseFireCommand(fire.Text)
	if !found {
		return mc.NewErrMessage[mc.RespFire](mc.CodeFire, "no fire command in text", render.FirePrompt())
	}

	ctx, cancel := contextWithQuerierTimeout(context.Background())
	defer cancel()

	game, err := gameManager.GetGame(fire.ThreadId)
	if err != nil {
		loaded, loadErr := store.LoadGame(ctx, fire.ThreadId)
		if loadErr != nil {
			return mc.NewErrMessage[mc.RespFire](mc.CodeFire, loadErr.Error(), "no game is running on this thread")
		}
		game = gameManager.AddGame(loaded)
	}

	played, result, err := gameManager.ApplyShot(fire.ThreadId, fire.PlayerId, coord.Label())
	if err != nil {
		switch {
		case errors.Is(err, cerr.ErrNotYourTurn):
			return mc.NewErrMessage[mc.RespFire](mc.CodeFire, err.Error(), render.NotYourTurnReply(fire.PlayerId, game.NextPlayerId()))
		case errors.Is(err, cerr.ErrGameOver):
			return mc.NewErrMessage[mc.RespFire](mc.CodeFire, err.Error(), "this game is already over")
		default:
			return mc.NewErrMessage[mc.RespFire](mc.CodeFire, err.Error(), "shot could not be resolved")
		}
	}

	if err := store.SaveShot(ctx, played, result.PreviousTurn); err != nil {
		// Drop the advanced copy so the next fire rehydrates the stored
		// state; otherwise memory stays a shot ahead of storage and the
		// retry is rejected as out of turn.
		gameManager.TerminateGame(fire.ThreadId)
		return mc.NewErrMessage[mc.RespFire](mc.CodeFire, err.Error(), "shot could not be saved, try again")
	}

	if played.IsFinished() {
		gameManager.TerminateGame(played.ThreadId)
	}

	log.Info().
		Str("thread_id", played.ThreadId).
		Str("player_id", fire.PlayerId).
		Str("coordinate", result.Shot.Coord.Label()).
		Str("outcome", mb.OutcomeLabel(result.Shot.Outcome)).
		Str("game_state", played.StateLabel()).
		Msg("shot resolved")

	defenderId := played.Player2Id
	if fire.PlayerId == played.Player2Id {
		defenderId = played.Player1Id
	}

	replyText := render.ShotReply(result, played.GameNumber, fire.PlayerId, played.NextPlayerId())
	if postNumber, err := store.NextPostNumber(ctx, played.ThreadId); err == nil {
		replyText = fmt.Sprintf("%d/ %s", postNumber, replyText)
	}

	payload := mc.RespFire{
		ThreadId:   played.ThreadId,
		GameNumber: played.GameNumber,
		Coordinate: result.Shot.Coord.Label(),
		Outcome:    mb.OutcomeLabel(result.Shot.Outcome),
		Hits:       result.Hits,
		Misses:     result.Misses,
		ShipsLeft:  result.ShipsAfloat,
		GameState:  played.StateLabel(),
		NextTurn:   played.NextPlayerId(),
		Winner:     played.WinnerId(),
		Board:      render.Board(result.TargetGrid, fmt.Sprintf("@%s's waters", defenderId), false),
		ReplyText:  replyText,
	}
	if result.Shot.ShipSize != 0 {
		payload.ShipSize = result.Shot.ShipSize
		payload.ShipName = mb.ShipName(result.Shot.ShipSize)
	}

	return mc.NewMessage(mc.CodeFire, payload)
}

// HandleGameStatus reports the stored view of a game: both raw boards,
// per-ship segment counts and whose turn it is.
func (r Request) HandleGameStatus(gameManager mb.GameManager, store db.GameStore) mc.Message[mc.RespGameStatus] {
	var req mc.Message[mc.ReqGameStatus]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		return mc.NewErrMessage[mc.RespGameStatus](mc.CodeGameStatus, err.Error(), "invalid game status payload")
	}
	if req.Payload.ThreadId == "" {
		return mc.NewErrMessage[mc.RespGameStatus](mc.CodeGameStatus, "missing field", "thread_id is required")
	}

	game, err := gameManager.GetGame(req.Payload.ThreadId)
	if err != nil {
		ctx, cancel := contextWithQuerierTimeout(context.Background())
		defer cancel()

		game, err = store.LoadGame(ctx, req.Payload.ThreadId)
		if err != nil {
			return mc.NewErrMessage[mc.RespGameStatus](mc.CodeGameStatus, err.Error(), "no game is running on this thread")
		}
	}

	return mc.NewMessage(mc.CodeGameStatus, mc.RespGameStatus{
		ThreadId:     game.ThreadId,
		GameNumber:   game.GameNumber,
		Player1Id:    game.Player1Id,
		Player2Id:    game.Player2Id,
		Player1Board: game.Player1Board,
		Player2Board: game.Player2Board,
		Player1Ships: game.Player1Board.FleetStatus(),
		Player2Ships: game.Player2Board.FleetStatus(),
		Turn:         game.TurnLabel(),
		GameState:    game.StateLabel(),
	})
}
