package api

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"

	mc "github.com/battledinghy/dinghy-backend/models/connection"
)

// processSessionRequests is the per-session loop. It blocks on the next
// frame, dispatches on the signal code and writes exactly one response
// per frame. Returning tears the session down.
func (s *Server) processSessionRequests(session *mc.Session) {
	defer func() {
		s.sessionManager.TerminateSession(session.Id())
		session.Close()
		log.Info().Str("session_id", session.Id()).Msg("session closed")
	}()

	for {
		payload, err := session.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error().Err(err).Str("session_id", session.Id()).Msg("unexpected close")
			}
			return
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			resp := mc.NewErrMessage[mc.NoPayload](mc.CodeSignalAbsent, err.Error(), "every frame needs a numeric code field")
			if err := session.WriteJSON(resp); err != nil {
				return
			}
			continue
		}

		var writeErr error
		switch signal.Code {
		case mc.CodeChallenge:
			resp := NewRequest(payload).HandleChallenge(s.gameManager, s.store)
			if resp.Error == nil {
				s.countGameCreated()
			}
			writeErr = session.WriteJSON(resp)

		case mc.CodeFire:
			resp := NewRequest(payload).HandleFire(s.gameManager, s.store)
			if resp.Error == nil {
				s.countShotFired()
			}
			writeErr = session.WriteJSON(resp)

		case mc.CodeGameStatus:
			resp := NewRequest(payload).HandleGameStatus(s.gameManager, s.store)
			writeErr = session.WriteJSON(resp)

		default:
			resp := mc.NewErrMessage[mc.NoPayload](mc.CodeInvalidSignal, "", "unknown signal code")
			writeErr = session.WriteJSON(resp)
		}

		if writeErr != nil {
			log.Error().Err(writeErr).Str("session_id", session.Id()).Msg("response write failed")
			return
		}
	}
}

// Analytics counters are best effort; a failed increment never fails
// the request that triggered it.
func (s *Server) countGameCreated() {
	ctx, cancel := contextWithQuerierTimeout(context.Background())
	defer cancel()

	serverInet := pqtype.Inet{IPNet: s.ipnet, Valid: true}
	if err := s.q.AnalyticsIncrementGamesCreatedCount(ctx, serverInet); err != nil {
		log.Warn().Err(err).Msg("games created counter not incremented")
	}
}

func (s *Server) countShotFired() {
	ctx, cancel := contextWithQuerierTimeout(context.Background())
	defer cancel()

	serverInet := pqtype.Inet{IPNet: s.ipnet, Valid: true}
	if err := s.q.AnalyticsIncrementShotsFiredCount(ctx, serverInet); err != nil {
		log.Warn().Err(err).Msg("shots fired counter not incremented")
	}
}
