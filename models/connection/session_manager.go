package connection

import (
	"encoding/base64"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	cerr "github.com/battledinghy/dinghy-backend/internal/error"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	CleanupPeriodically()
}

// DinghySessionManager tracks the live boundary connections. The bridge
// process normally holds a single long-lived session; idle entries are
// swept so a crashed bridge does not leak conns.
type DinghySessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*DinghySessionManager)(nil)

func NewDinghySessionManager() *DinghySessionManager {
	return &DinghySessionManager{
		sessions:        make(map[string]*Session, 10),
		cleanupInterval: time.Minute * 20,
	}
}

func (dsm *DinghySessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.NewString()))
	session := NewSession(sessionId, conn)

	dsm.mu.Lock()
	dsm.sessions[sessionId] = session
	dsm.mu.Unlock()

	return session
}

func (dsm *DinghySessionManager) FindSession(sessionId string) (*Session, error) {
	dsm.mu.RLock()
	defer dsm.mu.RUnlock()

	session, prs := dsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotExists(sessionId)
	}
	return session, nil
}

func (dsm *DinghySessionManager) TerminateSession(sessionId string) {
	dsm.mu.Lock()
	delete(dsm.sessions, sessionId)
	dsm.mu.Unlock()
}

// CleanupPeriodically closes and drops sessions idle for longer than
// the cleanup interval. Runs on its own goroutine for the process
// lifetime.
func (dsm *DinghySessionManager) CleanupPeriodically() {
	for {
		time.Sleep(dsm.cleanupInterval)

		dsm.mu.Lock()
		for id, session := range dsm.sessions {
			if session.IdleFor() > dsm.cleanupInterval {
				session.Close()
				delete(dsm.sessions, id)
				log.Info().Str("session_id", id).Msg("removed idle session")
			}
		}
		dsm.mu.Unlock()
	}
}
