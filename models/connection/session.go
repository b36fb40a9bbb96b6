package connection

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Session wraps one boundary connection. Writes are serialized with a
// mutex because a fire response and a cleanup notice may race on the
// same conn.
type Session struct {
	id   string
	conn *websocket.Conn

	mu         sync.Mutex
	lastActive time.Time
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:         id,
		conn:       conn,
		lastActive: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) WriteJSON(msg interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(msg)
}

// ReadMessage blocks on the next frame and refreshes the idle clock.
func (s *Session) ReadMessage() ([]byte, error) {
	_, payload, err := s.conn.ReadMessage()

	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()

	return payload, err
}

func (s *Session) IdleFor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastActive)
}

func (s *Session) Close() {
	_ = s.conn.Close()
}
