package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"

	"github.com/battledinghy/dinghy-backend/db"
	"github.com/battledinghy/dinghy-backend/db/sqlc"
	mb "github.com/battledinghy/dinghy-backend/models/battleship"
	mc "github.com/battledinghy/dinghy-backend/models/connection"
)

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation
	HandshakeTimeout: time.Second * 5,

	// more than enough for challenge/fire frames
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server wires the event boundary together: the websocket endpoint the
// polling bridge connects to, plus plain HTTP diagnostics.
type Server struct {
	port  int
	stage string

	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	store          db.GameStore
	q              sqlc.Querier
	ipnet          net.IPNet
}

type Option func(*Server) error

func NewServer(sessionManager mc.SessionManager, gameManager mb.GameManager, store db.GameStore, q sqlc.Querier, optFuncs ...Option) *Server {
	server := Server{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		store:          store,
		q:              q,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	if server.port == 0 {
		server.port = 9191
	}

	server.ipnet = mustGetServerIpNet()
	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		s.port = port
		return nil
	}
}

// WithStage records the deployment stage. The value is validated once,
// by config.Load.
func WithStage(stage string) Option {
	return func(s *Server) error {
		s.stage = stage
		return nil
	}
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

// Router builds the HTTP surface: diagnostics plus the websocket mount.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	r.Get("/stats", s.handleStats)
	r.Get("/battledinghy", s.HandleWs)

	return r
}

func (s *Server) HandleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client on failure.
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	session := s.sessionManager.GenerateNewSession(conn)
	log.Info().
		Str("session_id", session.Id()).
		Str("remote_addr", conn.RemoteAddr().String()).
		Msg("new boundary connection")

	resp := mc.NewMessage(mc.CodeSessionID, mc.RespSessionId{SessionID: session.Id()})
	if err := session.WriteJSON(resp); err != nil {
		s.sessionManager.TerminateSession(session.Id())
		session.Close()
		return
	}

	go s.processSessionRequests(session)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithQuerierTimeout(r.Context())
	defer cancel()

	serverInet := pqtype.Inet{IPNet: s.ipnet, Valid: true}

	gamesCreated, err := s.q.AnalyticsGetGamesCreatedCount(ctx, serverInet)
	if err != nil {
		gamesCreated = 0
	}
	shotsFired, err := s.q.AnalyticsGetShotsFiredCount(ctx, serverInet)
	if err != nil {
		shotsFired = 0
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{
		"games_created": gamesCreated,
		"shots_fired":   shotsFired,
	})
}

// mustGetServerIpNet finds the first non-loopback IPv4 of an up
// interface; analytics rows are keyed by it.
func mustGetServerIpNet() net.IPNet {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ipnet.IP.To4() != nil && !ipnet.IP.IsLoopback() {
				return *ipnet
			}
		}
	}

	panic("ipnet could not be found!")
}
