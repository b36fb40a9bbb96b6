package main

import (
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/battledinghy/dinghy-backend/api"
	"github.com/battledinghy/dinghy-backend/db"
	"github.com/battledinghy/dinghy-backend/db/sqlc"
	"github.com/battledinghy/dinghy-backend/internal/config"
	mb "github.com/battledinghy/dinghy-backend/models/battleship"
	mc "github.com/battledinghy/dinghy-backend/models/connection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("log level")
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Stage == config.StageDev {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	database := db.MustConnectToDb(cfg.DatabaseURL)
	defer database.Close()

	querier := sqlc.New(database)
	store := db.NewGameStore(querier)

	sessionManager := mc.NewDinghySessionManager()
	gameManager := mb.NewDinghyGameManager(rand.New(rand.NewSource(time.Now().UnixNano())))

	server := api.NewServer(
		sessionManager,
		gameManager,
		store,
		querier,
		api.WithPort(cfg.Port),
		api.WithStage(cfg.Stage),
	)

	go sessionManager.CleanupPeriodically()

	log.Info().Str("addr", server.Addr()).Str("stage", cfg.Stage).Msg("listening")
	log.Fatal().Err(http.ListenAndServe(server.Addr(), server.Router())).Msg("server stopped")
}
