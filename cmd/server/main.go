package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zechsoft/new-trust-sub003/internal/api"
	"github.com/zechsoft/new-trust-sub003/internal/assistant"
	"github.com/zechsoft/new-trust-sub003/internal/config"
	"github.com/zechsoft/new-trust-sub003/internal/database"
	"github.com/zechsoft/new-trust-sub003/internal/logging"
	"github.com/zechsoft/new-trust-sub003/internal/resources"
	"github.com/zechsoft/new-trust-sub003/internal/upload"
	"github.com/zechsoft/new-trust-sub003/internal/upstream"
	"github.com/zechsoft/new-trust-sub003/internal/ws"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.New(cfg.AppEnv)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var backends resources.Backends
	if cfg.UsesDatabase() {
		db, err := database.Open(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open database")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		backends.DB = db
	}
	if cfg.UsesUpstream() {
		backends.Client = upstream.NewClient(cfg, log)
	}

	set := resources.New(cfg, backends, log)
	defer set.Close()
	if err := set.LoadAll(ctx); err != nil {
		// Pages show the failure and can be reloaded; the server still starts.
		log.Warn().Err(err).Msg("initial load incomplete")
	}

	var (
		uploader upload.Uploader
		files    *upload.FileStore
	)
	if backends.Client != nil {
		uploader = upload.RemoteUploader{Client: backends.Client}
	} else {
		store, err := upload.NewFileStore(cfg.UploadDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to prepare upload directory")
		}
		files = store
		uploader = upload.LocalUploader{Store: store, BaseURL: cfg.PublicBaseURL}
	}

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	router := api.NewRouter(api.Deps{
		Config:    cfg,
		Resources: set,
		Uploads:   upload.NewService(uploader, cfg.UploadTimeout, log),
		Assistant: assistant.NewEngine(assistant.DefaultRules(), cfg.AssistantDelay, cfg.AssistantMaxMessages, log),
		Hub:       hub,
		Files:     files,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("data_mode", cfg.DataMode).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to run server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
