package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cashtracker/backend/internal/account"
	"github.com/cashtracker/backend/internal/auth"
	"github.com/cashtracker/backend/internal/config"
	"github.com/cashtracker/backend/internal/controllers/healthz"
	v1 "github.com/cashtracker/backend/internal/controllers/v1"
	"github.com/cashtracker/backend/internal/email"
	"github.com/cashtracker/backend/internal/models"
	"github.com/cashtracker/backend/internal/repository"
	"github.com/cashtracker/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	cfg, err := config.Load(gin.Mode())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	db, err := models.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer sqlDB.Close()

	var sender email.Sender = email.Log{}
	if cfg.SMTP.Enabled() {
		smtp, err := email.NewSMTP(cfg.SMTP)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		sender = smtp
	} else {
		log.Warn().Msg("SMTP_HOST is not set, mails are logged instead of sent")
	}

	mails := email.NewQueue(cfg.FrontendURL, sender, email.DefaultQueueSize)
	defer mails.Close()

	store := repository.NewGorm(db)
	sessions := auth.NewSessions(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionExpiry)
	co := v1.New(store, account.NewService(store.Users, sessions, mails))

	r, teardown, err := router.Config(router.Options{
		URL:              cfg.APIURL,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		EnablePprof:      cfg.EnablePprof,
	})
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(co, healthz.Controller{DB: sqlDB}, r.Group(cfg.APIURL.Path))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
