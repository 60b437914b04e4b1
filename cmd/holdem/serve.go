package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/config"
	"holdem-server/internal/jwt"
	"holdem-server/internal/mux"
	"holdem-server/pkg/db"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/room"
	"holdem-server/pkg/table"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 10

// ServeCmd runs the game server
type ServeCmd struct {
	Addr string `kong:"default='${addr}',help='The listen address'"`
}

// Run listens until the context is canceled
func (c *ServeCmd) Run(ctx context.Context, cfg config.Config) error {
	// fail fast
	if cfg.JWT.PublicKey != "" && cfg.JWT.PrivateKey != "" {
		jwt.LoadKeys(cfg.JWT.PublicKey, cfg.JWT.PrivateKey)
	} else {
		logrus.Warn("no jwt keys configured, tokens will not survive a restart")
		if err := jwt.GenerateKeys(); err != nil {
			return err
		}
	}

	database, err := db.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, cfg.Database.Driver, cfg.Database.MigrationsPath); err != nil {
		return err
	}

	store := table.NewStore(database, cfg.Database.Driver)
	pitBoss := room.NewPitBoss(store, quartz.NewReal(), holdem.WithLogger(logrus.StandardLogger()))
	defer pitBoss.EndShift()

	crs := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	srv := &http.Server{
		Addr:         c.Addr,
		Handler:      loggingHandler(cfg, crs.Handler(mux.NewMux(Version, pitBoss))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", srv.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}
