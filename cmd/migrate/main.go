package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-server/internal/config"
	"holdem-server/pkg/db"
)

var down = flag.Bool("down", false, "revert every migration")

func main() {
	flag.Parse()
	cfg := config.Instance().Database

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbh := waitForDB(ctx, cfg.Driver, cfg.DSN)
	defer dbh.Close()

	run := db.Migrate
	if *down {
		run = db.Rollback
	}

	if err := run(ctx, dbh, cfg.Driver, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	logrus.Info("migrations complete")
}

func waitForDB(ctx context.Context, driver, dsn string) *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	defer timeout.Stop()

	for {
		dbh, err := db.Open(ctx, driver, dsn)
		if err == nil {
			return dbh
		}

		logrus.WithError(err).Debug("database is not ready")

		select {
		case <-timeout.C:
			logrus.WithError(err).Fatal("could not connect to database")
		case <-time.After(time.Millisecond * 500):
		}
	}
}
