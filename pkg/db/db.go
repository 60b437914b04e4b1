package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/config"

	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // needed
	_ "modernc.org/sqlite"                               // needed
)

// supported drivers
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

//go:embed sql/*.sql
var migrations embed.FS

var instance *sql.DB

// Instance returns a database instance
func Instance() *sql.DB {
	if instance == nil {
		LoadInstance()
	}

	return instance
}

// LoadInstance will load the database instance from the configuration
func LoadInstance() {
	cfg := config.Instance().Database

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		panic(err)
	}

	instance = db
}

// Open opens and pings a database
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case Postgres:
		return openPostgres(ctx, dsn)
	case SQLite:
		return openSQLite(ctx, dsn)
	}

	return nil, fmt.Errorf("unsupported database driver: %s", driver)
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(Postgres, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("empty sqlite database path")
	}

	if path != ":memory:" {
		if parent := filepath.Dir(path); parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open(SQLite, path)
	if err != nil {
		return nil, err
	}

	// one connection, otherwise every connection to :memory: is a different database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA foreign_keys = ON;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies every migration that has not run yet
// The migrations embedded in the binary are used unless migrationsPath names a directory.
func Migrate(ctx context.Context, db *sql.DB, driver, migrationsPath string) error {
	m, err := newMigrate(ctx, db, driver, migrationsPath)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Rollback reverts every applied migration
func Rollback(ctx context.Context, db *sql.DB, driver, migrationsPath string) error {
	m, err := newMigrate(ctx, db, driver, migrationsPath)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// NOTE: the returned instance must not be closed, that would close db
func newMigrate(ctx context.Context, db *sql.DB, driver, migrationsPath string) (*migrate.Migrate, error) {
	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"driver":         driver,
		"migrationsPath": migrationsPath,
	}).Info("running migrations")

	var drv database.Driver
	var err error
	switch driver {
	case Postgres:
		drv, err = postgres.WithInstance(db, &postgres.Config{})
	case SQLite:
		drv, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	if err != nil {
		return nil, err
	}

	if migrationsPath != "" {
		return migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), driver, drv)
	}

	src, err := iofs.New(migrations, "sql")
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", src, driver, drv)
}

var placeholderRx = regexp.MustCompile(`\$(\d+)`)

// Rebind converts $1 style placeholders to the style of the driver
func Rebind(driver, query string) string {
	if driver == SQLite {
		return placeholderRx.ReplaceAllString(query, "?$1")
	}

	return query
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
