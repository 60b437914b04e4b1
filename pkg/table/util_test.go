package table

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"holdem-server/pkg/db"
)

var cbg = context.Background()

func init() {
	logrus.SetLevel(logrus.WarnLevel)
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(cbg, db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})

	require.NoError(t, db.Migrate(cbg, database, db.SQLite, ""))
	return database
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(setupDB(t), db.SQLite)
}

func setupUsers(chips ...int) []User {
	users := make([]User, len(chips))
	for i, c := range chips {
		users[i] = User{
			ID:    fmt.Sprintf("u%d", i+1),
			Name:  fmt.Sprintf("User %d", i+1),
			Chips: c,
		}
	}

	return users
}
