package room

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"holdem-server/internal/rng"
	"holdem-server/pkg/db"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/table"
)

var cbg = context.Background()

func init() {
	logrus.SetLevel(logrus.WarnLevel)
}

func setupStore(t *testing.T) *table.Store {
	t.Helper()

	database, err := db.Open(cbg, db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})

	require.NoError(t, db.Migrate(cbg, database, db.SQLite, ""))
	return table.NewStore(database, db.SQLite)
}

func setupPitBoss(t *testing.T, store *table.Store, opts ...holdem.Option) (*PitBoss, *quartz.Mock) {
	t.Helper()

	clock := quartz.NewMock(t)
	pb := NewPitBoss(store, clock, append([]holdem.Option{holdem.WithGenerator(rng.Seeded(5))}, opts...)...)
	t.Cleanup(pb.EndShift)

	return pb, clock
}

func users(chips ...int) []table.User {
	u := make([]table.User, len(chips))
	for i, c := range chips {
		id := string(rune('1' + i))
		u[i] = table.User{ID: "u" + id, Name: "User " + id, Chips: c}
	}

	return u
}

func receive(t *testing.T, c *Client) *Response {
	t.Helper()

	select {
	case msg := <-c.SendChan():
		res, ok := msg.(*Response)
		require.True(t, ok, "expected a *Response, got %T", msg)
		return res
	case <-time.After(time.Second):
		require.FailNow(t, "timed out waiting for a message")
		return nil
	}
}

func receiveView(t *testing.T, c *Client) holdem.View {
	t.Helper()

	res := receive(t, c)
	require.Equal(t, "game", res.Key)

	v, ok := res.Data.(holdem.View)
	require.True(t, ok, "expected a holdem.View, got %T", res.Data)
	return v
}
