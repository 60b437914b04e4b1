package table

import (
	"context"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/holdem"
)

// AutoSave is an observer that saves the game whenever a hand starts or ends
type AutoSave struct {
	store *Store
	ctx   context.Context
}

var _ holdem.Observer[Player] = (*AutoSave)(nil)

// NewAutoSave returns an observer saving through the store
func NewAutoSave(ctx context.Context, store *Store) *AutoSave {
	return &AutoSave{
		store: store,
		ctx:   ctx,
	}
}

// HandStarted saves the freshly dealt hand
func (a *AutoSave) HandStarted(i *holdem.Instance[Player]) {
	a.save(i)
}

// HandEnded saves the settled hand
func (a *AutoSave) HandEnded(i *holdem.Instance[Player], _ holdem.Result[Player]) {
	a.save(i)
}

func (a *AutoSave) save(i *holdem.Instance[Player]) {
	if err := a.store.Save(a.ctx, i); err != nil {
		logrus.WithError(err).WithField("game", i.ID).Error("could not save game")
	}
}
