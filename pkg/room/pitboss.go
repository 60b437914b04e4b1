package room

import (
	"context"
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/util"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/table"
)

// PitBoss is responsible for dispatching players to games
type PitBoss struct {
	dealers map[string]*Dealer
	lock    sync.Mutex
	store   *table.Store
	clock   quartz.Clock
	opts    []holdem.Option
}

// NewPitBoss returns a new dispatch object
// store may be nil, in which case games only live in memory.
func NewPitBoss(store *table.Store, clock quartz.Clock, opts ...holdem.Option) *PitBoss {
	return &PitBoss{
		dealers: make(map[string]*Dealer),
		store:   store,
		clock:   clock,
		opts:    append([]holdem.Option{holdem.WithClock(clock)}, opts...),
	}
}

// NewGame deals the first hand of a new game
func (p *PitBoss) NewGame(ctx context.Context, users []table.User, variant holdem.Variant) (*Dealer, error) {
	id := util.NewID()
	d := newDealer(id, p.store, p.clock)

	game, err := holdem.GenerateNew(id, users, variant, table.NewPlayer(id), d, p.opts...)
	if err != nil {
		return nil, err
	}

	d.game = game
	d.StartShift()

	if err := d.exec(ctx, func() error {
		d.changed(ctx)
		return nil
	}); err != nil {
		d.EndShift()
		return nil, err
	}

	p.lock.Lock()
	p.dealers[id] = d
	p.lock.Unlock()

	logrus.WithFields(logrus.Fields{
		"game":    id,
		"variant": variant,
		"players": len(users),
	}).Info("game created")

	return d, nil
}

// Dealer returns the dealer of a game, restoring the game from the store if needed
// The store is read without holding the registry lock. If two callers restore the same game, the
// first registered dealer wins and the other one ends its shift.
func (p *PitBoss) Dealer(ctx context.Context, id string) (*Dealer, error) {
	p.lock.Lock()
	d, found := p.dealers[id]
	p.lock.Unlock()

	if found {
		return d, nil
	}

	if p.store == nil {
		return nil, table.ErrGameNotFound
	}

	d, err := p.restore(ctx, id)
	if err != nil {
		return nil, err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	if existing, found := p.dealers[id]; found {
		d.EndShift()
		return existing, nil
	}

	p.dealers[id] = d
	logrus.WithField("game", id).Info("game restored")

	return d, nil
}

func (p *PitBoss) restore(ctx context.Context, id string) (*Dealer, error) {
	d := newDealer(id, p.store, p.clock)
	game, err := p.store.Load(ctx, id, d, p.opts...)
	if err != nil {
		return nil, err
	}

	d.game = game
	d.StartShift()

	// a restored hand may be waiting for its restart
	if err := d.exec(ctx, func() error {
		d.scheduleRestart(d.game)
		return nil
	}); err != nil {
		d.EndShift()
		return nil, err
	}

	return d, nil
}

// Games returns the number of games being dealt
func (p *PitBoss) Games() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.dealers)
}

// EndShift ends the shift of every dealer
func (p *PitBoss) EndShift() {
	p.lock.Lock()
	defer p.lock.Unlock()

	for id, d := range p.dealers {
		d.EndShift()
		delete(p.dealers, id)
	}
}
