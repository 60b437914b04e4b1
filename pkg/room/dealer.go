package room

import (
	"context"
	"errors"
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/autopilot"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/table"
)

// ErrDealerClosed is returned when the dealer's shift has ended
var ErrDealerClosed = errors.New("dealer is closed")

// Dealer is responsible for controlling one game
// Every access to the game happens on the dealer's run loop.
type Dealer struct {
	id      string
	game    *holdem.Instance[table.Player]
	store   *table.Store
	clock   quartz.Clock
	clients map[*Client]bool
	lock    sync.RWMutex
	logger  logrus.FieldLogger

	restartTimer *quartz.Timer

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

func newDealer(id string, store *table.Store, clock quartz.Clock) *Dealer {
	return &Dealer{
		id:            id,
		store:         store,
		clock:         clock,
		clients:       make(map[*Client]bool),
		logger:        logrus.WithField("game", id),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// ID returns the game id
func (d *Dealer) ID() string {
	return d.id
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

// exec runs fn on the run loop and waits for it to finish
func (d *Dealer) exec(ctx context.Context, fn func() error) error {
	errCh := make(chan error, 1)
	job := func() {
		errCh <- fn()
	}

	select {
	case d.execInRunLoop <- job:
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-errCh:
		return err
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AddClient adds a client and sends it the current game
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.logger.WithField("player", client.playerID).Debug("client connected")

	select {
	case d.execInRunLoop <- func() {
		client.Send(newGameResponse(d.game.Visualize(client.playerID)))
	}:
	case <-d.close:
	}
}

// RemoveClient removes a client
// lastClient is true if no more clients are connected.
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	d.logger.WithField("player", client.playerID).Debug("client disconnected")
	return nClients == 0
}

// View returns the game as seen by the viewer
func (d *Dealer) View(ctx context.Context, viewerID string) (holdem.View, error) {
	var v holdem.View
	err := d.exec(ctx, func() error {
		v = d.game.Visualize(viewerID)
		return nil
	})

	return v, err
}

// Action performs a player's action
func (d *Dealer) Action(ctx context.Context, playerID string, a holdem.Action) error {
	return d.exec(ctx, func() error {
		if err := d.game.Action(a, playerID); err != nil {
			return err
		}

		d.changed(ctx)
		return nil
	})
}

// RemovePlayer removes the player from the game
func (d *Dealer) RemovePlayer(ctx context.Context, playerID string) error {
	return d.exec(ctx, func() error {
		if err := d.game.RemovePlayer(playerID); err != nil {
			return err
		}

		d.changed(ctx)
		return nil
	})
}

// HandStarted is called by the game once the cards are dealt
func (d *Dealer) HandStarted(i *holdem.Instance[table.Player]) {
	d.logger.WithField("players", len(i.State.Players)).Debug("hand dealt")
}

// HandEnded schedules the next hand
// NOTE: called from the run loop
func (d *Dealer) HandEnded(i *holdem.Instance[table.Player], _ holdem.Result[table.Player]) {
	d.scheduleRestart(i)
}

// NOTE: must only be called from the run loop
func (d *Dealer) scheduleRestart(i *holdem.Instance[table.Player]) {
	if i.RestartAt == nil {
		return
	}

	if d.restartTimer != nil {
		d.restartTimer.Stop()
	}

	delay := i.RestartAt.Sub(d.clock.Now())
	if delay < 0 {
		delay = 0
	}

	d.restartTimer = d.clock.AfterFunc(delay, func() {
		select {
		case d.execInRunLoop <- d.restartHand:
		case <-d.close:
		}
	}, "dealer", "restart")
}

// NOTE: must only be called from the run loop
func (d *Dealer) restartHand() {
	if !d.game.HasEnded() {
		return
	}

	removed, err := autopilot.RemoveBusted(d.game)
	if err != nil {
		d.logger.WithError(err).Error("could not remove busted players")
		return
	}

	for _, id := range removed {
		d.logger.WithField("player", id).Info("player busted")
	}

	if len(d.game.State.Players) < 2 {
		d.logger.Info("not enough players for another hand")
		d.changed(context.Background())
		return
	}

	if err := d.game.Restart(table.Redeal); err != nil {
		d.logger.WithError(err).Error("could not restart the game")
		return
	}

	d.changed(context.Background())
}

// changed saves the game and sends it to every client
// NOTE: must only be called from the run loop
func (d *Dealer) changed(ctx context.Context) {
	d.save(ctx)

	for _, client := range d.Clients() {
		client.Send(newGameResponse(d.game.Visualize(client.playerID)))
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) save(ctx context.Context) {
	if d.store == nil {
		return
	}

	if err := d.store.Save(ctx, d.game); err != nil {
		d.logger.WithError(err).Error("could not save game")
	}
}
