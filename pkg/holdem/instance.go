package holdem

import (
	"errors"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// RestartDelay is how long a finished hand stays on display before the next one should start
const RestartDelay = 5 * time.Second

// Instance is a running game: the current hand plus its lifecycle
// An Instance is not safe for concurrent use. Callers must serialize access to a given instance.
type Instance[P Player[P]] struct {
	ID    string
	State State[P]
	// RestartAt is set once the hand has been settled
	RestartAt *time.Time

	observer Observer[P]
	opts     options
	clock    quartz.Clock
	logger   logrus.FieldLogger
}

// GenerateNew deals the first hand of a new instance
// observer may be nil.
func GenerateNew[U any, P Player[P]](id string, users []U, variant Variant, build Builder[U, P], observer Observer[P], opts ...Option) (*Instance[P], error) {
	i := newInstance(id, observer, opts)

	state, showdown, err := generate(users, variant, build, &i.opts)
	if err != nil {
		return nil, err
	}

	i.start(state, showdown)
	return i, nil
}

// Restore rebuilds an instance from a saved state
func Restore[P Player[P]](id string, state State[P], restartAt *time.Time, observer Observer[P], opts ...Option) *Instance[P] {
	i := newInstance(id, observer, opts)
	i.State = state
	i.RestartAt = restartAt

	return i
}

func newInstance[P Player[P]](id string, observer Observer[P], opts []Option) *Instance[P] {
	if observer == nil {
		observer = NopObserver[P]{}
	}

	o := newOptions(opts)
	return &Instance[P]{
		ID:       id,
		observer: observer,
		opts:     o,
		clock:    o.clock,
		logger:   o.logger.WithField("game", id),
	}
}

// Action performs a player's action, ending the game if it led to showdown
func (i *Instance[P]) Action(a Action, playerID string) error {
	if i.HasEnded() {
		return ErrHandFinished
	}

	next, showdown, err := i.State.Action(a, playerID)
	return i.apply(next, showdown, err, playerID, a)
}

func (i *Instance[P]) apply(next State[P], showdown *Showdown[P], err error, playerID string, a Action) error {
	logger := i.logger.WithFields(logrus.Fields{
		"player": playerID,
		"action": a.Type,
		"amount": a.Amount,
	})

	if err != nil {
		if errors.Is(err, ErrNoWinners) {
			logger.WithError(err).Error("showdown reached without winners, the pot is void")
		} else {
			logger.WithError(err).Debug("action rejected")
		}

		return err
	}

	i.State = next
	logger.Debug("action accepted")

	if showdown != nil {
		i.EndGame(showdown.Winners)
	}

	return nil
}

// RemovePlayer folds the player out of the current hand and removes their seat
// The fold is applied first, so a removal can still end the hand in favor of the others.
func (i *Instance[P]) RemovePlayer(playerID string) error {
	if i.State.IsSpectator(playerID) {
		return ErrPlayerNotFound
	}

	if len(i.State.Players) <= 1 {
		return ErrLastPlayer
	}

	if !i.State.Finished {
		next, showdown, foldErr := i.State.ForceAction(FoldAction(), playerID)
		if err := i.apply(next, showdown, foldErr, playerID, FoldAction()); err != nil {
			return err
		}
	}

	next := i.State.clone()
	idx := next.index(playerID)
	next.Players = append(next.Players[:idx], next.Players[idx+1:]...)
	i.State = next

	i.logger.WithField("player", playerID).Info("player removed")
	return nil
}

// EndGame pays the pot to the winners and schedules the next hand
// The pot is split evenly. Chips that cannot be split go one at a time to the winners in seating order.
func (i *Instance[P]) EndGame(winners []P) Result[P] {
	result := Result[P]{
		Winners: winners,
		Pot:     i.State.Pot,
		Payouts: make(map[string]int),
	}

	next := i.State.clone()
	paid := 0
	if n := len(winners); n > 0 {
		share := next.Pot / n
		remainder := next.Pot % n

		// pay the remainder in seating order
		position := 0
		for idx, p := range next.Players {
			if !containsPlayer(winners, p.ID()) {
				continue
			}

			payout := share
			if position < remainder {
				payout++
			}
			position++

			next.Players[idx] = p.WithChips(p.Chips() + payout)
			result.Payouts[p.ID()] += payout
			paid += payout
		}
	}

	next.Pot -= paid
	next.Finished = true
	next.Revealed = CommunityCards
	i.State = next

	restartAt := i.clock.Now().Add(RestartDelay)
	i.RestartAt = &restartAt

	i.logger.WithFields(logrus.Fields{
		"pot":     result.Pot,
		"winners": len(winners),
		"payouts": result.Payouts,
	}).Info("hand ended")
	i.observer.HandEnded(i, result)

	return result
}

// HasEnded returns true once the hand has been settled
func (i *Instance[P]) HasEnded() bool {
	return i.RestartAt != nil
}

// Restart deals a new hand to the same players, keeping their current stacks
func (i *Instance[P]) Restart(build Builder[P, P]) error {
	if !i.HasEnded() {
		return ErrHandInProgress
	}

	state, showdown, err := generate(i.State.Players, i.State.Variant, build, &i.opts)
	if err != nil {
		return err
	}

	i.RestartAt = nil
	i.start(state, showdown)

	return nil
}

// start installs a freshly dealt hand
// A hand where nobody could act after the blinds is settled right away.
func (i *Instance[P]) start(state State[P], showdown *Showdown[P]) {
	i.State = state
	i.logger.WithField("players", len(state.Players)).Info("hand started")
	i.observer.HandStarted(i)

	if showdown != nil {
		i.EndGame(showdown.Winners)
	}
}

func containsPlayer[P Player[P]](players []P, id string) bool {
	for _, p := range players {
		if p.ID() == id {
			return true
		}
	}

	return false
}
