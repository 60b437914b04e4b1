// Package autopilot drives every seat of a table without a human at the controls
package autopilot

import (
	"context"
	"errors"

	"github.com/coder/quartz"

	"holdem-server/pkg/holdem"
)

// ErrStalled is returned when a hand is still running but no player may act
var ErrStalled = errors.New("hand stalled: nobody may act")

// maxActions bounds a hand, every action either ends a round or marks a player as having acted
const maxActions = 1000

// Decide returns the action the viewer takes from its own view of the table
// The autopilot calls the minimum bet, or folds when it cannot cover it. ok is false when it is not
// the viewer's turn.
func Decide(v holdem.View) (a holdem.Action, ok bool) {
	var you *holdem.PlayerView
	minBet := 0
	for idx := range v.Players {
		p := &v.Players[idx]
		if p.You {
			you = p
		}

		if p.State == holdem.StatusActive && p.Bet > minBet {
			minBet = p.Bet
		}
	}

	if you == nil || !you.Turn {
		return holdem.Action{}, false
	}

	if minBet > you.Bet+you.RemainingChips {
		return holdem.FoldAction(), true
	}

	return holdem.BetAction(minBet), true
}

// PlayHand plays the current hand until it ends
func PlayHand[P holdem.Player[P]](ctx context.Context, i *holdem.Instance[P]) error {
	for n := 0; !i.HasEnded(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if n >= maxActions {
			return ErrStalled
		}

		acted := false
		for _, p := range i.State.Players {
			a, ok := Decide(i.Visualize(p.ID()))
			if !ok {
				continue
			}

			if err := i.Action(a, p.ID()); err != nil {
				return err
			}

			acted = true
			break
		}

		if !acted {
			return ErrStalled
		}
	}

	return nil
}

// RemoveBusted unseats the players without chips after a hand has ended
// The last seated player is never removed. It returns the ids of the removed players.
func RemoveBusted[P holdem.Player[P]](i *holdem.Instance[P]) ([]string, error) {
	removed := make([]string, 0)
	for _, p := range append([]P(nil), i.State.Players...) {
		if p.Chips() > 0 || len(i.State.Players) <= 1 {
			continue
		}

		if err := i.RemovePlayer(p.ID()); err != nil {
			return removed, err
		}

		removed = append(removed, p.ID())
	}

	return removed, nil
}

// WaitForRestart blocks until the restart hint of an ended hand has passed
func WaitForRestart[P holdem.Player[P]](ctx context.Context, clock quartz.Clock, i *holdem.Instance[P]) error {
	if i.RestartAt == nil {
		return holdem.ErrHandInProgress
	}

	d := i.RestartAt.Sub(clock.Now())
	if d <= 0 {
		return nil
	}

	t := clock.NewTimer(d, "autopilot", "restart")
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
