package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/autopilot"
	"holdem-server/internal/util"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/poker"
)

// playHands plays up to {hands} hands, unseating busted players between hands
// wait may be nil.
func playHands[P holdem.Player[P]](ctx context.Context, i *holdem.Instance[P], hands int, redeal holdem.Builder[P, P], wait func() error) error {
	logger := logrus.WithField("game", i.ID)

	for hand := 1; hand <= hands; hand++ {
		if i.HasEnded() {
			if wait != nil {
				if err := wait(); err != nil {
					return err
				}
			}

			removed, err := autopilot.RemoveBusted(i)
			if err != nil {
				return err
			}

			for _, id := range removed {
				logger.WithField("player", id).Info("player busted")
			}

			if len(i.State.Players) < 2 {
				logger.Info("one player left")
				return nil
			}

			if err := i.Restart(redeal); err != nil {
				return err
			}
		}

		if err := autopilot.PlayHand(ctx, i); err != nil {
			return err
		}
	}

	return nil
}

func restartWaiter[P holdem.Player[P]](ctx context.Context, clock quartz.Clock, i *holdem.Instance[P]) func() error {
	return func() error {
		return autopilot.WaitForRestart(ctx, clock, i)
	}
}

func seatNames(n int) []string {
	names := make([]string, n)
	used := make(map[string]bool, n)
	for idx := range names {
		name := util.GetRandomName()
		for used[name] {
			name = util.GetRandomName()
		}

		used[name] = true
		names[idx] = name
	}

	return names
}

// tally counts the combinations that won hands
type tally[P holdem.Player[P]] struct {
	mu    sync.Mutex
	hands int
	kinds map[poker.Kind]int
}

func newTally[P holdem.Player[P]]() *tally[P] {
	return &tally[P]{kinds: make(map[poker.Kind]int)}
}

func (t *tally[P]) HandStarted(*holdem.Instance[P]) {}

func (t *tally[P]) HandEnded(i *holdem.Instance[P], result holdem.Result[P]) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.hands++
	for _, w := range result.Winners {
		if c, ok := poker.Evaluate(i.State.Hand(w)); ok {
			t.kinds[c.Kind]++
		}
	}
}

func (t *tally[P]) merge(other *tally[P]) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.hands += other.hands
	for k, n := range other.kinds {
		t.kinds[k] += n
	}
}

func (t *tally[P]) print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%d hands\n", t.hands)
	for _, k := range poker.Kinds {
		_, _ = fmt.Fprintf(w, "%-16s %d\n", k.String(), t.kinds[k])
	}
}

// reporter logs the outcome of every hand
type reporter[P holdem.Player[P]] struct{}

func (reporter[P]) HandStarted(*holdem.Instance[P]) {}

func (reporter[P]) HandEnded(i *holdem.Instance[P], result holdem.Result[P]) {
	for _, w := range result.Winners {
		fields := logrus.Fields{
			"game":   i.ID,
			"player": w.Name(),
			"payout": result.Payouts[w.ID()],
		}

		if c, ok := poker.Evaluate(i.State.Hand(w)); ok {
			fields["hand"] = c.String()
		}

		logrus.WithFields(fields).Info("winner")
	}
}

func printStandings[P holdem.Player[P]](w io.Writer, i *holdem.Instance[P]) {
	players := append([]P(nil), i.State.Players...)
	sort.SliceStable(players, func(a, b int) bool {
		return players[a].Chips() > players[b].Chips()
	})

	for _, p := range players {
		_, _ = fmt.Fprintf(w, "%-24s %d\n", p.Name(), p.Chips())
	}
}
