package holdem

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-server/pkg/deck"
)

func setupSeats(chips ...int) []Seat {
	seats := make([]Seat, len(chips))
	for i, c := range chips {
		seats[i] = Seat{
			ID:    fmt.Sprintf("p%d", i+1),
			Name:  fmt.Sprintf("Player %d", i+1),
			Chips: c,
		}
	}

	return seats
}

// arrangedDeck stacks a deck so each player receives the hole cards given in seating order
func arrangedDeck(t *testing.T, community string, holeCards ...string) *deck.Deck {
	t.Helper()

	hands := make([][]deck.Card, len(holeCards))
	for i, h := range holeCards {
		hands[i] = deck.CardsFromString(h)
		require.Len(t, hands[i], 2)
	}

	cards := make([]deck.Card, 0, 2*len(hands)+CommunityCards)
	for c := 0; c < 2; c++ {
		for _, h := range hands {
			cards = append(cards, h[c])
		}
	}

	return deck.FromCards(append(cards, deck.CardsFromString(community)...))
}

func setupState(t *testing.T, variant Variant, d *deck.Deck, chips ...int) State[LocalPlayer] {
	t.Helper()

	s, showdown, err := Generate(setupSeats(chips...), variant, NewLocalPlayer, WithDeck(d))
	require.NoError(t, err)
	require.Nil(t, showdown)

	return s
}

func assertAction(t *testing.T, s State[LocalPlayer], playerID string, a Action) State[LocalPlayer] {
	t.Helper()

	next, showdown, err := s.Action(a, playerID)
	require.NoError(t, err)
	assert.Nil(t, showdown)

	return next
}

func assertActionFailed(t *testing.T, s State[LocalPlayer], playerID string, a Action, expectedErr string) {
	t.Helper()

	next, showdown, err := s.Action(a, playerID)
	assert.EqualError(t, err, expectedErr)
	assert.Nil(t, showdown)
	assert.Equal(t, s, next)
}

func ids(players []LocalPlayer) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.ID()
	}

	return out
}

func totalChips(s State[LocalPlayer]) int {
	total := s.Pot
	for _, p := range s.Players {
		total += p.Chips()
	}

	return total
}

type recordingObserver struct {
	started int
	results []Result[LocalPlayer]
}

func (r *recordingObserver) HandStarted(*Instance[LocalPlayer]) {
	r.started++
}

func (r *recordingObserver) HandEnded(_ *Instance[LocalPlayer], result Result[LocalPlayer]) {
	r.results = append(r.results, result)
}

func init() {
	logrus.SetLevel(logrus.WarnLevel)
}
