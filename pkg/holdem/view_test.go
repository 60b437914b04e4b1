package holdem

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-server/pkg/deck"
)

func turns(v View) []bool {
	out := make([]bool, len(v.Players))
	for i, p := range v.Players {
		out[i] = p.Turn
	}

	return out
}

func TestInstance_Visualize(t *testing.T) {
	a := assert.New(t)

	i, _, _ := setupInstance(t, Strict, arrangedDeck(t, "2c,7d,9h,5s,8s", "13s,13h", "3c,4c", "12s,12h"), 100, 100, 100)

	v := i.Visualize("p1")
	a.Equal("game-1", v.ID)
	a.Equal([]deck.Card{deck.Hidden, deck.Hidden, deck.Hidden, deck.Hidden, deck.Hidden}, v.CenterCards)
	a.Equal(0, v.Pot)
	a.Nil(v.RestartAt)
	a.Equal([]bool{true, false, false}, turns(v), "only the head of the awaited players")

	me := v.Players[0]
	a.True(me.You)
	a.Equal(deck.CardFromString("13s"), me.Card1)
	a.Equal(deck.CardFromString("13h"), me.Card2)
	a.Equal("Pair", me.Hand)
	a.Equal(5, me.Bet)
	a.Equal(100, me.Chips)
	a.Equal(95, me.RemainingChips)
	a.Equal(StatusActive, me.State)

	for _, other := range v.Players[1:] {
		a.False(other.You)
		a.Equal(deck.Hidden, other.Card1)
		a.Equal(deck.Hidden, other.Card2)
		a.Empty(other.Hand)
	}

	// spectators see every hand
	v = i.Visualize("spectator")
	for _, p := range v.Players {
		a.False(p.You)
		a.False(p.Card1.IsHidden())
		a.False(p.Card2.IsHidden())
	}

	a.NoError(i.Action(BetAction(10), "p1"))
	a.NoError(i.Action(FoldAction(), "p2"))
	a.NoError(i.Action(BetAction(10), "p3"))

	v = i.Visualize("p3")
	a.Equal("2c,7d,9h,,", deck.CardsToString(v.CenterCards))
	a.Equal(30, v.Pot)
	a.Equal(StatusFolded, v.Players[1].State)
	a.Equal([]bool{true, false, false}, turns(v))
	a.Equal("Pair", v.Players[2].Hand)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	a.Contains(string(b), `"centerCards":["clubs_2","diamonds_7","hearts_9","hidden","hidden"]`)
	a.Contains(string(b), `"card1":"hidden"`)
	a.NotContains(string(b), "restartAt")

	a.NoError(i.Action(BetAction(90), "p1"))
	v = i.Visualize("p3")
	a.Equal(StatusAllIn, v.Players[0].State)
	a.Equal(0, v.Players[0].RemainingChips)
	a.Equal([]bool{false, false, true}, turns(v))
}

func TestInstance_Visualize_relaxed(t *testing.T) {
	a := assert.New(t)

	i, _, _ := setupInstance(t, Relaxed, arrangedDeck(t, "2c,7d,9h,5s,8s", "13s,13h", "3c,4c", "12s,12h"), 100, 100, 100)
	a.Equal([]bool{true, true, true}, turns(i.Visualize("p2")))

	a.NoError(i.Action(BetAction(10), "p2"))
	a.Equal([]bool{true, false, true}, turns(i.Visualize("p2")))
}

func TestInstance_Visualize_ended(t *testing.T) {
	a := assert.New(t)

	i, _, clock := setupInstance(t, Strict, arrangedDeck(t, "2c,7d,9h,5s,8s", "13s,13h", "3c,4c", "12s,12h"), 100, 100, 100)
	a.NoError(i.Action(FoldAction(), "p1"))
	a.NoError(i.Action(FoldAction(), "p2"))

	v := i.Visualize("p1")
	a.Equal(deck.CardsFromString("2c,7d,9h,5s,8s"), v.CenterCards)
	a.Equal([]bool{false, false, false}, turns(v))
	for _, p := range v.Players {
		a.False(p.Card1.IsHidden(), "every hand is shown once the hand is over")
	}

	require.NotNil(t, v.RestartAt)
	a.Equal(clock.Now().Add(5*time.Second).UnixMilli(), *v.RestartAt)
	a.Equal("Pair", v.Players[2].Hand)
}
