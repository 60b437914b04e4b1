package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/internal/rng"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, deck.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, deck.Cards[51])
	assert.Equal(t, "79441517e1184e0e3c37383d2f7bc54996872dd8", deck.HashCode())
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.SetGenerator(rng.Seeded(1))
	d1.Shuffle()

	d2 := New()
	d2.SetGenerator(rng.Seeded(1))
	d2.Shuffle()

	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(New().HashCode(), d1.HashCode())

	// the shuffle is a permutation of the full deck
	seen := make(map[Card]bool)
	for _, card := range d1.Cards {
		a.False(card.IsHidden())
		a.False(seen[card], "duplicate %s", card)
		seen[card] = true
	}
	a.Len(seen, 52)

	// shuffling always starts from the full deck
	_, _ = d1.DrawN(10)
	d1.Shuffle()
	a.Equal(52, d1.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card.IsHidden() {
			t.Error("expected card, got hidden")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	assert.True(t, card.IsHidden())
	assert.ErrorIs(t, err, ErrEndOfDeck)

	deck.Shuffle()
	if !deck.CanDraw(52) {
		t.Errorf("expected Shuffle() to reshuffle the deck")
	}
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)

	d := FromCards(CardsFromString("2c,3c,4c"))
	cards, err := d.DrawN(2)
	a.NoError(err)
	a.Equal("2c,3c", CardsToString(cards))
	a.Equal(1, d.CardsLeft())

	cards, err = d.DrawN(2)
	a.ErrorIs(err, ErrEndOfDeck)
	a.Nil(cards)
	a.Equal(1, d.CardsLeft())
}
