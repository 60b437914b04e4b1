package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♢", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())
	assert.Equal(t, "??", Hidden.String())
}

func TestCard_ID(t *testing.T) {
	a := assert.New(t)
	a.Equal("spades_ace", CardFromString("14s").ID())
	a.Equal("hearts_10", CardFromString("10h").ID())
	a.Equal("clubs_2", CardFromString("2c").ID())
	a.Equal("diamonds_jack", CardFromString("11d").ID())
	a.Equal("hidden", Hidden.ID())

	for _, card := range New().Cards {
		parsed, err := CardFromID(card.ID())
		a.NoError(err)
		a.Equal(card, parsed)
	}

	_, err := CardFromID("spades_1")
	a.ErrorIs(err, ErrUnknownCard)

	_, err = CardFromID("swords_ace")
	a.ErrorIs(err, ErrUnknownCard)

	_, err = CardFromID("ace")
	a.EqualError(err, "unknown card: ace")
}

func TestCard_IsHidden(t *testing.T) {
	a := assert.New(t)
	a.True(Card{}.IsHidden())
	a.True(Hidden.IsHidden())
	a.False(CardFromString("2c").IsHidden())
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal([]Card{CardFromString("14s"), Hidden})
	a.NoError(err)
	a.Equal(`["spades_ace","hidden"]`, string(b))

	var cards []Card
	a.NoError(json.Unmarshal(b, &cards))
	a.Equal([]Card{CardFromString("14s"), Hidden}, cards)

	a.Error(json.Unmarshal([]byte(`["joker"]`), &cards))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(Card{Rank: Ace, Suit: Spades}, CardFromString("14s"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, CardFromString("10H"))
	a.PanicsWithValue("could not parse card: 1s", func() {
		CardFromString("1s")
	})
	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	c, err := ParseCard("13d")
	a.NoError(err)
	a.Equal(Card{Rank: King, Suit: Diamonds}, c)

	c, err = ParseCard("Diamonds_King")
	a.NoError(err)
	a.Equal(Card{Rank: King, Suit: Diamonds}, c)

	_, err = ParseCard("1x")
	a.ErrorIs(err, ErrUnknownCard)
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)
	a.Equal("2c,14s,10d", CardsToString(CardsFromString("2c,14s,10d")))
	a.Equal([]Card{}, CardsFromString(""))
	a.Equal("", CardToString(Hidden))
}
