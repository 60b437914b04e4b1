package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownCard is returned when a card identifier cannot be parsed
var ErrUnknownCard = errors.New("unknown card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits contains every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// rank bounds
const (
	MinRank = 2
	MaxRank = Ace
)

// hiddenID is the identifier of a card whose face is not shown to the viewer
const hiddenID = "hidden"

var rankNames = map[int]string{
	2:     "2",
	3:     "3",
	4:     "4",
	5:     "5",
	6:     "6",
	7:     "7",
	8:     "8",
	9:     "9",
	10:    "10",
	Jack:  "jack",
	Queen: "queen",
	King:  "king",
	Ace:   "ace",
}

// Card is an individual playing card
// The zero value is the hidden card: a placeholder for a card whose face is not known.
type Card struct {
	Rank int
	Suit Suit
}

// Hidden is the face-down placeholder card
var Hidden = Card{}

// IsHidden returns true if the card is the face-down placeholder
func (c Card) IsHidden() bool {
	return c == Hidden
}

func (c Card) String() string {
	if c.IsHidden() {
		return "??"
	}

	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// ID returns the card identifier, e.g., spades_ace or hearts_10
func (c Card) ID() string {
	if c.IsHidden() {
		return hiddenID
	}

	return fmt.Sprintf("%s_%s", c.Suit, rankNames[c.Rank])
}

// MarshalJSON encodes the card as its identifier
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ID())
}

// UnmarshalJSON decodes a card from its identifier
func (c *Card) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}

	card, err := CardFromID(id)
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// CardFromID parses a card identifier as returned by ID()
func CardFromID(id string) (Card, error) {
	if id == hiddenID {
		return Hidden, nil
	}

	suit, rankName, ok := strings.Cut(id, "_")
	if !ok {
		return Hidden, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}

	if !validSuit(Suit(suit)) {
		return Hidden, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}

	for rank, name := range rankNames {
		if name == rankName {
			return Card{Rank: rank, Suit: Suit(suit)}, nil
		}
	}

	return Hidden, fmt.Errorf("%w: %s", ErrUnknownCard, id)
}

func validSuit(s Suit) bool {
	for _, suit := range Suits {
		if suit == s {
			return true
		}
	}

	return false
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// ParseCard accepts either notation (14s or spades_ace) and returns an error instead of panicking
func ParseCard(s string) (Card, error) {
	if cardRx.MatchString(s) {
		return CardFromString(s), nil
	}

	return CardFromID(strings.ToLower(s))
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	if card.IsHidden() {
		return ""
	}

	return fmt.Sprintf("%d%s", card.Rank, string(card.Suit)[:1])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
