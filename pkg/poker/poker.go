package poker

import (
	"encoding/json"
	"fmt"
)

// Kind is a poker hand category, i.e., royal flush
// The numeric value is the base score: a higher kind always beats a lower one.
type Kind int

// Constants for kind
const (
	HighCard Kind = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Kinds lists every kind from weakest to strongest
var Kinds = []Kind{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
	RoyalFlush,
}

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown kind: %d", k))
	}
}

// ID returns the machine readable identifier, i.e., two_pair
func (k Kind) ID() string {
	switch k {
	case HighCard:
		return "high_card"
	case OnePair:
		return "pair"
	case TwoPair:
		return "two_pair"
	case ThreeOfAKind:
		return "three_of_a_kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full_house"
	case FourOfAKind:
		return "four_of_a_kind"
	case StraightFlush:
		return "straight_flush"
	case RoyalFlush:
		return "royal_flush"
	default:
		panic(fmt.Sprintf("unknown kind: %d", k))
	}
}

// MarshalJSON encodes the kind as its identifier
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.ID())
}
