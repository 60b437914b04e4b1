package holdem

import "holdem-server/pkg/deck"

// Status is the state of a player within a hand
type Status string

// Status constants
const (
	StatusActive Status = "active"
	StatusFolded Status = "folded"

	// StatusAllIn is never stored, it is derived for players without chips left to bet
	StatusAllIn Status = "allin"
)

// Player is the capability set the betting round needs from a seated player
// Implementations are value types: the With* and Fold methods return a modified copy and
// must never change the receiver.
type Player[P any] interface {
	ID() string
	Name() string
	HoleCards() [2]deck.Card
	// Chips is the player's stack, including the chips committed by the current bet
	Chips() int
	Bet() int
	Status() Status
	HadTurn() bool

	WithChips(chips int) P
	WithBet(bet int) P
	WithHadTurn(hadTurn bool) P
	Fold() P
}

// Deal is everything a player receives at the start of a hand
type Deal struct {
	HoleCards [2]deck.Card
	Bet       int
	Status    Status
	HadTurn   bool
}

// Builder creates the player for {user} from the hand's deal
type Builder[U any, P any] func(user U, d Deal) P

// Remaining returns the chips the player could still put in this round
func Remaining[P Player[P]](p P) int {
	return p.Chips() - p.Bet()
}

// InHand returns true if the player has not folded
func InHand[P Player[P]](p P) bool {
	return p.Status() != StatusFolded
}

// IsActive returns true if the player has not folded and can still bet
func IsActive[P Player[P]](p P) bool {
	return InHand(p) && Remaining(p) > 0
}
