package holdem

import (
	"fmt"

	"holdem-server/pkg/deck"
)

// table constants
const (
	SmallBlind     = 5
	BigBlind       = 10
	MaxPlayers     = 10
	CommunityCards = 5
	FlopCards      = 3
)

// State is one betting round snapshot
// Every transition returns a new State; a State is never changed once returned.
type State[P Player[P]] struct {
	Community [CommunityCards]deck.Card `json:"centerCards"`
	Revealed  int                       `json:"centerRevealAmount"`
	Players   []P                       `json:"players"`
	Pot       int                       `json:"pot"`
	Variant   Variant                   `json:"variant"`
	// Finished is set once the hand reached showdown
	Finished bool `json:"finished"`
}

// Generate deals a new hand
// Hole cards are dealt one at a time around the table, then the five community cards are set aside
// face down. The first player posts the small blind and the second player the big blind.
// If the blinds leave nobody able to act, the hand runs straight to showdown and the Showdown is returned.
func Generate[U any, P Player[P]](users []U, variant Variant, build Builder[U, P], opts ...Option) (State[P], *Showdown[P], error) {
	o := newOptions(opts)
	return generate(users, variant, build, &o)
}

func generate[U any, P Player[P]](users []U, variant Variant, build Builder[U, P], o *options) (State[P], *Showdown[P], error) {
	if len(users) == 0 {
		return State[P]{}, nil, ErrNoPlayers
	}

	if len(users) > MaxPlayers {
		return State[P]{}, nil, ErrTooManyPlayers
	}

	if _, ok := validVariants[variant]; !ok {
		return State[P]{}, nil, fmt.Errorf("invalid variant: %s", string(variant))
	}

	d := o.nextDeck()

	holeCards := make([][2]deck.Card, len(users))
	for i := 0; i < 2; i++ {
		for j := range users {
			card, err := d.Draw()
			if err != nil {
				return State[P]{}, nil, err
			}

			holeCards[j][i] = card
		}
	}

	community, err := d.DrawN(CommunityCards)
	if err != nil {
		return State[P]{}, nil, err
	}

	s := State[P]{
		Players: make([]P, len(users)),
		Variant: variant,
	}
	copy(s.Community[:], community)

	for i, user := range users {
		p := build(user, Deal{
			HoleCards: holeCards[i],
			Status:    StatusActive,
		})

		switch i {
		case 0:
			p = p.WithBet(min(SmallBlind, p.Chips()))
		case 1:
			p = p.WithBet(min(BigBlind, p.Chips()))
		}

		s.Players[i] = p
	}

	// every seat is all-in from the blinds
	if len(s.AwaitedPlayers()) == 0 {
		return s.endRound()
	}

	return s, nil, nil
}

func (s State[P]) clone() State[P] {
	players := make([]P, len(s.Players))
	copy(players, s.Players)
	s.Players = players

	return s
}

func (s State[P]) index(id string) int {
	for i, p := range s.Players {
		if p.ID() == id {
			return i
		}
	}

	return -1
}

// Player returns the player with the id
func (s State[P]) Player(id string) (P, bool) {
	if i := s.index(id); i >= 0 {
		return s.Players[i], true
	}

	var p P
	return p, false
}

// IsSpectator returns true if the id is not seated at the table
func (s State[P]) IsSpectator(id string) bool {
	return s.index(id) < 0
}

// InHand returns the players that have not folded, in seating order
func (s State[P]) InHand() []P {
	return s.filter(InHand[P])
}

// ActivePlayers returns the players that have not folded and can still bet, in seating order
func (s State[P]) ActivePlayers() []P {
	return s.filter(IsActive[P])
}

// MinBet returns the highest current bet among active players, 0 if there are none
func (s State[P]) MinBet() int {
	minBet := 0
	for _, p := range s.ActivePlayers() {
		if p.Bet() > minBet {
			minBet = p.Bet()
		}
	}

	return minBet
}

// AwaitedPlayers returns the active players that still have to act this round, in seating order
func (s State[P]) AwaitedPlayers() []P {
	minBet := s.MinBet()
	return s.filter(func(p P) bool {
		return IsActive(p) && (!p.HadTurn() || p.Bet() < minBet)
	})
}

// CurrentTurn returns the first awaited player
func (s State[P]) CurrentTurn() (P, bool) {
	awaited := s.AwaitedPlayers()
	if len(awaited) == 0 {
		var p P
		return p, false
	}

	return awaited[0], true
}

// VisibleCommunity returns the community cards with the unrevealed ones hidden
func (s State[P]) VisibleCommunity() deck.Hand {
	return deck.Hand(s.Community[:]).Mask(s.Revealed)
}

// awaitedPosition returns the position of the player among the awaited players, or -1
func (s State[P]) awaitedPosition(id string) int {
	for i, p := range s.AwaitedPlayers() {
		if p.ID() == id {
			return i
		}
	}

	return -1
}

func (s State[P]) filter(keep func(p P) bool) []P {
	players := make([]P, 0, len(s.Players))
	for _, p := range s.Players {
		if keep(p) {
			players = append(players, p)
		}
	}

	return players
}
