package holdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

// Showdown is returned by the transition that ends the hand
type Showdown[P Player[P]] struct {
	Winners []P
	Pot     int
}

// Action performs the action for the player after checking it is their turn
func (s State[P]) Action(a Action, playerID string) (State[P], *Showdown[P], error) {
	if s.Finished {
		return s, nil, ErrHandFinished
	}

	if s.IsSpectator(playerID) {
		return s, nil, ErrPlayerNotFound
	}

	position := s.awaitedPosition(playerID)
	if !s.Variant.mayAct(position) {
		if len(s.AwaitedPlayers()) == 0 {
			return s, nil, ErrNoPendingTurn
		}

		return s, nil, ErrNotYourTurn
	}

	return s.ForceAction(a, playerID)
}

// ForceAction performs the action for the player without checking whose turn it is
// A Showdown is returned if the action ended the hand.
func (s State[P]) ForceAction(a Action, playerID string) (State[P], *Showdown[P], error) {
	if s.Finished {
		return s, nil, ErrHandFinished
	}

	i := s.index(playerID)
	if i < 0 {
		return s, nil, ErrPlayerNotFound
	}

	next := s.clone()
	p := next.Players[i]

	switch a.Type {
	case Bet:
		if !InHand(p) {
			return s, nil, ErrPlayerFolded
		}

		if minBet := s.MinBet(); a.Amount < minBet {
			return s, nil, errBetTooLow(a.Amount, minBet)
		}

		if a.Amount > p.Chips() {
			return s, nil, ErrBetExceedsStack
		}

		p = p.WithBet(a.Amount).WithHadTurn(true)
	case Fold:
		p = p.Fold()
	default:
		return s, nil, ErrUnknownAction
	}

	next.Players[i] = p

	if len(next.AwaitedPlayers()) > 0 && len(next.InHand()) > 1 {
		return next, nil, nil
	}

	final, showdown, err := next.endRound()
	if err != nil {
		return s, nil, err
	}

	return final, showdown, nil
}

// endRound sweeps the bets into the pot and reveals the next community cards
func (s State[P]) endRound() (State[P], *Showdown[P], error) {
	for i, p := range s.Players {
		s.Pot += p.Bet()
		s.Players[i] = p.WithChips(p.Chips() - p.Bet()).WithBet(0).WithHadTurn(false)
	}

	if s.Revealed == 0 {
		s.Revealed = FlopCards
	} else {
		s.Revealed++
	}

	if s.Revealed <= CommunityCards && len(s.ActivePlayers()) > 1 {
		return s, nil, nil
	}

	s.Revealed = CommunityCards
	s.Finished = true

	winners, err := s.Winners()
	if err != nil {
		return State[P]{}, nil, err
	}

	return s, &Showdown[P]{
		Winners: winners,
		Pot:     s.Pot,
	}, nil
}

// Hand returns the player's hole cards followed by the community cards
func (s State[P]) Hand(p P) []deck.Card {
	hole := p.HoleCards()
	cards := make([]deck.Card, 0, len(hole)+CommunityCards)
	cards = append(cards, hole[:]...)
	return append(cards, s.Community[:]...)
}

// Winners returns the players with the best combination among the players that have not folded
// All five community cards count, whether they were revealed or not.
func (s State[P]) Winners() ([]P, error) {
	contenders := s.InHand()
	if len(contenders) == 0 {
		return nil, ErrNoWinners
	}

	bestBase, bestScore := -1, -1
	var winners []P
	for _, p := range contenders {
		base, score := poker.Strength(s.Hand(p))
		switch {
		case base > bestBase || (base == bestBase && score > bestScore):
			bestBase, bestScore = base, score
			winners = []P{p}
		case base == bestBase && score == bestScore:
			winners = append(winners, p)
		}
	}

	return winners, nil
}
