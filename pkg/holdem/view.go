package holdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

// View is the table as seen by one viewer
type View struct {
	ID          string       `json:"id"`
	CenterCards []deck.Card  `json:"centerCards"`
	Players     []PlayerView `json:"players"`
	Pot         int          `json:"pot"`
	Variant     Variant      `json:"variant"`
	// RestartAt is in milliseconds since the epoch
	RestartAt *int64 `json:"restartAt,omitempty"`
}

// PlayerView is a player as seen by one viewer
type PlayerView struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Bet            int       `json:"bet"`
	Card1          deck.Card `json:"card1"`
	Card2          deck.Card `json:"card2"`
	// Chips is the stack, including the current bet
	Chips          int       `json:"chips"`
	// RemainingChips is the stack minus the current bet
	RemainingChips int       `json:"remainingChips"`
	Turn           bool      `json:"turn"`
	You            bool      `json:"you"`
	State          Status    `json:"state"`
	// Hand names the best combination of the visible cards, if any
	Hand           string    `json:"hand,omitempty"`
}

// Visualize returns the table as seen by the viewer
// Unrevealed community cards are hidden. Hole cards are shown to their owner, to spectators and
// to everyone once the hand has ended.
func (i *Instance[P]) Visualize(viewerID string) View {
	s := i.State
	ended := i.HasEnded()
	spectating := s.IsSpectator(viewerID)
	center := s.VisibleCommunity()

	awaited := s.AwaitedPlayers()
	position := make(map[string]int, len(awaited))
	for idx, p := range awaited {
		position[p.ID()] = idx
	}

	v := View{
		ID:          i.ID,
		CenterCards: center,
		Players:     make([]PlayerView, len(s.Players)),
		Pot:         s.Pot,
		Variant:     s.Variant,
	}

	if i.RestartAt != nil {
		ms := i.RestartAt.UnixMilli()
		v.RestartAt = &ms
	}

	for idx, p := range s.Players {
		you := p.ID() == viewerID
		pv := PlayerView{
			ID:             p.ID(),
			Name:           p.Name(),
			Bet:            p.Bet(),
			Card1:          deck.Hidden,
			Card2:          deck.Hidden,
			Chips:          p.Chips(),
			RemainingChips: Remaining(p),
			You:            you,
			State:          viewStatus(p),
		}

		if pos, ok := position[p.ID()]; ok && !ended && !s.Finished {
			pv.Turn = s.Variant.mayAct(pos)
		}

		if you || spectating || ended {
			hole := p.HoleCards()
			pv.Card1, pv.Card2 = hole[0], hole[1]

			cards := append([]deck.Card{hole[0], hole[1]}, center...)
			if c, ok := poker.Evaluate(visibleOnly(cards)); ok {
				pv.Hand = c.Kind.String()
			}
		}

		v.Players[idx] = pv
	}

	return v
}

func viewStatus[P Player[P]](p P) Status {
	if !InHand(p) {
		return StatusFolded
	}

	if Remaining(p) <= 0 {
		return StatusAllIn
	}

	return StatusActive
}

// visibleOnly drops hidden cards
func visibleOnly(cards []deck.Card) []deck.Card {
	visible := make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		if !c.IsHidden() {
			visible = append(visible, c)
		}
	}

	return visible
}
