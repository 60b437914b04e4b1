package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// HasHidden returns true if any card in the hand is face-down
func (h Hand) HasHidden() bool {
	for _, c := range h {
		if c.IsHidden() {
			return true
		}
	}

	return false
}

// Mask returns a copy of the hand where every card from index {visible} onwards is hidden
func (h Hand) Mask(visible int) Hand {
	h2 := h.Clone()
	for i := max(visible, 0); i < len(h2); i++ {
		h2[i] = Hidden
	}

	return h2
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
