package poker

import (
	"fmt"

	"holdem-server/pkg/deck"
)

// handSize is the number of cards a straight or a flush needs
const handSize = 5

// Combination is the best poker hand found in a set of cards
type Combination struct {
	Kind Kind `json:"kind"`
	// Score breaks ties between combinations of the same kind
	Score int         `json:"score"`
	Cards []deck.Card `json:"cards"`
}

// BaseScore returns the score of the kind. Any difference in base score decides a comparison.
func (c Combination) BaseScore() int {
	return int(c.Kind)
}

// Compare returns -1, 0 or 1 if c is worse than, equal to or better than other
func (c Combination) Compare(other Combination) int {
	switch {
	case c.Kind < other.Kind:
		return -1
	case c.Kind > other.Kind:
		return 1
	case c.Score < other.Score:
		return -1
	case c.Score > other.Score:
		return 1
	}

	return 0
}

func (c Combination) String() string {
	return fmt.Sprintf("%s (%s)", c.Kind, deck.CardsToString(c.Cards))
}

// evaluator looks for one kind of combination
// ok is false if the cards cannot make the combination
type evaluator func(cards []deck.Card) (score int, used []deck.Card, ok bool)

var evaluators = map[Kind]evaluator{
	HighCard:      highCard,
	OnePair:       rankEvaluator(2),
	TwoPair:       rankEvaluator(2, 2),
	ThreeOfAKind:  rankEvaluator(3),
	Straight:      straight,
	Flush:         flush,
	FullHouse:     rankEvaluator(3, 2),
	FourOfAKind:   rankEvaluator(4),
	StraightFlush: straightFlush,
	RoyalFlush:    royalFlush,
}

// Evaluate returns the best combination the cards can make
// The result is false if there are no cards or if any card is hidden.
func Evaluate(cards []deck.Card) (Combination, bool) {
	if len(cards) == 0 || deck.Hand(cards).HasHidden() {
		return Combination{}, false
	}

	var best Combination
	found := false
	for _, kind := range Kinds {
		score, used, ok := evaluators[kind](cards)
		if !ok {
			continue
		}

		if !found || kind > best.Kind {
			best = Combination{
				Kind:  kind,
				Score: score,
				Cards: used,
			}
			found = true
		}
	}

	return best, found
}

// Strength returns the base score and the tie-break score of the best combination
// Cards that cannot be evaluated have a strength of zero.
func Strength(cards []deck.Card) (base int, score int) {
	c, ok := Evaluate(cards)
	if !ok {
		return 0, 0
	}

	return c.BaseScore(), c.Score
}

func highCard(cards []deck.Card) (int, []deck.Card, bool) {
	if len(cards) == 0 {
		return 0, nil, false
	}

	top := highestFirst(cards)[0]
	return top.Rank, []deck.Card{top}, true
}
