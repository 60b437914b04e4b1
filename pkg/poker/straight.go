package poker

import (
	"sort"

	"holdem-server/pkg/deck"
)

// longestRun returns the longest run of consecutive ranks, one card per rank, lowest first
// Aces only count high. On a tie the higher run wins.
func longestRun(cards []deck.Card) []deck.Card {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.Stable(sortByRank(sorted))

	distinct := make([]deck.Card, 0, len(sorted))
	for _, card := range sorted {
		if len(distinct) == 0 || distinct[len(distinct)-1].Rank != card.Rank {
			distinct = append(distinct, card)
		}
	}

	var longest, current []deck.Card
	for _, card := range distinct {
		if len(current) > 0 && current[len(current)-1].Rank+1 != card.Rank {
			if len(current) >= len(longest) {
				longest = current
			}
			current = nil
		}

		current = append(current, card)
	}

	if len(current) >= len(longest) {
		longest = current
	}

	return longest
}

// topOfRun returns the highest five cards of the run, highest first
func topOfRun(run []deck.Card) []deck.Card {
	used := make([]deck.Card, 0, handSize)
	for i := len(run) - 1; i >= 0 && len(used) < handSize; i-- {
		used = append(used, run[i])
	}

	return used
}

func straight(cards []deck.Card) (int, []deck.Card, bool) {
	run := longestRun(cards)
	if len(run) < handSize {
		return 0, nil, false
	}

	return run[len(run)-1].Rank, topOfRun(run), true
}

// suitedRun finds the best run of at least five cards within a single suit
// If mustEndWithAce is true, only runs ending with the ace qualify.
func suitedRun(cards []deck.Card, mustEndWithAce bool) (int, []deck.Card, bool) {
	bestScore := 0
	var bestCards []deck.Card

	groups := groupBySuit(cards)
	for _, suit := range deck.Suits {
		run := longestRun(groups[suit])
		if len(run) < handSize {
			continue
		}

		top := run[len(run)-1].Rank
		if mustEndWithAce && top != deck.Ace {
			continue
		}

		if top > bestScore {
			bestScore = top
			bestCards = topOfRun(run)
		}
	}

	if bestCards == nil {
		return 0, nil, false
	}

	return bestScore, bestCards, true
}

func straightFlush(cards []deck.Card) (int, []deck.Card, bool) {
	return suitedRun(cards, false)
}

func royalFlush(cards []deck.Card) (int, []deck.Card, bool) {
	return suitedRun(cards, true)
}

func flush(cards []deck.Card) (int, []deck.Card, bool) {
	bestScore := 0
	var bestCards []deck.Card

	groups := groupBySuit(cards)
	for _, suit := range deck.Suits {
		suited := groups[suit]
		if len(suited) < handSize {
			continue
		}

		if suited[0].Rank > bestScore {
			bestScore = suited[0].Rank
			bestCards = append([]deck.Card(nil), suited[:handSize]...)
		}
	}

	if bestCards == nil {
		return 0, nil, false
	}

	return bestScore, bestCards, true
}
