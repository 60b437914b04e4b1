package poker

import (
	"sort"

	"holdem-server/pkg/deck"
)

type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// highestFirst returns a copy of the cards ordered from the highest rank to the lowest
func highestFirst(cards []deck.Card) []deck.Card {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.Stable(sort.Reverse(sortByRank(sorted)))

	return sorted
}

// groupByRank groups the cards by rank, every group ordered as it appears in cards
func groupByRank(cards []deck.Card) map[int][]deck.Card {
	groups := make(map[int][]deck.Card)
	for _, card := range cards {
		groups[card.Rank] = append(groups[card.Rank], card)
	}

	return groups
}

// groupBySuit groups the cards by suit, every group ordered from the highest rank to the lowest
func groupBySuit(cards []deck.Card) map[deck.Suit][]deck.Card {
	groups := make(map[deck.Suit][]deck.Card)
	for _, card := range highestFirst(cards) {
		groups[card.Suit] = append(groups[card.Suit], card)
	}

	return groups
}
