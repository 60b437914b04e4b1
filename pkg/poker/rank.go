package poker

import (
	"sort"

	"holdem-server/pkg/deck"
)

// rankEvaluator builds an evaluator for combinations made of groups of equal rank
// i.e., a pair is (2), two pair is (2, 2) and a full house is (3, 2)
//
// Groups are filled largest first, each one taking the highest rank that still has enough
// cards. A rank used by one group cannot be used by another.
func rankEvaluator(groupSizes ...int) evaluator {
	sizes := make([]int, len(groupSizes))
	copy(sizes, groupSizes)
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return func(cards []deck.Card) (int, []deck.Card, bool) {
		groups := groupByRank(cards)

		score := 0
		used := make([]deck.Card, 0, len(cards))
		for _, size := range sizes {
			best := 0
			for rank, group := range groups {
				if len(group) >= size && rank > best {
					best = rank
				}
			}

			if best == 0 {
				return 0, nil, false
			}

			score += best * size
			used = append(used, groups[best][:size]...)
			delete(groups, best)
		}

		return score, used, true
	}
}
