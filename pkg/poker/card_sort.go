package poker

import "pokerhands/pkg/deck"

// sortByGroup orders grouped cards so larger groups come first, then higher ranks
type sortByGroup struct {
	cards  []deck.Card
	counts map[deck.Rank]int
}

func (s sortByGroup) Len() int {
	return len(s.cards)
}

func (s sortByGroup) Less(i, j int) bool {
	a, b := s.cards[i], s.cards[j]
	if ca, cb := s.counts[a.Rank], s.counts[b.Rank]; ca != cb {
		return ca > cb
	}

	return a.Before(b)
}

func (s sortByGroup) Swap(i, j int) {
	s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
}
