package poker

import "pokerhands/pkg/deck"

// straightCards returns the five cards highest first if they form a straight
// The ace plays low in A-2-3-4-5 and is then moved to the end.
func straightCards(hand deck.Hand) []deck.Card {
	cards := hand.Sorted()

	if isRun(cards) {
		return cards
	}

	if cards[0].Rank == deck.Ace && cards[1].Rank == deck.Five && isRun(cards[1:]) {
		return append(cards[1:], cards[0])
	}

	return nil
}

// isRun returns true if every card is exactly one rank below the previous
func isRun(cards []deck.Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i-1].Rank != cards[i].Rank+1 {
			return false
		}
	}

	return true
}
