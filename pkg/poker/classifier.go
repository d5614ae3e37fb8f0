package poker

import (
	"sort"

	"pokerhands/pkg/deck"
)

// Classifier returns the five significant cards of a hand, most significant first,
// or nil if the hand does not belong to the category
type Classifier func(hand deck.Hand) []deck.Card

// Classifier returns the classifier for the category
func (c Category) Classifier() Classifier {
	switch c {
	case RoyalFlush:
		return royalFlush
	case StraightFlush:
		return straightFlush
	case FourOfAKind:
		return fourOfAKind
	case FullHouse:
		return fullHouse
	case Flush:
		return flush
	case Straight:
		return straight
	case ThreeOfAKind:
		return threeOfAKind
	case TwoPair:
		return twoPair
	case OnePair:
		return onePair
	case HighCard:
		return highCard
	default:
		return nil
	}
}

// Classify returns the significant cards if the hand belongs to the category
func (c Category) Classify(hand deck.Hand) ([]deck.Card, bool) {
	classify := c.Classifier()
	if classify == nil {
		return nil, false
	}

	cards := classify(hand)
	return cards, len(cards) == deck.HandSize
}

func royalFlush(hand deck.Hand) []deck.Card {
	cards := straightFlush(hand)
	if cards == nil || cards[0].Rank != deck.Ace {
		return nil
	}

	return cards
}

func straightFlush(hand deck.Hand) []deck.Card {
	if flush(hand) == nil {
		return nil
	}

	return straightCards(hand)
}

func fourOfAKind(hand deck.Hand) []deck.Card {
	cards := grouped(hand)
	if len(cards) != 4 || cards[0].Rank != cards[3].Rank {
		return nil
	}

	return withKickers(hand, cards)
}

func fullHouse(hand deck.Hand) []deck.Card {
	cards := grouped(hand)
	if len(cards) != deck.HandSize {
		return nil
	}

	return cards
}

func flush(hand deck.Hand) []deck.Card {
	for _, card := range hand {
		if card.Suit != hand[0].Suit {
			return nil
		}
	}

	return hand.Sorted()
}

func straight(hand deck.Hand) []deck.Card {
	return straightCards(hand)
}

func threeOfAKind(hand deck.Hand) []deck.Card {
	cards := grouped(hand)
	if len(cards) != 3 {
		return nil
	}

	return withKickers(hand, cards)
}

func twoPair(hand deck.Hand) []deck.Card {
	cards := grouped(hand)
	if len(cards) != 4 || cards[0].Rank == cards[3].Rank {
		return nil
	}

	return withKickers(hand, cards)
}

func onePair(hand deck.Hand) []deck.Card {
	cards := grouped(hand)
	if len(cards) != 2 {
		return nil
	}

	return withKickers(hand, cards)
}

func highCard(hand deck.Hand) []deck.Card {
	if len(grouped(hand)) > 0 {
		return nil
	}

	return hand.Sorted()
}

// grouped returns every card that shares its rank with another card,
// larger groups first, then higher ranks
func grouped(hand deck.Hand) []deck.Card {
	counts := make(map[deck.Rank]int, deck.HandSize)
	for _, card := range hand {
		counts[card.Rank]++
	}

	cards := make([]deck.Card, 0, deck.HandSize)
	for _, card := range hand {
		if counts[card.Rank] < 2 || contains(cards, card) {
			continue
		}

		cards = append(cards, card)
	}

	sort.Sort(sortByGroup{cards: cards, counts: counts})
	return cards
}

// withKickers appends the remaining cards of the hand, highest first
func withKickers(hand deck.Hand, cards []deck.Card) []deck.Card {
	for _, card := range hand.Sorted() {
		if !contains(cards, card) {
			cards = append(cards, card)
		}
	}

	return cards
}

func contains(cards []deck.Card, card deck.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}

	return false
}
