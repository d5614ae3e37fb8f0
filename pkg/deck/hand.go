package deck

import (
	"errors"
	"fmt"
	"sort"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrCardCount is returned when a hand does not have exactly HandSize cards
var ErrCardCount = errors.New("wrong number of cards")

// Hand is five cards in the order they were dealt
// A Hand is a value; copies never share state.
type Hand [HandSize]Card

// NewHand returns a hand from exactly five cards
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: expected %d, got %d", ErrCardCount, HandSize, len(cards))
	}

	copy(h[:], cards)
	return h, nil
}

// HandFromString parses five whitespace separated card tokens, i.e., "10♤ J♤ Q♤ K♤ A♤"
// Duplicate cards are not rejected here.
func HandFromString(s string) (Hand, error) {
	cards, err := CardsFromString(s)
	if err != nil {
		return Hand{}, err
	}

	h, err := NewHand(cards...)
	if err != nil {
		return Hand{}, &ParseError{Input: s, Err: err}
	}

	return h, nil
}

// MustHand is like HandFromString, but panics if the hand cannot be parsed
func MustHand(s string) Hand {
	h, err := HandFromString(s)
	if err != nil {
		panic(err)
	}

	return h
}

// Cards returns the cards in dealt order
func (h Hand) Cards() []Card {
	cards := make([]Card, HandSize)
	copy(cards, h[:])

	return cards
}

// Sorted returns the cards ordered highest first
func (h Hand) Sorted() []Card {
	cards := h.Cards()
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Before(cards[j])
	})

	return cards
}

// Ranks returns the rank of every card, highest first
func (h Hand) Ranks() []Rank {
	ranks := make([]Rank, HandSize)
	for i, card := range h {
		ranks[i] = card.Rank
	}

	sort.Sort(sort.Reverse(rankSlice(ranks)))
	return ranks
}

// Suits returns the suit of every card, highest first
func (h Hand) Suits() []Suit {
	suits := make([]Suit, HandSize)
	for i, card := range h {
		suits[i] = card.Suit
	}

	sort.Sort(sort.Reverse(suitSlice(suits)))
	return suits
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

// HasRank returns true if any card in the hand has the rank
func (h Hand) HasRank(rank Rank) bool {
	for _, c := range h {
		if c.Rank == rank {
			return true
		}
	}

	return false
}

// HasDuplicates returns true if the same card appears more than once
func (h Hand) HasDuplicates() bool {
	for i := 0; i < HandSize; i++ {
		for j := i + 1; j < HandSize; j++ {
			if h[i] == h[j] {
				return true
			}
		}
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h[:])
}

type rankSlice []Rank

func (r rankSlice) Len() int           { return len(r) }
func (r rankSlice) Less(i, j int) bool { return r[i] < r[j] }
func (r rankSlice) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }

type suitSlice []Suit

func (s suitSlice) Len() int           { return len(s) }
func (s suitSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s suitSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
