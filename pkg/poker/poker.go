package poker

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category name is not recognized
var ErrUnknownCategory = errors.New("unknown category")

// Category is a poker hand category, i.e., full house
// The numeric value of a Category is its score.
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category in the order they are tried, strongest first
var Categories = [...]Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Score returns the category score, 1 for a high card through 10 for a royal flush
func (c Category) Score() int {
	return int(c)
}

// MarshalText renders the category name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a category name
func (c *Category) UnmarshalText(text []byte) error {
	for _, category := range Categories {
		if category.String() == string(text) {
			*c = category
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrUnknownCategory, text)
}
