package poker

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"pokerhands/pkg/deck"
)

// ErrInvalidHand is returned when a hand cannot be classified
// This only happens when the same card appears twice in a hand.
var ErrInvalidHand = errors.New("invalid hand")

// RankedHand is a hand with its category and significant cards
type RankedHand struct {
	Hand     deck.Hand
	Category Category

	// Cards is a permutation of Hand, most significant first
	Cards []deck.Card
}

// Evaluate returns the highest category the hand belongs to
func Evaluate(hand deck.Hand) (*RankedHand, error) {
	if hand.HasDuplicates() {
		return nil, fmt.Errorf("%w: %s has duplicate cards", ErrInvalidHand, hand)
	}

	for _, category := range Categories {
		if cards, ok := category.Classify(hand); ok {
			return &RankedHand{
				Hand:     hand,
				Category: category,
				Cards:    cards,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s matches no category", ErrInvalidHand, hand)
}

// EvaluateAll evaluates every hand, keeping the input order
// With more than one worker the hands are evaluated concurrently.
func EvaluateAll(ctx context.Context, hands []deck.Hand, workers int) ([]*RankedHand, error) {
	ranked := make([]*RankedHand, len(hands))

	if workers <= 1 {
		for i, hand := range hands {
			r, err := Evaluate(hand)
			if err != nil {
				return nil, err
			}

			ranked[i] = r
		}

		return ranked, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, hand := range hands {
		i, hand := i, hand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := Evaluate(hand)
			if err != nil {
				return err
			}

			ranked[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ranked, nil
}

// Score returns the category score
func (r *RankedHand) Score() int {
	return r.Category.Score()
}

// HighCard returns the rank of the most significant card
func (r *RankedHand) HighCard() deck.Rank {
	return r.Cards[0].Rank
}

// secondHighCard returns the highest rank in this hand that the other hand does not hold
func (r *RankedHand) secondHighCard(other *RankedHand) deck.Rank {
	for _, card := range r.Hand.Sorted() {
		if !other.Hand.HasRank(card.Rank) {
			return card.Rank
		}
	}

	return deck.Two
}

// Description returns the canonical description, i.e., "Full House Kings and Twos"
func (r *RankedHand) Description() string {
	c := r.Cards
	switch r.Category {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return fmt.Sprintf("Straight Flush %s high", c[0].Rank.Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind %s", c[0].Rank.Plural())
	case FullHouse:
		return fmt.Sprintf("Full House %s and %s", c[0].Rank.Plural(), c[3].Rank.Plural())
	case Flush:
		return fmt.Sprintf("Flush %s high", c[0].Rank.Name())
	case Straight:
		return fmt.Sprintf("Straight %s high", c[0].Rank.Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind %s", c[0].Rank.Plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair %s and %s", c[0].Rank.Plural(), c[2].Rank.Plural())
	case OnePair:
		return fmt.Sprintf("Pair of %s", c[0].Rank.Plural())
	default:
		return fmt.Sprintf("High Card %s", c[0].Rank.Name())
	}
}

func (r *RankedHand) String() string {
	return fmt.Sprintf("%s (%s)", r.Hand, r.Description())
}

// Compare returns 1 if a beats b, -1 if b beats a, and 0 if neither wins
// Hands are compared by score, then the most significant rank, then the
// highest rank each hand holds that the other does not, then the suit of
// the most significant card.
func Compare(a, b *RankedHand) int {
	if as, bs := a.Score(), b.Score(); as != bs {
		return compareInts(as, bs)
	}

	if ah, bh := a.HighCard(), b.HighCard(); ah != bh {
		return compareInts(int(ah), int(bh))
	}

	if ak, bk := a.secondHighCard(b), b.secondHighCard(a); ak != bk {
		return compareInts(int(ak), int(bk))
	}

	return compareInts(int(a.Cards[0].Suit), int(b.Cards[0].Suit))
}

func compareInts(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
