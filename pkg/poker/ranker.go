package poker

import (
	"context"
	"errors"
	"sort"

	"pokerhands/pkg/deck"
)

// ErrNoHands is returned when a winner is requested from zero hands
var ErrNoHands = errors.New("no hands to compare")

// Ranker ranks batches of hands written as text
type Ranker struct {
	// Workers is the number of hands evaluated concurrently, 0 or 1 evaluates in order
	Workers int
}

// ParseHands parses every hand before anything is evaluated
func ParseHands(texts []string) ([]deck.Hand, error) {
	if len(texts) == 0 {
		return nil, ErrNoHands
	}

	hands := make([]deck.Hand, len(texts))
	for i, text := range texts {
		h, err := deck.HandFromString(text)
		if err != nil {
			return nil, err
		}

		hands[i] = h
	}

	return hands, nil
}

// Evaluate parses and evaluates every hand, keeping the input order
func (r Ranker) Evaluate(ctx context.Context, texts []string) ([]*RankedHand, error) {
	hands, err := ParseHands(texts)
	if err != nil {
		return nil, err
	}

	return EvaluateAll(ctx, hands, r.Workers)
}

// Winner returns the best hand. On a tie the earliest hand wins.
func (r Ranker) Winner(ctx context.Context, texts []string) (*RankedHand, error) {
	ranked, err := r.Evaluate(ctx, texts)
	if err != nil {
		return nil, err
	}

	return best(ranked), nil
}

// Winners returns every hand that ties the best hand, in input order
func (r Ranker) Winners(ctx context.Context, texts []string) ([]*RankedHand, error) {
	ranked, err := r.Evaluate(ctx, texts)
	if err != nil {
		return nil, err
	}

	top := best(ranked)
	winners := make([]*RankedHand, 0, 1)
	for _, hand := range ranked {
		if Compare(hand, top) == 0 {
			winners = append(winners, hand)
		}
	}

	return winners, nil
}

// Rank returns every hand ordered best first
// Hands that compare equal keep their input order.
func (r Ranker) Rank(ctx context.Context, texts []string) ([]*RankedHand, error) {
	ranked, err := r.Evaluate(ctx, texts)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i], ranked[j]) > 0
	})

	return ranked, nil
}

func best(ranked []*RankedHand) *RankedHand {
	top := ranked[0]
	for _, hand := range ranked[1:] {
		if Compare(hand, top) > 0 {
			top = hand
		}
	}

	return top
}

// BestHand returns the description of the winning hand, i.e., "Flush Ace high"
func BestHand(texts []string) (string, error) {
	winner, err := Winner(texts)
	if err != nil {
		return "", err
	}

	return winner.Description(), nil
}

// Winner returns the best hand
func Winner(texts []string) (*RankedHand, error) {
	return Ranker{}.Winner(context.Background(), texts)
}

// Winners returns every hand that ties the best hand
func Winners(texts []string) ([]*RankedHand, error) {
	return Ranker{}.Winners(context.Background(), texts)
}

// RankHands returns every hand ordered best first
func RankHands(texts []string) ([]*RankedHand, error) {
	return Ranker{}.Rank(context.Background(), texts)
}
