package poker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerhands/pkg/deck"
)

func TestBestHand(t *testing.T) {
	a := assert.New(t)

	desc, err := BestHand([]string{"10♤ J♤ Q♤ K♤ A♤", "2♧ 3♧ 4♧ 5♧ 6♧"})
	a.NoError(err)
	a.Equal("Royal Flush", desc)

	desc, err = BestHand([]string{"4♧ 4♢ 4♡ 9♤ 9♧", "4♤ 4♡ 9♢ 9♧ 9♤"})
	a.NoError(err)
	a.Equal("Full House Nines and Fours", desc)

	desc, err = BestHand([]string{"J♧ J♢ 9♡ 5♤ 2♧", "J♡ J♤ 10♧ 5♢ 2♢"})
	a.NoError(err)
	a.Equal("Pair of Jacks", desc)

	desc, err = BestHand([]string{"2♧ 9♧ 4♧ A♧ 7♧"})
	a.NoError(err)
	a.Equal("Flush Ace high", desc)
}

func TestBestHand_Errors(t *testing.T) {
	a := assert.New(t)

	_, err := BestHand([]string{})
	a.Equal(ErrNoHands, err)

	_, err = BestHand(nil)
	a.Equal(ErrNoHands, err)

	_, err = BestHand([]string{"bad input"})
	var parseErr *deck.ParseError
	a.True(errors.As(err, &parseErr))

	// one bad hand fails the whole batch
	_, err = BestHand([]string{"10♤ J♤ Q♤ K♤ A♤", "2♧ 3♧ 4♧ 5♧"})
	a.True(errors.Is(err, deck.ErrCardCount))

	_, err = BestHand([]string{"10♤ J♤ Q♤ K♤ A♤", "2♧ 2♧ 4♧ 5♧ 6♧"})
	a.True(errors.Is(err, ErrInvalidHand))
}

func TestWinner(t *testing.T) {
	winner, err := Winner([]string{"2♧ 3♧ 4♧ 5♧ 6♧", "10♤ J♤ Q♤ K♤ A♤", "A♧ A♢ A♡ A♤ K♧"})
	assert.NoError(t, err)
	assert.Equal(t, "10♤ J♤ Q♤ K♤ A♤", winner.Hand.String())
	assert.Equal(t, RoyalFlush, winner.Category)
}

func TestWinners(t *testing.T) {
	a := assert.New(t)

	winners, err := Winners([]string{"2♧ 4♢ 6♡ 8♤ 10♧", "3♧ 4♧ 6♤ 8♡ 9♡", "2♢ 4♧ 6♤ 8♡ 10♧"})
	a.NoError(err)
	if a.Len(winners, 2) {
		a.Equal("2♧ 4♢ 6♡ 8♤ 10♧", winners[0].Hand.String())
		a.Equal("2♢ 4♧ 6♤ 8♡ 10♧", winners[1].Hand.String())
	}

	// on a tie the earliest hand is the winner
	winner, err := Winner([]string{"3♧ 4♧ 6♤ 8♡ 9♡", "2♢ 4♧ 6♤ 8♡ 10♧", "2♧ 4♢ 6♡ 8♤ 10♧"})
	a.NoError(err)
	a.Equal("2♢ 4♧ 6♤ 8♡ 10♧", winner.Hand.String())

	winners, err = Winners([]string{"J♧ J♢ 9♡ 5♤ 2♧", "J♡ J♤ 10♧ 5♢ 2♢"})
	a.NoError(err)
	if a.Len(winners, 1) {
		a.Equal("J♡ J♤ 10♧ 5♢ 2♢", winners[0].Hand.String())
	}
}

func TestRankHands(t *testing.T) {
	ranked, err := RankHands([]string{
		"J♧ 3♢ J♡ 9♤ 5♧",
		"2♧ 9♧ 4♧ J♧ 7♧",
		"2♧ 9♢ 4♡ J♤ 7♧",
		"10♤ J♤ Q♤ K♤ A♤",
	})
	assert.NoError(t, err)

	categories := make([]Category, len(ranked))
	for i, r := range ranked {
		categories[i] = r.Category
	}

	assert.Equal(t, []Category{RoyalFlush, Flush, OnePair, HighCard}, categories)
}

func TestRanker_Workers(t *testing.T) {
	hands := randomHands(t, 5, 60)
	texts := make([]string, len(hands))
	for i, h := range hands {
		texts[i] = h.String()
	}

	ctx := context.Background()
	sequential, err := Ranker{}.Rank(ctx, texts)
	assert.NoError(t, err)

	concurrent, err := Ranker{Workers: 4}.Rank(ctx, texts)
	assert.NoError(t, err)
	assert.Equal(t, sequential, concurrent)

	w1, err := Ranker{}.Winner(ctx, texts)
	assert.NoError(t, err)
	w2, err := Ranker{Workers: 4}.Winner(ctx, texts)
	assert.NoError(t, err)
	assert.Equal(t, w1, w2)
}
