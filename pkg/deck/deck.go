package deck

import (
	"errors"

	"pokerhands/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck is the standard set of 52 distinct cards
// It exists to deal valid hands for tests and tooling.
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new, unshuffled deck of cards
func New() *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle will shuffle the remaining cards using the generator
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawHand will draw the next five cards
func (d *Deck) DrawHand() (Hand, error) {
	var h Hand
	if !d.CanDraw(HandSize) {
		return h, ErrEndOfDeck
	}

	copy(h[:], d.Cards[:HandSize])
	d.Cards = d.Cards[HandSize:]

	return h, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
