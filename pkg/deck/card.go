package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTokenLength is returned when a card token is shorter than a rank plus a suit
var ErrTokenLength = errors.New("card must have a rank and a suit")

// ErrInvalidRank is returned when the rank symbol of a card is unknown
var ErrInvalidRank = errors.New("unknown rank")

// ErrInvalidSuit is returned when the suit symbol of a card is unknown
var ErrInvalidSuit = errors.New("unknown suit")

// ParseError is returned when a card or a hand cannot be parsed from text
type ParseError struct {
	Input string
	Err   error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", p.Input, p.Err)
}

// Unwrap returns the underlying reason
func (p *ParseError) Unwrap() error {
	return p.Err
}

// Rank is the face value of a card
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from lowest to highest
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// indexed by Rank - Two
var rankSymbols = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var rankNames = [...]string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

var rankPlurals = [...]string{"Twos", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights", "Nines", "Tens", "Jacks", "Queens", "Kings", "Aces"}

func (r Rank) valid() bool {
	return r >= Two && r <= Ace
}

// String returns the rank symbol, i.e., "10" or "K"
func (r Rank) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}

	return rankSymbols[r-Two]
}

// Name returns the English name of the rank, i.e., "King"
func (r Rank) Name() string {
	if !r.valid() {
		return r.String()
	}

	return rankNames[r-Two]
}

// Plural returns the plural English name of the rank, i.e., "Sixes"
func (r Rank) Plural() string {
	if !r.valid() {
		return r.String()
	}

	return rankPlurals[r-Two]
}

// RankFromString returns the rank for a symbol
func RankFromString(s string) (Rank, bool) {
	for i, symbol := range rankSymbols {
		if symbol == s {
			return Ranks[i], true
		}
	}

	return 0, false
}

// Suit represents a card suit
// Suits are ordered clubs < diamonds < hearts < spades. The order only breaks ties.
type Suit int

// suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit from lowest to highest
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

var suitSymbols = [...]string{"♧", "♢", "♡", "♤"}

var suitNames = [...]string{"clubs", "diamonds", "hearts", "spades"}

func (s Suit) valid() bool {
	return s >= Clubs && s <= Spades
}

// String returns the suit glyph
func (s Suit) String() string {
	if !s.valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}

	return suitSymbols[s]
}

// Name returns the lowercase name of the suit, i.e., "hearts"
func (s Suit) Name() string {
	if !s.valid() {
		return s.String()
	}

	return suitNames[s]
}

// SuitFromString returns the suit for a glyph
func SuitFromString(s string) (Suit, bool) {
	for i, symbol := range suitSymbols {
		if symbol == s {
			return Suits[i], true
		}
	}

	return 0, false
}

// Card is an individual playing card
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// MarshalText renders the card as its token, i.e., "10♤"
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a card token
func (c *Card) UnmarshalText(text []byte) error {
	card, err := CardFromString(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// Before returns true if c sorts ahead of card
// Higher ranks sort first, and the suit breaks ties.
func (c Card) Before(card Card) bool {
	if c.Rank != card.Rank {
		return c.Rank > card.Rank
	}

	return c.Suit > card.Suit
}

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit>, i.e., "10♤" or "A♡"
func CardFromString(s string) (Card, error) {
	runes := []rune(s)
	n := len(runes)
	if n < 2 {
		return Card{}, &ParseError{Input: s, Err: ErrTokenLength}
	}

	rank, ok := RankFromString(string(runes[:n-1]))
	if !ok {
		return Card{}, &ParseError{Input: s, Err: ErrInvalidRank}
	}

	suit, ok := SuitFromString(string(runes[n-1]))
	if !ok {
		return Card{}, &ParseError{Input: s, Err: ErrInvalidSuit}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardsFromString will return a slice of cards from whitespace separated tokens
func CardsFromString(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, len(fields))
	for i, field := range fields {
		card, err := CardFromString(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString will convert a slice of cards to a string in the format of "2♧ 3♡ 4♤"
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}
