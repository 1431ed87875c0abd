package card

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by Validate and Parse
var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidName = errors.New("invalid card name") // name doesn't read "<rank> of <suit>"
)

// Ranks in deck order, highest first.
var Ranks = []string{
	"King", "Queen", "Jack", "10", "9", "8", "7", "6", "5", "4", "3", "2", "Ace",
}

// Suits in deck order.
var Suits = []string{"Diamonds", "Clubs", "Spades", "Hearts"}

// Card represents a playing card
type Card struct {
	Rank string // Ace, 2-10, Jack, Queen, King
	Suit string // Diamonds, Clubs, Spades, Hearts
	Name string // "{Rank} of {Suit}"
}

// New creates a card and derives its display name. Rank and suit are not
// checked; use Validate for that.
func New(rank, suit string) Card {
	return Card{
		Rank: rank,
		Suit: suit,
		Name: formatName(rank, suit),
	}
}

// Canonical returns a fresh set of all 52 cards in deck order
func Canonical() []Card {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, New(rank, suit))
		}
	}
	return cards
}

// String returns the card's display name
func (c Card) String() string {
	return c.Name
}

// Validate reports whether the card is one of the 52 standard cards and its
// name still matches its rank and suit.
func (c Card) Validate() error {
	if !contains(Ranks, c.Rank) {
		return fmt.Errorf("%w: %q", ErrInvalidRank, c.Rank)
	}
	if !contains(Suits, c.Suit) {
		return fmt.Errorf("%w: %q", ErrInvalidSuit, c.Suit)
	}
	if want := formatName(c.Rank, c.Suit); c.Name != want {
		return fmt.Errorf("%w: %q does not match %q", ErrInvalidName, c.Name, want)
	}
	return nil
}

// IsRed reports whether the card belongs to a red suit
func (c Card) IsRed() bool {
	return c.Suit == "Diamonds" || c.Suit == "Hearts"
}

func formatName(rank, suit string) string {
	return fmt.Sprintf("%s of %s", rank, suit)
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// lookup finds the canonical spelling of item in slice, ignoring case
func lookup(slice []string, item string) (string, bool) {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return s, true
		}
	}
	return "", false
}
