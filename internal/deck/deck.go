package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/dealer/internal/card"
)

// ErrDeckExhausted is returned when dealing from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a standard 52-card deck. It is not safe for concurrent use;
// callers sharing a Deck must guard it themselves.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// New creates a full deck in deck order: suits Diamonds, Clubs, Spades,
// Hearts, each from King down to Ace.
func New() *Deck {
	return &Deck{cards: card.Canonical()}
}

// NewWithRand creates a full deck whose Shuffle draws from r
func NewWithRand(r *rand.Rand) *Deck {
	return &Deck{cards: card.Canonical(), rng: r}
}

// IsEmpty reports whether every card has been dealt
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Len returns the number of cards left to deal
func (d *Deck) Len() int {
	return len(d.cards)
}

// DealCard removes and returns the top card
func (d *Deck) DealCard() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrDeckExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// DealN deals n cards from the top. If the deck runs out first, the cards
// dealt so far are returned along with ErrDeckExhausted.
func (d *Deck) DealN(n int) ([]card.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	hand := make([]card.Card, 0, min(n, len(d.cards)))
	for i := 0; i < n; i++ {
		c, err := d.DealCard()
		if err != nil {
			return hand, fmt.Errorf("dealt %d of %d cards: %w", i, n, err)
		}
		hand = append(hand, c)
	}
	return hand, nil
}

// Shuffle discards whatever is left and replaces it with a fresh 52-card
// set in random order.
func (d *Deck) Shuffle() {
	d.cards = card.Canonical()
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}
