package card

import (
	"fmt"
	"strings"
)

// rankAliases maps alternate spellings to canonical ranks
var rankAliases = map[string]string{
	"a":     "Ace",
	"one":   "Ace",
	"two":   "2",
	"three": "3",
	"four":  "4",
	"five":  "5",
	"six":   "6",
	"seven": "7",
	"eight": "8",
	"nine":  "9",
	"ten":   "10",
	"t":     "10",
	"j":     "Jack",
	"q":     "Queen",
	"k":     "King",
}

// Parse reads a display name such as "queen of hearts" or "Ten of Clubs"
// and returns the canonical card.
func Parse(name string) (Card, error) {
	fields := strings.Fields(name)
	if len(fields) != 3 || !strings.EqualFold(fields[1], "of") {
		return Card{}, fmt.Errorf("%w: %q (want \"<rank> of <suit>\")", ErrInvalidName, name)
	}

	rank, err := parseRank(fields[0])
	if err != nil {
		return Card{}, err
	}

	suit, ok := lookup(Suits, fields[2])
	if !ok {
		// Allow the singular form, e.g. "Ace of Spade"
		suit, ok = lookup(Suits, fields[2]+"s")
	}
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, fields[2])
	}

	return New(rank, suit), nil
}

func parseRank(s string) (string, error) {
	if rank, ok := lookup(Ranks, s); ok {
		return rank, nil
	}
	if rank, ok := rankAliases[strings.ToLower(s)]; ok {
		return rank, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// SuitSymbol returns the pip symbol for a suit
func SuitSymbol(suit string) string {
	switch suit {
	case "Diamonds":
		return "♦"
	case "Clubs":
		return "♣"
	case "Spades":
		return "♠"
	case "Hearts":
		return "♥"
	default:
		return "•"
	}
}
