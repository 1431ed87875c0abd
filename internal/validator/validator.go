package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/dealer/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// HandFile is the on-disk layout of a hand file
type HandFile struct {
	Hand HandSection `toml:"hand"`
}

type HandSection struct {
	Name  string   `toml:"name"`
	Cards []string `toml:"cards"`
}

type Validator struct {
	HandPath string
	Results  ValidationResults

	hand HandFile
}

func NewValidator(handPath string) *Validator {
	return &Validator{
		HandPath: handPath,
		Results:  ValidationResults{},
	}
}

// Validate checks the hand file. A returned error means the file could not
// be read at all; problems with its contents go into the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.loadHandFile(); err != nil {
		return v.Results, err
	}

	v.validateHandSection()
	v.validateCards()

	return v.Results, nil
}

// Cards returns the parsed cards of the last validated hand, skipping any
// entries that failed to parse.
func (v *Validator) Cards() []card.Card {
	var cards []card.Card
	for _, name := range v.hand.Hand.Cards {
		if c, err := card.Parse(name); err == nil {
			cards = append(cards, c)
		}
	}
	return cards
}

func (v *Validator) loadHandFile() error {
	if _, err := os.Stat(v.HandPath); os.IsNotExist(err) {
		return fmt.Errorf("hand file not found: %s", v.HandPath)
	}

	md, err := toml.DecodeFile(v.HandPath, &v.hand)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", v.HandPath, err)
	}

	for _, key := range md.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}

	return nil
}

func (v *Validator) validateHandSection() {
	if v.hand.Hand.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "hand.name is not set")
	}

	if len(v.hand.Hand.Cards) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "hand.cards is empty")
	}
}

// validateCards checks every entry names one of the 52 cards, at most once
func (v *Validator) validateCards() {
	if n := len(v.hand.Hand.Cards); n > 52 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("hand has %d cards, a deck only has 52", n))
	}

	seen := make(map[string]int)
	for i, name := range v.hand.Hand.Cards {
		c, err := card.Parse(name)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("cards[%d]: %v", i, err))
			continue
		}

		if first, ok := seen[c.Name]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("cards[%d]: duplicate %s (first at cards[%d])", i, c.Name, first))
			continue
		}
		seen[c.Name] = i

		if name != c.Name {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("cards[%d]: %q is not canonical, use %q", i, name, c.Name))
		}
	}
}
