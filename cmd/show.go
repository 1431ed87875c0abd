package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/dealer/internal/card"
)

var showCmd = &cobra.Command{
	Use:   "show [card name]",
	Short: "Display information about a specific card",
	Long: `Show displays a card face alongside its rank, suit, color and position
in a freshly built deck. Names are case-insensitive and accept short ranks.

Examples:
  dealer show Ace of Spades
  dealer show "queen of hearts"
  dealer show K of Diamonds`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(cmd); err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		c, err := card.Parse(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		displayCard(cmd.OutOrStdout(), c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// rankLabel is the corner index printed on a card face
func rankLabel(rank string) string {
	switch rank {
	case "Ace", "King", "Queen", "Jack":
		return rank[:1]
	default:
		return rank
	}
}

// cardArt draws a small card face
func cardArt(c card.Card) []string {
	label := rankLabel(c.Rank)
	pip := card.SuitSymbol(c.Suit)
	const inner = 9

	row := func(s string, right bool) string {
		pad := strings.Repeat(" ", inner-utf8.RuneCountInString(s))
		if right {
			return "│" + pad + s + "│"
		}
		return "│" + s + pad + "│"
	}

	return []string{
		"┌" + strings.Repeat("─", inner) + "┐",
		row(label, false),
		row(pip, false),
		row(strings.Repeat(" ", inner/2)+pip, false),
		row(pip, true),
		row(label, true),
		"└" + strings.Repeat("─", inner) + "┘",
	}
}

// deckPosition returns the 1-based position of c in a fresh deck
func deckPosition(c card.Card) int {
	for i, other := range card.Canonical() {
		if other.Name == c.Name {
			return i + 1
		}
	}
	return 0
}

// displayCard displays the card face with its details beside it
func displayCard(w io.Writer, c card.Card) {
	art := cardArt(c)
	artColor := cardColor(c)

	colorName := "Black"
	if c.IsRed() {
		colorName = "Red"
	}

	infoLines := []string{
		colorize.CyanString("Card:  ") + colorize.HiWhiteString("%s", c.Name),
		colorize.CyanString("Rank:  ") + colorize.HiWhiteString("%s", c.Rank),
		colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s · %s", c.Suit, card.SuitSymbol(c.Suit)),
		colorize.CyanString("Color: ") + colorize.HiWhiteString("%s", colorName),
		colorize.CyanString("Order: ") + colorize.HiWhiteString("%d of 52", deckPosition(c)),
	}

	spacing := 4
	fmt.Fprintln(w)
	for i := 0; i < max(len(art), len(infoLines)); i++ {
		fmt.Fprint(w, "  ")
		if i < len(art) {
			fmt.Fprint(w, artColor.Sprint(art[i]))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", utf8.RuneCountInString(art[0])))
		}
		fmt.Fprint(w, strings.Repeat(" ", spacing))
		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
