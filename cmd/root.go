package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/config"
	"github.com/arcanaland/dealer/internal/deck"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dealer",
	Short: "Shuffle and deal a standard 52-card deck",
	Long: `Dealer is a command-line tool for shuffling and dealing a standard
52-card playing-card deck, looking up cards by name, and checking hand files.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(validateCmd)

	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig loads the user config and applies its output settings
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || !cfg.Color {
		colorize.NoColor = true
	}

	return cfg, nil
}

// newDeck builds a deck, seeded when seed is non-zero
func newDeck(seed int64) *deck.Deck {
	if seed == 0 {
		return deck.New()
	}
	return deck.NewWithRand(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// cardColor returns the print color for a card's suit
func cardColor(c card.Card) *colorize.Color {
	if c.IsRed() {
		return colorize.New(colorize.FgHiRed)
	}
	return colorize.New(colorize.FgHiWhite)
}

// printCards writes one card per line, prefixed with its suit symbol
func printCards(w io.Writer, cards []card.Card) {
	for _, c := range cards {
		fmt.Fprintln(w, cardColor(c).Sprintf("%s %s", card.SuitSymbol(c.Suit), c.Name))
	}
}
