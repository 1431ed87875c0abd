package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/config"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the deck and manage dealer settings",
	Long:  `Commands for listing the deck and managing the dealer config file.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all 52 cards in deck order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		d := newDeck(cfg.Seed)
		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			d.Shuffle()
		}

		printColumns(cmd.OutOrStdout(), d.Cards(), terminalWidth())
		return nil
	},
}

// deckSetHandSizeCmd represents the deck set-hand-size command
var deckSetHandSizeCmd = &cobra.Command{
	Use:   "set-hand-size [count]",
	Short: "Set how many cards 'deal' hands out by default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid hand size: %s", args[0])
		}

		if err := config.SetHandSize(n); err != nil {
			return fmt.Errorf("error setting hand size: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default hand size set to: %d\n", n)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetHandSizeCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckListCmd.Flags().BoolP("shuffle", "s", false, "Shuffle before listing")
}

// terminalWidth returns the width of stdout, or 80 when it isn't a terminal
var terminalWidth = func() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// printColumns lays the cards out row by row in as many columns as fit in width
func printColumns(w io.Writer, cards []card.Card, width int) {
	labels := make([]string, len(cards))
	cellWidth := 0
	for i, c := range cards {
		labels[i] = fmt.Sprintf("%s %s", card.SuitSymbol(c.Suit), c.Name)
		if n := utf8.RuneCountInString(labels[i]); n > cellWidth {
			cellWidth = n
		}
	}
	cellWidth += 2

	columns := width / cellWidth
	if columns < 1 {
		columns = 1
	}

	var line strings.Builder
	for i, c := range cards {
		// Pad before coloring so escape codes don't count toward the width
		padded := labels[i]
		if (i+1)%columns != 0 && i != len(cards)-1 {
			padded += strings.Repeat(" ", cellWidth-utf8.RuneCountInString(labels[i]))
		}
		line.WriteString(cardColor(c).Sprint(padded))

		if (i+1)%columns == 0 || i == len(cards)-1 {
			fmt.Fprintln(w, line.String())
			line.Reset()
		}
	}
}
