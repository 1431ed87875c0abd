package cmd

import (
	"fmt"
	"strconv"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dealCmd = &cobra.Command{
	Use:   "deal [count]",
	Short: "Shuffle a fresh deck and deal cards from the top",
	Long: `Deal builds a fresh 52-card deck, shuffles it, and deals cards from the top.

If no count is given, the hand_size from your config is used. Asking for more
than 52 cards deals the whole deck and then fails.

Examples:
  dealer deal
  dealer deal 13
  dealer deal --seed 42 5
  dealer deal --no-shuffle 52`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		count := cfg.HandSize
		if len(args) == 1 {
			count, err = strconv.Atoi(args[0])
			if err != nil || count < 0 {
				return fmt.Errorf("invalid card count: %s", args[0])
			}
		}

		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetInt64("seed")
		}

		d := newDeck(seed)
		if noShuffle, _ := cmd.Flags().GetBool("no-shuffle"); !noShuffle {
			d.Shuffle()
		}

		hand, err := d.DealN(count)
		out := cmd.OutOrStdout()
		printCards(out, hand)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, colorize.CyanString("%d cards left in the deck", d.Len()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().Int64("seed", 0, "Seed the shuffle for a repeatable deal (0 picks a random order)")
	dealCmd.Flags().Bool("no-shuffle", false, "Deal from the deck in its initial order")
}
