package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/dealer/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a hand file",
	Long: `Validate checks that a hand file lists only standard playing cards,
each at most once. A hand file is TOML:

  [hand]
  name = "flop"
  cards = ["Ace of Spades", "10 of Hearts", "King of Clubs"]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handPath := args[0]

		// Check if path exists
		if _, err := os.Stat(handPath); os.IsNotExist(err) {
			return fmt.Errorf("hand file not found: %s", handPath)
		}

		if _, err := loadConfig(cmd); err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		// Create validator and run validation
		v := validator.NewValidator(handPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Hand '%s' is valid (%d cards).\n", handPath, len(v.Cards()))
			printCards(out, v.Cards())
		} else {
			fmt.Fprintf(out, "❌ Hand '%s' has %d validation errors:\n", handPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
