package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/config"
)

// resetFlags restores every flag to its default so commands can be re-run
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	colorize.NoColor = true
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

func outputLines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestDealUnshuffled(t *testing.T) {
	out, err := executeCommand(t, "deal", "--no-shuffle", "3")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"♦ King of Diamonds",
		"♦ Queen of Diamonds",
		"♦ Jack of Diamonds",
		"49 cards left in the deck",
	}, outputLines(out))
}

func TestDealUsesConfiguredHandSize(t *testing.T) {
	out, err := executeCommand(t, "deal")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, config.DefaultHandSize+1)
	assert.Equal(t, "47 cards left in the deck", lines[len(lines)-1])
}

func TestDealWithSeedIsRepeatable(t *testing.T) {
	first, err := executeCommand(t, "deal", "--seed", "42", "10")
	require.NoError(t, err)

	second, err := executeCommand(t, "deal", "--seed", "42", "10")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDealWholeDeck(t *testing.T) {
	out, err := executeCommand(t, "deal", "52")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 53)
	assert.Equal(t, "0 cards left in the deck", lines[52])
}

func TestDealPastEndFails(t *testing.T) {
	out, err := executeCommand(t, "deal", "53")
	assert.ErrorContains(t, err, "deck exhausted")
	assert.Len(t, outputLines(out), 52)
}

func TestDealHugeCountFails(t *testing.T) {
	out, err := executeCommand(t, "deal", "4611686018427387904")
	assert.ErrorContains(t, err, "deck exhausted")
	assert.Len(t, outputLines(out), 52)
}

func TestDealRejectsBadCount(t *testing.T) {
	_, err := executeCommand(t, "deal", "many")
	assert.ErrorContains(t, err, "invalid card count")

	_, err = executeCommand(t, "deal", "-3")
	assert.Error(t, err)
}

func TestDeckList(t *testing.T) {
	defer func(orig func() int) { terminalWidth = orig }(terminalWidth)
	terminalWidth = func() int { return 80 }

	out, err := executeCommand(t, "deck", "ls")
	require.NoError(t, err)

	// 80 columns fit three 21-wide cells per row
	lines := outputLines(out)
	require.Len(t, lines, 18)
	assert.True(t, strings.HasPrefix(lines[0], "♦ King of Diamonds"))
	assert.Equal(t, "♥ Ace of Hearts", lines[17])
	assert.Equal(t, 52, strings.Count(out, " of "))
}

func TestDeckListShuffled(t *testing.T) {
	out, err := executeCommand(t, "deck", "ls", "--shuffle")
	require.NoError(t, err)
	assert.Equal(t, 52, strings.Count(out, " of "))
}

func TestPrintColumnsNarrowTerminal(t *testing.T) {
	var out bytes.Buffer
	colorize.NoColor = true
	printColumns(&out, newDeck(0).Cards()[:3], 10)

	assert.Equal(t, "♦ King of Diamonds\n♦ Queen of Diamonds\n♦ Jack of Diamonds\n", out.String())
}

func TestDeckInitAndSetHandSize(t *testing.T) {
	out, err := executeCommand(t, "deck", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("dealer", "config.toml"))

	_, err = os.Stat(config.GetConfigFilePath())
	require.NoError(t, err)

	out, err = executeCommand(t, "deck", "set-hand-size", "13")
	require.NoError(t, err)
	assert.Contains(t, out, "Default hand size set to: 13")

	_, err = executeCommand(t, "deck", "set-hand-size", "99")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, err := executeCommand(t, "show", "queen", "of", "hearts")
	require.NoError(t, err)

	assert.Contains(t, out, "Card:  Queen of Hearts")
	assert.Contains(t, out, "Suit:  Hearts · ♥")
	assert.Contains(t, out, "Color: Red")
	assert.Contains(t, out, "Order: 41 of 52")
	assert.Contains(t, out, "│Q        │")
}

func TestShowUnknownCard(t *testing.T) {
	_, err := executeCommand(t, "show", "Joker of Stars")
	assert.ErrorContains(t, err, "invalid rank")
}

func TestCardArtTen(t *testing.T) {
	c, err := card.Parse("10 of Spades")
	require.NoError(t, err)

	art := cardArt(c)
	require.Len(t, art, 7)
	assert.Equal(t, "│10       │", art[1])
	assert.Equal(t, "│       10│", art[5])
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[hand]
name = "flop"
cards = ["Ace of Spades", "10 of Hearts"]
`), 0644))

	out, err := executeCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (2 cards)")
	assert.Contains(t, out, "♥ 10 of Hearts")
}

func TestValidateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[hand]
name = "bad"
cards = ["Ace of Spades", "Ace of Spades"]
`), 0644))

	out, err := executeCommand(t, "validate", path)
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, "1 validation errors")
	assert.Contains(t, out, "duplicate Ace of Spades")
}
