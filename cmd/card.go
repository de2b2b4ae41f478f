package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/playdeck/internal/card"
	"github.com/arcanaland/playdeck/internal/config"
)

var cardCmd = &cobra.Command{
	Use:   "card [card]",
	Short: "Display every representation of a card",
	Long: `Card shows a card face next to each of its display forms.
A card may be written as its symbol, as a suit letter and rank, or by name.

Examples:
  playdeck card ♠10
  playdeck card hQ
  playdeck card "ace of spades"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		newRenderer(cmd, cfg).Card(c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)
}
