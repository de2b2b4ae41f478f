package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/playdeck/internal/config"
	"github.com/arcanaland/playdeck/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the 52-card deck",
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cards of a deck, one line per suit",
	Long: `Show prints every card still in the deck in suit order, clubs to spades,
ace to king. With --dealt, that many random cards are dealt away first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var opts []deck.Option
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opts = append(opts, deck.WithSeed(seed))
		}
		d := deck.New(opts...)

		dealt, _ := cmd.Flags().GetInt("dealt")
		if _, err := d.Deal(dealt); err != nil {
			return err
		}

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprint(cmd.OutOrStdout(), d.Show())
			return nil
		}

		newRenderer(cmd, cfg).Deck(d)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckShowCmd)

	deckShowCmd.Flags().Int("dealt", 0, "Deal this many random cards away before showing")
	deckShowCmd.Flags().Uint64("seed", 0, "Seed the deal")
	deckShowCmd.Flags().Bool("raw", false, "Print plain symbols without labels or colour")
}
