package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/playdeck/internal/card"
	"github.com/arcanaland/playdeck/internal/config"
	"github.com/arcanaland/playdeck/internal/deck"
	"github.com/arcanaland/playdeck/internal/hand"
)

var dealCmd = &cobra.Command{
	Use:   "deal [count]",
	Short: "Deal a hand from a fresh deck",
	Long: `Deal draws count cards without replacement from a fresh, full deck and shows
the hand. Without a count the hand_size from the config is used.

Examples:
  playdeck deal
  playdeck deal 13 --sort
  playdeck deal 5 --form full_name
  playdeck deal 5 --seed 42 --pick 1 --pick 1
  playdeck deal 7 --rand 2 --show-deck`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		count := cfg.HandSize
		if len(args) == 1 {
			count, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
		}

		formFlag, _ := cmd.Flags().GetString("form")
		if formFlag == "" {
			formFlag = cfg.Form
		}
		form, err := card.ParseForm(formFlag)
		if err != nil {
			return err
		}

		var opts []deck.Option
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opts = append(opts, deck.WithSeed(seed))
		}

		d := deck.New(opts...)
		h, err := hand.New(d, count)
		if err != nil {
			return err
		}

		if sortHand, _ := cmd.Flags().GetBool("sort"); sortHand {
			ranks, suits, err := cfg.Orders()
			if err != nil {
				return err
			}
			if err := h.SortBy(ranks, suits); err != nil {
				return fmt.Errorf("sorting hand: %w", err)
			}
		}

		r := newRenderer(cmd, cfg)
		out := cmd.OutOrStdout()

		position, _ := cmd.Flags().GetInt("position")
		if position != 0 {
			symbol, err := h.Show(position, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", r.Label(fmt.Sprintf("Card %d:", position)), r.Value(symbol))
			return nil
		}

		picks, _ := cmd.Flags().GetIntSlice("pick")
		for _, p := range picks {
			c, err := h.Pick(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", r.Label("Picked:"), r.Value(c.FullName))
		}

		random, _ := cmd.Flags().GetInt("rand")
		for i := 0; i < random; i++ {
			c, err := h.Rand()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", r.Label("Drawn at random:"), r.Value(c.FullName))
		}

		fmt.Fprintf(out, "%s %s\n", r.Label("Hand:"), r.Value(strconv.Itoa(h.Count())+" cards"))
		if err := r.Cards(h.Cards(), form); err != nil {
			return err
		}

		if showDeck, _ := cmd.Flags().GetBool("show-deck"); showDeck {
			fmt.Fprintln(out)
			r.Deck(d)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().BoolP("sort", "s", false, "Sort the hand by suit, then rank, using the configured orders")
	dealCmd.Flags().StringP("form", "f", "", "Display form: "+formNames())
	dealCmd.Flags().Uint64("seed", 0, "Seed the deal for a reproducible hand")
	dealCmd.Flags().IntP("position", "p", 0, "Show only the card at this 1-based position")
	dealCmd.Flags().IntSlice("pick", nil, "Remove the card at this 1-based position before showing the hand (repeatable)")
	dealCmd.Flags().Int("rand", 0, "Remove this many random cards before showing the hand")
	dealCmd.Flags().Bool("show-deck", false, "Also show the cards left in the deck")
}

func formNames() string {
	names := make([]string, 0, len(card.Forms))
	for _, f := range card.Forms {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
