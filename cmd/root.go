package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/playdeck/internal/config"
	"github.com/arcanaland/playdeck/internal/render"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "playdeck",
	Short: "Deal, show and sort hands from a standard 52-card deck",
	Long: `Playdeck models a standard 52-card deck. It deals hands without replacement,
shows cards as symbols, names or Unicode playing card glyphs, and sorts hands
by suit and rank.`,
	SilenceUsage: true,
}

var noColor bool

func init() {
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newRenderer returns a renderer for the command output honouring --no-color
// and the color setting of the config
func newRenderer(cmd *cobra.Command, cfg *config.Config) *render.Renderer {
	var opts []render.Option
	if noColor || (cfg != nil && !cfg.Color) {
		opts = append(opts, render.WithColor(false))
	}
	return render.New(cmd.OutOrStdout(), opts...)
}
