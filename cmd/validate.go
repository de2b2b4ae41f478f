package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/playdeck/internal/config"
	"github.com/arcanaland/playdeck/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a playdeck config file",
	Long: `Validate checks that a config file can be parsed, that its suit and rank
orders name real suits and ranks without duplicates, and that the hand size and
display form are usable. Without a path the default config file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigFilePath()
		if len(args) == 1 {
			configPath = args[0]
		}

		// Check if path exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", configPath)
		}

		// Create validator and run validation
		v := validator.NewValidator(configPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		r := newRenderer(cmd, nil)
		out := cmd.OutOrStdout()

		// Display validation results
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Config '%s' is valid.\n", configPath)
		} else {
			fmt.Fprintf(out, "❌ Config '%s' has %d validation errors:\n", configPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, r.Failure(err))
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, r.Warning(warn))
			}
		}

		return nil
	},
}
