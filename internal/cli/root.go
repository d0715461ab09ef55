// Package cli implements the paintbox command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	jsonOutput bool
	verbose    bool
)

// rootCmd is the root command for paintbox.
var rootCmd = &cobra.Command{
	Use:     "paintbox",
	Version: "dev",
	Short:   "Layered painting canvas engine",
	Long: `paintbox runs a layered painting canvas: every cell accumulates named
color transforms and composes them with a configurable strategy, with
full undo/redo and action replay.

Scripts drive the canvas; there is no interactive surface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// newLogger builds the session logger honoring --verbose.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every action")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stylesCmd)
}
