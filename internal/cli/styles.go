package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/paintbox/internal/store"
)

// stylesCmd lists the available store styles.
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available store styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		type styleInfo struct {
			Name    string `json:"name"`
			Summary string `json:"summary"`
		}
		styles := []styleInfo{
			{store.StyleExclusive.String(), "one layer per cell, invertible output"},
			{store.StyleAdditive.String(), "bounded FIFO of layers composed oldest first"},
			{store.StyleToggled.String(), "registered layer kinds toggled on/off, composed by index"},
		}

		if jsonOutput {
			return outputJSON(styles)
		}

		PrintSection("Store Styles")
		for _, s := range styles {
			PrintLabelValue(s.Name, s.Summary)
		}
		fmt.Println()
		return nil
	},
}
