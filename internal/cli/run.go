package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/paintbox/internal/config"
	"github.com/danieljhkim/paintbox/internal/session"
)

var runConfigPath string

// runCmd executes a paint script and prints the resulting canvas.
var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a paint script against a fresh canvas",
	Long: `Run a paint script against a fresh canvas and print the composed cell
colors when the script finishes.

Script commands: draw X Y LAYER, erase X Y LAYER, special, undo, redo,
brush +|-, replay. Lines starting with '#' are comments.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if runConfigPath != "" {
			loaded, err := config.Load(runConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		sess, err := session.New(cfg, demoRegistry(), nil, logger)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()

		if err := sess.RunScript(f); err != nil {
			return fmt.Errorf("run script: %w", err)
		}

		if jsonOutput {
			return outputJSON(map[string]interface{}{
				"style":  sess.Grid().Style().String(),
				"width":  sess.Grid().Width(),
				"height": sess.Grid().Height(),
				"brush":  sess.Grid().BrushSize(),
				"cells":  gridColors(sess),
			})
		}

		PrintSection("Canvas")
		PrintLabelValue("Style", sess.Grid().Style().String())
		PrintLabelValue("Size", fmt.Sprintf("%dx%d", sess.Grid().Width(), sess.Grid().Height()))
		PrintLabelValue("Brush", fmt.Sprintf("%d", sess.Grid().BrushSize()))
		fmt.Println()
		printGrid(sess)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "Path to a TOML session config")
}
