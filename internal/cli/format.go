package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/danieljhkim/paintbox/internal/session"
)

var (
	// Color functions - fatih/color disables itself when output is not a TTY
	headerColor = color.New(color.FgBlue, color.Bold)
	labelColor  = color.New(color.FgWhite, color.Bold)
	valueColor  = color.New(color.FgHiBlack)
	errorColor  = color.New(color.FgRed, color.Bold)
)

// PrintSection prints a section header.
func PrintSection(title string) {
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintLabelValue prints a label-value pair.
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Printf("  %s: ", label)
	_, _ = valueColor.Println(value)
}

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// outputJSON writes v as indented JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printGrid dumps the composed cell colors, one row per line, hex per
// cell. Row y=0 prints first.
func printGrid(s *session.Session) {
	g := s.Grid()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				fmt.Print(" ")
			}
			fmt.Print(s.ColorAt(x, y).Hex())
		}
		fmt.Println()
	}
}

// gridColors collects the composed colors row-major for JSON output.
func gridColors(s *session.Session) [][]string {
	g := s.Grid()
	rows := make([][]string, g.Height())
	for y := 0; y < g.Height(); y++ {
		rows[y] = make([]string, g.Width())
		for x := 0; x < g.Width(); x++ {
			rows[y][x] = s.ColorAt(x, y).Hex()
		}
	}
	return rows
}
