package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/color"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <color>...",
	Short: "Parse color text the way the editor does",
	Long: `Parse color text with the editor's rules and print the normalized color
and the text color that would be drawn on it.

Accepted forms: "255,0,0", "rgb(255, 0, 0)", "#ff0000" and "ff0000".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd.OutOrStdout(), args)
	},
}

// ParseResult is the JSON form of one parsed input.
type ParseResult struct {
	Input      string  `json:"input"`
	Color      string  `json:"color,omitempty"`
	Hex        string  `json:"hex,omitempty"`
	Brightness float64 `json:"brightness,omitempty"`
	Text       string  `json:"text,omitempty"`
	Error      string  `json:"error,omitempty"`
}

func parseInputs(inputs []string) ([]ParseResult, int) {
	results := make([]ParseResult, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		c, err := color.Parse(input)
		if err != nil {
			failed++
			results = append(results, ParseResult{Input: input, Error: err.Error()})
			continue
		}
		results = append(results, ParseResult{
			Input:      input,
			Color:      c.String(),
			Hex:        c.Hex(),
			Brightness: color.Brightness(c),
			Text:       color.ContrastFor(c).Hex(),
		})
	}
	return results, failed
}

func runParse(out io.Writer, inputs []string) error {
	results, failed := parseInputs(inputs)

	if IsJSONOutput() || IsJSONLOutput() {
		if err := WriteOutput(out, results); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			if r.Error != "" {
				rows = append(rows, []string{r.Input, "-", "-", "-", r.Error})
				continue
			}
			rows = append(rows, []string{r.Input, r.Color, r.Hex, fmt.Sprintf("%.1f", r.Brightness), r.Text})
		}
		if err := writeTable(out, []string{"INPUT", "COLOR", "HEX", "BRIGHTNESS", "TEXT"}, rows); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", failed, len(inputs))
	}
	return nil
}
