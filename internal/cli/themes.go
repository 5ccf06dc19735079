package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/themes"
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

var showRole string

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesShowCmd.Flags().StringVar(&showRole, "role", "", "show a single role, e.g. primary.weak")
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Inspect base themes",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available base themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(GetConfig())
		if err != nil {
			return err
		}
		return writeThemeList(cmd.OutOrStdout(), catalog)
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the palette of a base theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(GetConfig())
		if err != nil {
			return err
		}
		theme, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}

		roles := palette.Roles()
		if showRole != "" {
			role, err := palette.ParseRole(showRole)
			if err != nil {
				return err
			}
			roles = []palette.Role{role}
		}
		return writeThemePalette(cmd.OutOrStdout(), theme, roles)
	},
}

// ThemeSummary is the JSON form of a catalog entry.
type ThemeSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// RoleColor is the JSON form of one palette slot.
type RoleColor struct {
	Role  string `json:"role"`
	Color string `json:"color"`
	Hex   string `json:"hex"`
	Text  string `json:"text"`
}

func writeThemeList(out io.Writer, catalog *themes.Catalog) error {
	list := catalog.List()
	if IsJSONOutput() || IsJSONLOutput() {
		summaries := make([]ThemeSummary, 0, len(list))
		for _, theme := range list {
			summaries = append(summaries, ThemeSummary{ID: theme.ID, Name: theme.Name, Source: theme.Source})
		}
		return WriteOutput(out, summaries)
	}

	rows := make([][]string, 0, len(list))
	for _, theme := range list {
		rows = append(rows, []string{theme.ID, theme.Name, theme.Source})
	}
	return writeTable(out, []string{"ID", "NAME", "SOURCE"}, rows)
}

func writeThemePalette(out io.Writer, theme *themes.Theme, roles []palette.Role) error {
	if IsJSONOutput() || IsJSONLOutput() {
		colors := make([]RoleColor, 0, len(roles))
		for _, role := range roles {
			pair := theme.Palette.Get(role)
			colors = append(colors, RoleColor{
				Role:  role.String(),
				Color: pair.Color.String(),
				Hex:   pair.Color.Hex(),
				Text:  pair.Text.Hex(),
			})
		}
		return WriteOutput(out, colors)
	}

	fmt.Fprintf(out, "%s (%s)\n\n", theme.Name, theme.ID)
	rows := make([][]string, 0, len(roles))
	for _, role := range roles {
		pair := theme.Palette.Get(role)
		swatch := lipgloss.NewStyle().
			Background(styles.Color(pair.Color)).
			Foreground(styles.Color(pair.Text)).
			Render(" Aa ")
		rows = append(rows, []string{role.String(), pair.Color.String(), pair.Color.Hex(), swatch})
	}
	return writeTable(out, []string{"ROLE", "COLOR", "HEX", "SAMPLE"}, rows)
}
