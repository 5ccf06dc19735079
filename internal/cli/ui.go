package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/internal/editor"
	"github.com/opencode-ai/swatch/internal/themes"
	"github.com/opencode-ai/swatch/internal/tui"
)

var (
	uiTheme string
	uiPick  bool
)

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiTheme, "theme", "", "base theme id to start with")
	uiCmd.Flags().BoolVar(&uiPick, "pick", false, "choose the base theme from a list before starting")
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the theme editor",
	Long:  "Launch the swatch terminal editor for previewing and overriding theme colors.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the theme editor requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the themes and parse subcommands",
			NextStep: "swatch themes list",
		}
	}

	cfg := GetConfig()
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	themeID := uiTheme
	if uiPick {
		themeID, err = pickTheme(catalog, startTheme(cfg, uiTheme))
		if err != nil {
			return err
		}
	}

	session, err := newSession(cfg, catalog, themeID)
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Session:      session,
		TickInterval: cfg.TUI.TickInterval,
	})
}

func loadCatalog(cfg *config.Config) (*themes.Catalog, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	catalog, err := themes.LoadCatalog(wd, cfg.Themes.Dirs)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	return catalog, nil
}

// newSession starts an editor session on themeID, falling back to the
// configured theme and then the catalog default.
func newSession(cfg *config.Config, catalog *themes.Catalog, themeID string) (*editor.Session, error) {
	session, err := editor.NewSession(catalog, editor.WithDebounce(cfg.TUI.Debounce))
	if err != nil {
		return nil, err
	}

	id := startTheme(cfg, themeID)
	if id == "" {
		return session, nil
	}
	if _, err := session.SelectBaseTheme(id); err != nil {
		return nil, fmt.Errorf("select theme %q: %w", id, err)
	}
	return session, nil
}

func startTheme(cfg *config.Config, override string) string {
	if override != "" {
		return override
	}
	return cfg.TUI.Theme
}
