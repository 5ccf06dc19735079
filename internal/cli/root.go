// Package cli implements the swatch command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	nonInteractive bool
	jsonOutput     bool
	jsonlOutput    bool

	appConfig     *config.Config
	closeLogging  func() error
	loadConfigFor = config.Load
)

var rootCmd = &cobra.Command{
	Use:           "swatch",
	Short:         "Preview and customize color themes",
	Long:          "swatch previews base color themes and lets you override individual palette roles interactively.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLogging != nil {
			err := closeLogging()
			closeLogging = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/swatch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt; fail instead")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initApp() error {
	cfg, err := loadConfigFor(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	cleanup, err := logging.Init(cfg.LoggingOptions())
	if err != nil {
		return err
	}
	appConfig = cfg
	closeLogging = cleanup

	log := logging.Component("cli")
	log.Debug().
		Str("config", cfgFile).
		Str("theme", cfg.TUI.Theme).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}
