package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/themes"
)

func withOutputFlags(t *testing.T, json, jsonl bool) {
	t.Helper()
	prevJSON, prevJSONL := jsonOutput, jsonlOutput
	jsonOutput, jsonlOutput = json, jsonl
	t.Cleanup(func() {
		jsonOutput, jsonlOutput = prevJSON, prevJSONL
	})
}

func testCatalog(t *testing.T) *themes.Catalog {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	catalog, err := themes.LoadCatalog("", nil)
	require.NoError(t, err)
	return catalog
}

func TestRunParseTable(t *testing.T) {
	withOutputFlags(t, false, false)

	var out bytes.Buffer
	err := runParse(&out, []string{"255,0,0", "#ffffff"})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "INPUT")
	assert.Contains(t, text, "rgb(255, 0, 0)")
	assert.Contains(t, text, "#ff0000")
	assert.Contains(t, text, "#0a0a0a")
}

func TestRunParseReportsFailures(t *testing.T) {
	withOutputFlags(t, true, false)

	var out bytes.Buffer
	err := runParse(&out, []string{"1,2", "00ff00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 inputs failed")

	var results []ParseResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0].Error)
	assert.Equal(t, "rgb(0, 255, 0)", results[1].Color)
	assert.Equal(t, "#0a0a0a", results[1].Text)
}

func TestWriteThemeList(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("table", func(t *testing.T) {
		withOutputFlags(t, false, false)
		var out bytes.Buffer
		require.NoError(t, writeThemeList(&out, catalog))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Len(t, lines, catalog.Len()+1)
		assert.True(t, strings.HasPrefix(lines[1], "light"))
	})

	t.Run("jsonl", func(t *testing.T) {
		withOutputFlags(t, false, true)
		var out bytes.Buffer
		require.NoError(t, writeThemeList(&out, catalog))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, catalog.Len())

		var first ThemeSummary
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		assert.Equal(t, ThemeSummary{ID: "light", Name: "Light", Source: "builtin"}, first)
	})
}

func TestWriteThemePalette(t *testing.T) {
	catalog := testCatalog(t)
	theme, err := catalog.Lookup("dracula")
	require.NoError(t, err)

	withOutputFlags(t, true, false)
	var out bytes.Buffer
	role := palette.Role{Usage: palette.Background, Variant: palette.Base}
	require.NoError(t, writeThemePalette(&out, theme, []palette.Role{role}))

	var colors []RoleColor
	require.NoError(t, json.Unmarshal(out.Bytes(), &colors))
	require.Len(t, colors, 1)
	assert.Equal(t, "background.base", colors[0].Role)
	assert.Equal(t, "#282a36", colors[0].Hex)
	assert.Equal(t, "rgb(40, 42, 54)", colors[0].Color)
}

func TestNewSession(t *testing.T) {
	catalog := testCatalog(t)
	cfg := config.Default()
	cfg.TUI.Theme = "nord"
	cfg.TUI.Debounce = 300 * time.Millisecond

	session, err := newSession(cfg, catalog, "")
	require.NoError(t, err)
	assert.Equal(t, "nord", session.SelectedBaseThemeID())
	assert.Equal(t, 300*time.Millisecond, session.Debounce())

	session, err = newSession(cfg, catalog, "gruvbox-dark")
	require.NoError(t, err)
	assert.Equal(t, "gruvbox-dark", session.SelectedBaseThemeID())

	_, err = newSession(cfg, catalog, "missing")
	assert.Error(t, err)
}

func TestThemeOptions(t *testing.T) {
	catalog := testCatalog(t)
	opts := themeOptions(catalog)
	require.Len(t, opts, catalog.Len())
	assert.Equal(t, "light", opts[0].Value)
	assert.Equal(t, "Light", opts[0].Key)
}

func TestRunTUIRequiresTTY(t *testing.T) {
	prev := nonInteractive
	nonInteractive = true
	defer func() { nonInteractive = prev }()

	err := runTUI()
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	assert.Contains(t, err.Error(), "Hint:")
}

func TestIsNonInteractiveEnv(t *testing.T) {
	t.Setenv("SWATCH_NON_INTERACTIVE", "1")
	assert.True(t, IsNonInteractive())
	assert.False(t, IsInteractive())
}

func TestInitAppLoadsConfig(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "swatch.log")
	path := filepath.Join(dir, "config.yaml")
	content := "tui:\n  theme: moonfly\nlogging:\n  level: debug\n  file: " + logFile + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	prevFile, prevLevel, prevCfg := cfgFile, logLevel, appConfig
	cfgFile, logLevel = path, "warn"
	defer func() {
		cfgFile, logLevel, appConfig = prevFile, prevLevel, prevCfg
	}()

	require.NoError(t, initApp())
	require.NotNil(t, closeLogging)
	defer func() {
		_ = closeLogging()
		closeLogging = nil
	}()

	cfg := GetConfig()
	assert.Equal(t, "moonfly", cfg.TUI.Theme)
	assert.Equal(t, "warn", cfg.Logging.Level)
	_, err := os.Stat(logFile)
	assert.NoError(t, err)
}
