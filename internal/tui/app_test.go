package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/editor"
	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/themes"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T) (model, *editor.Session, *testClock) {
	t.Helper()
	catalog, err := themes.LoadCatalog("", nil)
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	session, err := editor.NewSession(catalog, editor.WithClock(clock.Now))
	require.NoError(t, err)

	m, err := newModel(Config{Session: session})
	require.NoError(t, err)
	return m, session, clock
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func typeText(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func clearInput(m model) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(m.input.Value()))
	for range m.input.Value() {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	return msgs
}

func TestNewModelRequiresSession(t *testing.T) {
	_, err := newModel(Config{})
	assert.Error(t, err)
}

func TestInputStartsWithFocusedRole(t *testing.T) {
	m, session, _ := newTestModel(t)

	first := palette.Roles()[0]
	assert.Equal(t, session.EffectiveDisplayText(first), m.input.Value())
	assert.Equal(t, defaultTickInterval, m.tickInterval)
}

func TestTypingThenSubmitCommits(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = send(t, m, clearInput(m)...)
	m = send(t, m, typeText("ff0000")...)

	pending, ok := session.Pending()
	require.True(t, ok)
	assert.Equal(t, "ff0000", pending.Text)
	assert.Equal(t, palette.Roles()[0], pending.Role)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, session.HasCustomPalette())
	assert.Equal(t, "rgb(255, 0, 0)", m.input.Value())
	assert.Equal(t, color.RGB255(255, 0, 0), session.EffectiveDisplayColor(palette.Roles()[0]))
	assert.True(t, m.keys.Reset.Enabled())
	assert.Contains(t, m.View(), "(custom)")
}

func TestTickCommitsAfterDebounce(t *testing.T) {
	m, session, clock := newTestModel(t)

	m = send(t, m, clearInput(m)...)
	m = send(t, m, typeText("00ff00")...)

	m = send(t, m, tickMsg(clock.now.Add(500*time.Millisecond)))
	assert.False(t, session.HasCustomPalette())

	m = send(t, m, tickMsg(clock.now.Add(1500*time.Millisecond)))
	assert.True(t, session.HasCustomPalette())
	assert.Equal(t, "rgb(0, 255, 0)", m.input.Value())
}

func TestInvalidTextShowsError(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = send(t, m, clearInput(m)...)
	m = send(t, m, typeText("1,2")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, session.HasCustomPalette())
	assert.Equal(t, "1,2", m.input.Value())
	assert.Contains(t, m.status, "expected three channels")
}

func TestFocusMovesAndKeepsPendingText(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = send(t, m, clearInput(m)...)
	m = send(t, m, typeText("abc")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	second := palette.Roles()[1]
	assert.Equal(t, second, m.focused())
	assert.Equal(t, session.EffectiveDisplayText(second), m.input.Value())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "abc", m.input.Value())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, palette.Role{Usage: palette.Secondary, Variant: palette.Base}, m.focused())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, palette.Role{Usage: palette.Danger, Variant: palette.Base}, m.focused())
}

func TestThemeSwitchDiscardsCustom(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = send(t, m, clearInput(m)...)
	m = send(t, m, typeText("#123456")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, session.HasCustomPalette())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, "dark", session.SelectedBaseThemeID())
	assert.False(t, session.HasCustomPalette())
	assert.False(t, m.keys.Reset.Enabled())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlP}, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, session.Catalog().List()[session.Catalog().Len()-1].ID, session.SelectedBaseThemeID())
	assert.Contains(t, m.View(), session.SelectedBaseTheme().Name)
}

func TestResetRestoresBase(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = send(t, m, clearInput(m)...)
	m = send(t, m, typeText("#123456")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.False(t, session.HasCustomPalette())
	assert.Equal(t, session.SelectedBaseTheme().Palette, session.EffectivePalette())
	assert.Equal(t, palette.DisplayText(session.EffectivePalette(), m.focused()), m.input.Value())
}

func TestSmallTerminal(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.True(t, strings.Contains(m.View(), "Terminal too small"))

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	for _, u := range palette.Usages() {
		assert.Contains(t, view, u.Label())
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
