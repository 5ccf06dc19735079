// Package tui implements the swatch terminal user interface.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/swatch/internal/editor"
	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

// Config configures the TUI program.
type Config struct {
	Session *editor.Session

	// TickInterval is how often pending edits are checked. Default: 1 second.
	TickInterval time.Duration
}

// Run launches the swatch TUI program.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type model struct {
	session      *editor.Session
	roles        []palette.Role
	focus        int
	input        textinput.Model
	keys         KeyMap
	help         help.Model
	styles       styles.Styles
	tickInterval time.Duration
	width        int
	height       int
	status       string
	logger       zerolog.Logger
}

const (
	minWidth            = 80
	minHeight           = 20
	defaultTickInterval = time.Second
)

func newModel(cfg Config) (model, error) {
	if cfg.Session == nil {
		return model{}, errors.New("editor session is required")
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "rgb or hex"
	input.CharLimit = 32
	input.Width = styles.CellWidth - 2
	input.Focus()

	m := model{
		session:      cfg.Session,
		roles:        palette.Roles(),
		input:        input,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		tickInterval: cfg.TickInterval,
		logger:       logging.Component("tui"),
	}
	m.refresh()
	return m, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tickInterval), textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.apply(m.session.Tick(time.Time(msg)))
		return m, tickCmd(m.tickInterval)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-len(palette.Variants()))
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(len(palette.Variants()))
		return m, nil
	case key.Matches(msg, m.keys.PrevCell):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextCell):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.apply(m.session.Submit())
		return m, nil
	case key.Matches(msg, m.keys.NextTheme):
		m.selectTheme(m.session.Catalog().Next(m.session.SelectedBaseThemeID()).ID)
		return m, nil
	case key.Matches(msg, m.keys.PrevTheme):
		m.selectTheme(m.session.Catalog().Prev(m.session.SelectedBaseThemeID()).ID)
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.apply(m.session.ResetCustom())
		m.syncInput()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		if _, err := m.session.RoleEdited(m.focused(), value); err != nil {
			m.logger.Warn().Err(err).Msg("edit ignored")
		}
		m.updateStatus()
	}
	return m, cmd
}

func (m *model) selectTheme(id string) {
	outcome, err := m.session.SelectBaseTheme(id)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.apply(outcome)
	m.syncInput()
}

// apply reacts to the outcome of a session event.
func (m *model) apply(outcome editor.Outcome) {
	if outcome == editor.PaletteChanged {
		m.refresh()
		return
	}
	m.updateStatus()
}

func (m *model) refresh() {
	m.styles = styles.BuildStyles(m.session.EffectivePalette())
	m.help.Styles.ShortKey = m.styles.Accent
	m.help.Styles.FullKey = m.styles.Accent
	m.keys.Reset.SetEnabled(m.session.HasCustomPalette())
	m.syncInput()
	m.updateStatus()
}

func (m *model) moveFocus(delta int) {
	n := len(m.roles)
	m.focus = ((m.focus+delta)%n + n) % n
	m.syncInput()
}

func (m *model) syncInput() {
	m.input.SetValue(m.session.EffectiveDisplayText(m.focused()))
	m.input.CursorEnd()
}

func (m *model) updateStatus() {
	if err := m.session.LastError(); err != nil {
		m.status = err.Error()
		return
	}
	if pending, ok := m.session.Pending(); ok {
		m.status = fmt.Sprintf("editing %s", pending.Role)
		return
	}
	m.status = ""
}

func (m model) focused() palette.Role {
	return m.roles[m.focus]
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := []string{m.headerLine(), ""}
	lines = append(lines, m.gridLines()...)
	lines = append(lines, "", m.statusLine(), "", m.help.View(m.keys))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) headerLine() string {
	theme := m.session.SelectedBaseTheme()
	title := m.styles.Title.Render(fmt.Sprintf("swatch · %s", theme.Name))
	if m.session.HasCustomPalette() {
		title += " " + m.styles.Accent.Render("(custom)")
	}
	catalog := m.session.Catalog()
	position := m.styles.Muted.Render(fmt.Sprintf("theme %d/%d", catalog.Index(theme.ID)+1, catalog.Len()))
	return title + "  " + position
}

// gridLines renders one row per usage and one cell per variant.
func (m model) gridLines() []string {
	header := []string{m.styles.Label.Render("")}
	for _, v := range palette.Variants() {
		header = append(header, m.styles.Cell.Render(m.styles.Text.Render(v.Label())))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for _, u := range palette.Usages() {
		row := []string{m.styles.Label.Render(m.styles.Text.Render(u.Label()))}
		for _, v := range palette.Variants() {
			row = append(row, m.cellView(palette.Role{Usage: u, Variant: v}))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, row...))
	}
	return lines
}

func (m model) cellView(role palette.Role) string {
	focused := role == m.focused()
	style := m.styles.Swatch(role, focused)
	if focused {
		return style.Render(m.input.View())
	}
	return style.Render(m.session.EffectiveDisplayText(role))
}

func (m model) statusLine() string {
	if m.session.LastError() != nil {
		return m.styles.Error.Render(m.status)
	}
	if m.status != "" {
		return m.styles.Muted.Render(m.status)
	}
	return m.styles.Muted.Render(fmt.Sprintf("%s: %s", m.focused(), palette.DisplayText(m.session.EffectivePalette(), m.focused())))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Error.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press esc to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
