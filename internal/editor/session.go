// Package editor holds the theme-override state machine: the selected base
// theme, the derived custom palette and the single pending cell edit.
package editor

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/themes"
)

// DefaultDebounce is how long typing must pause before a tick commits.
const DefaultDebounce = 750 * time.Millisecond

// Session errors.
var (
	ErrNoThemes     = errors.New("theme catalog is empty")
	ErrUnknownTheme = errors.New("unknown base theme")
	ErrInvalidRole  = errors.New("invalid role")
)

// Outcome reports what an event did to the session.
type Outcome int

const (
	// NoChange means the effective palette and pending edit are untouched.
	NoChange Outcome = iota
	// AwaitInput means an edit is pending and more input or time is needed.
	AwaitInput
	// PaletteChanged means the effective palette is different.
	PaletteChanged
)

func (o Outcome) String() string {
	switch o {
	case NoChange:
		return "no_change"
	case AwaitInput:
		return "await_input"
	case PaletteChanged:
		return "palette_changed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// State is the coarse edit state.
type State int

const (
	Idle State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "idle"
}

// PendingEdit is the one uncommitted cell edit.
type PendingEdit struct {
	ID       string
	Role     palette.Role
	Text     string
	EditedAt time.Time
}

// Clock returns the current time.
type Clock func() time.Time

// Option configures a Session.
type Option func(*Session)

// WithClock overrides time.Now.
func WithClock(clock Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session owns base theme selection, the optional custom palette and the
// optional pending edit. Events are handled one at a time to completion; a
// Session is not safe for concurrent use.
type Session struct {
	catalog  *themes.Catalog
	base     *themes.Theme
	custom   *palette.Extended
	pending  *PendingEdit
	lastErr  error
	debounce time.Duration
	clock    Clock
	logger   zerolog.Logger
}

// NewSession starts a session on the catalog's first theme.
func NewSession(catalog *themes.Catalog, opts ...Option) (*Session, error) {
	if catalog == nil || catalog.Default() == nil {
		return nil, ErrNoThemes
	}
	s := &Session{
		catalog:  catalog,
		base:     catalog.Default(),
		debounce: DefaultDebounce,
		clock:    time.Now,
		logger:   logging.Component("editor"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RoleEdited records raw text typed into role's cell, replacing any pending
// edit. The text is not validated until a commit is attempted.
func (s *Session) RoleEdited(role palette.Role, text string) (Outcome, error) {
	if !role.Valid() {
		return NoChange, fmt.Errorf("%w: %v", ErrInvalidRole, role)
	}
	if s.pending != nil && s.pending.Role != role {
		s.logger.Debug().
			Str("edit_id", s.pending.ID).
			Str("role", s.pending.Role.String()).
			Msg("pending edit superseded")
	}
	s.pending = &PendingEdit{
		ID:       uuid.NewString(),
		Role:     role,
		Text:     text,
		EditedAt: s.clock(),
	}
	s.lastErr = nil
	return AwaitInput, nil
}

// Tick commits the pending edit once it has been stable for the debounce
// interval.
func (s *Session) Tick(now time.Time) Outcome {
	if s.pending == nil {
		return NoChange
	}
	if now.Sub(s.pending.EditedAt) < s.debounce {
		return AwaitInput
	}
	return s.attemptCommit()
}

// Submit commits the pending edit immediately.
func (s *Session) Submit() Outcome {
	return s.attemptCommit()
}

func (s *Session) attemptCommit() Outcome {
	if s.pending == nil {
		return NoChange
	}
	edit := *s.pending

	c, err := color.Parse(edit.Text)
	if err != nil {
		// The pending text stays so it can be corrected in place.
		if errors.Is(err, color.ErrEmpty) {
			s.lastErr = nil
		} else {
			s.lastErr = err
		}
		s.logger.Debug().
			Err(err).
			Str("edit_id", edit.ID).
			Str("role", edit.Role.String()).
			Msg("pending edit rejected")
		return AwaitInput
	}

	next := palette.Overlay(s.EffectivePalette(), edit.Role, palette.NewPair(c))
	s.custom = &next
	s.pending = nil
	s.lastErr = nil

	s.logger.Debug().
		Str("edit_id", edit.ID).
		Str("role", edit.Role.String()).
		Str("color", c.String()).
		Str("base_theme", s.base.ID).
		Msg("edit committed")
	return PaletteChanged
}

// SelectBaseTheme switches the base theme, discarding the custom palette and
// any pending edit. Unknown ids leave the session unchanged.
func (s *Session) SelectBaseTheme(id string) (Outcome, error) {
	theme, err := s.catalog.Lookup(id)
	if err != nil {
		return NoChange, fmt.Errorf("%w: %v", ErrUnknownTheme, err)
	}

	before := s.EffectivePalette()
	s.base = theme
	s.custom = nil
	s.pending = nil
	s.lastErr = nil

	s.logger.Debug().Str("base_theme", theme.ID).Msg("base theme selected")
	if s.EffectivePalette() != before {
		return PaletteChanged, nil
	}
	return NoChange, nil
}

// ResetCustom drops the custom palette and any pending edit.
func (s *Session) ResetCustom() Outcome {
	hadCustom := s.custom != nil
	hadPending := s.pending != nil
	s.custom = nil
	s.pending = nil
	s.lastErr = nil

	if hadCustom {
		s.logger.Debug().Str("base_theme", s.base.ID).Msg("custom palette reset")
		return PaletteChanged
	}
	if hadPending {
		s.logger.Debug().Msg("pending edit discarded")
	}
	return NoChange
}

// EffectivePalette returns the custom palette if present, else the base palette.
func (s *Session) EffectivePalette() palette.Extended {
	if s.custom != nil {
		return *s.custom
	}
	return s.base.Palette
}

// EffectiveDisplayText returns the raw pending text for the pending role and
// the formatted effective color for every other role.
func (s *Session) EffectiveDisplayText(role palette.Role) string {
	if s.pending != nil && s.pending.Role == role {
		return s.pending.Text
	}
	return palette.DisplayText(s.EffectivePalette(), role)
}

// EffectiveDisplayColor returns the color rendered for role.
func (s *Session) EffectiveDisplayColor(role palette.Role) color.Color {
	return palette.DisplayColor(s.EffectivePalette(), role)
}

// HasCustomPalette reports whether any override has been committed.
func (s *Session) HasCustomPalette() bool {
	return s.custom != nil
}

// SelectedBaseThemeID returns the id of the selected base theme.
func (s *Session) SelectedBaseThemeID() string {
	return s.base.ID
}

// SelectedBaseTheme returns the selected base theme.
func (s *Session) SelectedBaseTheme() *themes.Theme {
	return s.base
}

// Catalog returns the catalog the session selects from.
func (s *Session) Catalog() *themes.Catalog {
	return s.catalog
}

// Pending returns the pending edit, if any.
func (s *Session) Pending() (PendingEdit, bool) {
	if s.pending == nil {
		return PendingEdit{}, false
	}
	return *s.pending, true
}

// State reports whether an edit is pending.
func (s *Session) State() State {
	if s.pending != nil {
		return Editing
	}
	return Idle
}

// LastError returns the most recent visible parse failure of the pending
// edit. Empty input is not reported.
func (s *Session) LastError() error {
	return s.lastErr
}

// Debounce returns the configured debounce interval.
func (s *Session) Debounce() time.Duration {
	return s.debounce
}
