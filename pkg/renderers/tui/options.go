package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Theme captures the prefixes and lipgloss styles applied to messages the
// session prints between prompts.
type Theme struct {
	ErrorPrefix   string
	SuccessPrefix string
	Error         lipgloss.Style
	Success       lipgloss.Style
}

// DefaultTheme colours failures and confirmations.
func DefaultTheme() Theme {
	return Theme{
		ErrorPrefix:   "✗ ",
		SuccessPrefix: "✓ ",
		Error:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f7768e")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
	}
}

// PlainTheme keeps the prefixes and drops all styling.
func PlainTheme() Theme {
	return Theme{
		ErrorPrefix:   "✗ ",
		SuccessPrefix: "✓ ",
		Error:         lipgloss.NewStyle(),
		Success:       lipgloss.NewStyle(),
	}
}

// IntroRenderer turns the catalog's markdown intro into terminal output.
type IntroRenderer func(markdown string) (string, error)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme applies message prefixes and styles.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithIntroRenderer replaces the glamour markdown renderer.
func WithIntroRenderer(fn IntroRenderer) Option {
	return func(s *Session) {
		if fn != nil {
			s.intro = fn
		}
	}
}

// WithWordWrap sets the wrap width of the default intro renderer.
func WithWordWrap(width int) Option {
	return func(s *Session) {
		if width > 0 {
			s.wordWrap = width
		}
	}
}

// WithMaxRounds bounds how many times failed fields are offered again after a
// blocked submit. Zero disables the retry offer.
func WithMaxRounds(rounds int) Option {
	return func(s *Session) {
		if rounds >= 0 {
			s.maxRounds = rounds
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}
