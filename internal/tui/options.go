package tui

import (
	"strings"
	"time"
)

type Option func(*Model)

// WithConfirmDelete toggles the delete confirmation dialog.
func WithConfirmDelete(enabled bool) Option {
	return func(m *Model) {
		m.confirmDelete = enabled
	}
}

// WithDateFormat sets the layout used for the dashboard date.
func WithDateFormat(layout string) Option {
	return func(m *Model) {
		if layout = strings.TrimSpace(layout); layout != "" {
			m.dateFormat = layout
		}
	}
}

// WithDefaultDay pre-fills the day field of the add form.
func WithDefaultDay(day string) Option {
	return func(m *Model) {
		m.defaultDay = strings.TrimSpace(day)
	}
}

// WithMouseDrag toggles mouse drag and drop.
func WithMouseDrag(enabled bool) Option {
	return func(m *Model) {
		m.mouseDrag = enabled
	}
}

// WithKeyConfig applies configured key overrides.
func WithKeyConfig(cfg KeyConfig) Option {
	return func(m *Model) {
		m.keys = newKeyMap(cfg)
	}
}

// WithMarkdownStyle selects the glamour style for the help guide.
func WithMarkdownStyle(style string) Option {
	return func(m *Model) {
		m.markdown = newMarkdownRenderer(style)
	}
}

// WithClock overrides the time source for the date header.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.copyToClipboard = write
		}
	}
}

// WithUsername signs in as username on start, skipping the login screen.
func WithUsername(username string) Option {
	return func(m *Model) {
		if strings.TrimSpace(username) == "" {
			return
		}
		if err := m.session.Login(username, "-"); err == nil {
			m.session.DismissFlash()
		}
	}
}
