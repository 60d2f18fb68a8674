package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultDateFormat renders dates like "Monday, January 2, 2006".
const DefaultDateFormat = "Monday, January 2, 2006"

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

// glamour standard style names accepted for ui.markdown_style.
var validMarkdownStyles = []string{"ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

// reservedKeys are the fixed dashboard bindings a configured key may not shadow.
var reservedKeys = []string{
	"q", "ctrl+c", "r", "?", "x", "L", "shift+l",
	"h", "left", "l", "right", "k", "up", "j", "down",
	"e", "d", "space", "enter", "esc",
}

type Config struct {
	Board   BoardConfig   `toml:"board"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
	Keys    KeyConfig     `toml:"keys"`
}

type BoardConfig struct {
	States     []StateConfig `toml:"states"`
	DefaultDay string        `toml:"default_day"`
}

type StateConfig struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Position int    `toml:"position"`
}

type UIConfig struct {
	ConfirmDelete bool   `toml:"confirm_delete"`
	DateFormat    string `toml:"date_format"`
	MouseDrag     bool   `toml:"mouse_drag"`
	MarkdownStyle string `toml:"markdown_style"`
}

type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type KeyConfig struct {
	AddCard     string `toml:"add_card"`
	ActivityLog string `toml:"activity_log"`
	CopyCard    string `toml:"copy_card"`
}

func defaultStates() []StateConfig {
	return []StateConfig{
		{ID: "todo", Name: "To Do", Position: 0},
		{ID: "progress", Name: "In Progress", Position: 1},
		{ID: "done", Name: "Done", Position: 2},
	}
}

func Default() Config {
	return Config{
		Board: BoardConfig{
			States: defaultStates(),
		},
		UI: UIConfig{
			ConfirmDelete: true,
			DateFormat:    DefaultDateFormat,
			MouseDrag:     true,
			MarkdownStyle: "dark",
		},
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled: true,
				Dir:     ".taskboard/log",
			},
		},
		Keys: KeyConfig{
			AddCard:     "n",
			ActivityLog: "g",
			CopyCard:    "y",
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	// A file that lists states replaces the default set instead of extending it.
	defaultStates := cfg.Board.States
	cfg.Board.States = nil
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	if len(cfg.Board.States) == 0 {
		cfg.Board.States = defaultStates
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Board.States) == 0 {
		return errors.New("board.states must include at least one state")
	}
	seenStateID := map[string]struct{}{}
	for idx, state := range c.Board.States {
		id := strings.TrimSpace(strings.ToLower(state.ID))
		if id == "" {
			return fmt.Errorf("board.states[%d].id is required", idx)
		}
		if strings.TrimSpace(state.Name) == "" {
			return fmt.Errorf("board.states[%d].name is required", idx)
		}
		if state.Position < 0 {
			return fmt.Errorf("board.states[%d].position must be >= 0", idx)
		}
		if _, ok := seenStateID[id]; ok {
			return fmt.Errorf("board.states[%d].id is duplicated: %s", idx, id)
		}
		seenStateID[id] = struct{}{}
	}

	if strings.TrimSpace(c.UI.DateFormat) == "" {
		return errors.New("ui.date_format is required")
	}

	if style := strings.TrimSpace(c.UI.MarkdownStyle); style != "" && !slices.Contains(validMarkdownStyles, style) {
		return fmt.Errorf("invalid ui.markdown_style: %q", c.UI.MarkdownStyle)
	}

	level := strings.TrimSpace(strings.ToLower(c.Logging.Level))
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Logging.DevFile.Enabled && strings.TrimSpace(c.Logging.DevFile.Dir) == "" {
		return errors.New("logging.dev_file.dir is required when dev_file is enabled")
	}

	keys := map[string]string{
		"keys.add_card":     c.Keys.AddCard,
		"keys.activity_log": c.Keys.ActivityLog,
		"keys.copy_card":    c.Keys.CopyCard,
	}
	seenKey := map[string]string{}
	for _, name := range []string{"keys.add_card", "keys.activity_log", "keys.copy_card"} {
		key := normalizeKey(keys[name])
		if key == "" {
			continue
		}
		if slices.Contains(reservedKeys, key) {
			return fmt.Errorf("%s uses reserved dashboard key %q", name, keys[name])
		}
		if other, ok := seenKey[key]; ok {
			return fmt.Errorf("%s duplicates %s: %q", name, other, key)
		}
		seenKey[key] = name
	}

	return nil
}

// normalizeKey folds a configured key into the form the dashboard matches on.
func normalizeKey(raw string) string {
	key := strings.TrimSpace(raw)
	switch {
	case key == "":
		return ""
	case strings.EqualFold(key, "space"):
		return "space"
	case len([]rune(key)) == 1:
		return key
	default:
		return strings.ToLower(key)
	}
}

// StateIDs returns the configured column ids in order.
func (c Config) StateIDs() []string {
	states := slices.Clone(c.Board.States)
	slices.SortStableFunc(states, func(a, b StateConfig) int {
		return a.Position - b.Position
	})
	out := make([]string, 0, len(states))
	for _, state := range states {
		out = append(out, strings.TrimSpace(strings.ToLower(state.ID)))
	}
	return out
}
