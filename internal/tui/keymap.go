package tui

import (
	"strings"
	"unicode"

	"charm.land/bubbles/v2/key"
)

// KeyConfig overrides a few dashboard bindings.
type KeyConfig struct {
	AddCard     string
	ActivityLog string
	CopyCard    string
}

// keyMap holds the dashboard bindings.
type keyMap struct {
	quit         key.Binding
	reload       key.Binding
	toggleHelp   key.Binding
	moveLeft     key.Binding
	moveRight    key.Binding
	moveUp       key.Binding
	moveDown     key.Binding
	addCard      key.Binding
	renameCard   key.Binding
	deleteCard   key.Binding
	grabCard     key.Binding
	dropCard     key.Binding
	cancelDrag   key.Binding
	copyCard     key.Binding
	activityLog  key.Binding
	dismissFlash key.Binding
	logout       key.Binding
}

// newKeyMap constructs key map.
func newKeyMap(cfg KeyConfig) keyMap {
	k := keyMap{
		quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		toggleHelp:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		moveLeft:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "column left")),
		moveRight:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "column right")),
		moveUp:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "card up")),
		moveDown:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "card down")),
		renameCard:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
		deleteCard:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		grabCard:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick up task")),
		dropCard:     key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space/enter", "drop task")),
		cancelDrag:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		dismissFlash: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss notice")),
		logout:       key.NewBinding(key.WithKeys("L", "shift+l"), key.WithHelp("L", "log out")),
	}
	configureBinding(&k.addCard, cfg.AddCard, "n", "new task")
	configureBinding(&k.activityLog, cfg.ActivityLog, "g", "activity log")
	configureBinding(&k.copyCard, cfg.CopyCard, "y", "copy task")
	return k
}

// parseBindingKeys expands one configured key into the matchers bubbletea may
// report for it, plus the label shown in help.
func parseBindingKeys(raw, fallback string) ([]string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = strings.TrimSpace(fallback)
	}
	switch {
	case strings.EqualFold(raw, "space") || raw == "":
		return []string{" ", "space"}, "space"
	case len([]rune(raw)) == 1:
		r := []rune(raw)[0]
		if unicode.IsUpper(r) {
			return []string{raw, "shift+" + string(unicode.ToLower(r))}, raw
		}
		return []string{raw}, raw
	default:
		return []string{strings.ToLower(raw)}, raw
	}
}

// configureBinding rebinds b to raw, or fallback when raw is blank.
func configureBinding(b *key.Binding, raw, fallback, desc string) {
	keys, help := parseBindingKeys(raw, fallback)
	*b = key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.addCard, k.renameCard, k.deleteCard, k.grabCard, k.activityLog, k.toggleHelp, k.logout, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.addCard, k.renameCard, k.deleteCard, k.copyCard, k.activityLog, k.dismissFlash},
		{k.moveLeft, k.moveRight, k.moveUp, k.moveDown},
		{k.grabCard, k.dropCard, k.cancelDrag},
		{k.toggleHelp, k.reload, k.logout, k.quit},
	}
}

// dragKeyMap is shown while a card is in flight.
type dragKeyMap struct {
	keyMap
}

// ShortHelp handles short help.
func (k dragKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.moveUp, k.moveDown, k.moveLeft, k.moveRight, k.dropCard, k.cancelDrag}
}

// authKeyMap holds the login and signup form bindings.
type authKeyMap struct {
	submit     key.Binding
	nextField  key.Binding
	prevField  key.Binding
	switchView key.Binding
	dismiss    key.Binding
	quit       key.Binding
}

// newAuthKeyMap builds bindings for one auth screen.
func newAuthKeyMap(submitHelp, switchHelp string) authKeyMap {
	return authKeyMap{
		submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", submitHelp)),
		nextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		prevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		switchView: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", switchHelp)),
		dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp handles short help.
func (k authKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.nextField, k.switchView, k.quit}
}

// FullHelp handles full help.
func (k authKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.submit, k.nextField, k.prevField, k.switchView, k.dismiss, k.quit}}
}
