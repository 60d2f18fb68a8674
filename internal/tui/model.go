package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/hylla/taskboard/internal/app"
	"github.com/hylla/taskboard/internal/domain"
)

// Service represents the board operations the model drives.
type Service interface {
	EnsureBoard(context.Context) ([]domain.Column, error)
	Board(context.Context) (domain.Board, error)
	AddCard(context.Context, app.AddCardInput) (domain.Card, error)
	RenameCard(context.Context, string, string, string) (domain.Card, error)
	DeleteCard(context.Context, string, string) error
	MoveCard(context.Context, app.MoveCardInput) (domain.Card, error)
	ListChangeEvents(context.Context, int) ([]domain.ChangeEvent, error)
}

// inputMode represents a selectable mode.
type inputMode int

// modeNone and related constants define package defaults.
const (
	modeNone inputMode = iota
	modeAddCard
	modeRenameCard
	modeConfirmDelete
	modeAlert
	modeActivityLog
)

// add-form field indexes.
const (
	addFieldTitle = iota
	addFieldDay
)

// activity log limits used by modal rendering.
const (
	activityLogMaxItems   = 200
	activityLogViewWindow = 14
)

// deleteConfirmPrompt is shown before a card is removed.
const deleteConfirmPrompt = "Are you sure you want to delete this task?"

// activityEntry is one rendered activity-log row.
type activityEntry struct {
	At      time.Time
	Summary string
	Target  string
	Actor   string
}

// Model is the bubbletea model for the whole session: auth screens and board.
type Model struct {
	svc Service

	ready  bool
	width  int
	height int
	err    error

	status string

	help       help.Model
	keys       keyMap
	loginKeys  authKeyMap
	signupKeys authKeyMap

	session app.Session

	confirmDelete   bool
	dateFormat      string
	defaultDay      string
	mouseDrag       bool
	now             func() time.Time
	copyToClipboard func(string) error
	markdown        *markdownRenderer

	board        domain.Board
	boardLoaded  bool
	staleBoard   bool
	selectedLane int
	selectedRow  int

	drag      domain.DragSession
	mouseHeld bool

	mode inputMode

	loginInputs  []textinput.Model
	loginFocus   int
	signupInputs []textinput.Model
	signupFocus  int
	formInputs   []textinput.Model
	formFocus    int
	renameInput  textinput.Model

	alert         string
	pendingDelete string
	confirmChoice int
	focusCardID   string

	activityLog []activityEntry
}

// loadedMsg carries message data through update handling.
type loadedMsg struct {
	board domain.Board
	err   error
}

// actionMsg carries message data through update handling.
type actionMsg struct {
	err         error
	status      string
	reload      bool
	focusCardID string
}

// activityLogLoadedMsg carries activity entries for the overlay.
type activityLogLoadedMsg struct {
	entries []activityEntry
	err     error
}

// NewModel constructs a new value for this package.
func NewModel(svc Service, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false
	m := Model{
		svc:             svc,
		status:          "loading...",
		help:            h,
		keys:            newKeyMap(KeyConfig{}),
		loginKeys:       newAuthKeyMap("sign in", "create account"),
		signupKeys:      newAuthKeyMap("sign up", "back to login"),
		session:         *app.NewSession(),
		confirmDelete:   true,
		dateFormat:      "Monday, January 2, 2006",
		mouseDrag:       true,
		now:             time.Now,
		copyToClipboard: clipboard.WriteAll,
		markdown:        newMarkdownRenderer(defaultMarkdownStyle),
		loginInputs:     newLoginInputs(),
		signupInputs:    newSignupInputs(),
		renameInput:     newModalInput("title: ", "task name", "", 120),
	}
	m.formInputs = newAddCardInputs("")
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	m.formInputs = newAddCardInputs(m.defaultDay)
	m.focusLoginField(0)
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return m.loadData
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if m.drag.Active() {
			// The in-flight layout owns the board until the drop commits.
			m.staleBoard = true
			return m, nil
		}
		m.board = msg.board
		m.boardLoaded = true
		m.staleBoard = false
		if m.focusCardID != "" {
			m.focusCard(m.focusCardID)
			m.focusCardID = ""
		}
		m.clampSelection()
		if m.status == "" || m.status == "loading..." {
			m.status = "ready"
		}
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if msg.status != "" {
			m.status = msg.status
		}
		if msg.focusCardID != "" {
			m.focusCardID = msg.focusCardID
		}
		if msg.reload {
			return m, m.loadData
		}
		return m, nil

	case activityLogLoadedMsg:
		if msg.err != nil {
			if m.mode == modeActivityLog {
				m.status = "activity log unavailable: " + msg.err.Error()
			}
			return m, nil
		}
		m.activityLog = append([]activityEntry(nil), msg.entries...)
		if m.mode == modeActivityLog {
			m.status = "activity log"
		}
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeAlert {
			return m.handleInputModeKey(msg)
		}
		if m.err != nil {
			return m.handleErrorKey(msg)
		}
		switch m.session.View() {
		case app.ViewLogin:
			return m.handleLoginKey(msg)
		case app.ViewSignup:
			return m.handleSignupKey(msg)
		}
		if m.drag.Active() {
			return m.handleDragKey(msg)
		}
		if m.mode != modeNone {
			return m.handleInputModeKey(msg)
		}
		return m.handleNormalModeKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	default:
		return m.updateFocusedInput(msg)
	}
}

// View handles view.
func (m Model) View() tea.View {
	var content string
	switch {
	case m.err != nil:
		content = "error: " + m.err.Error() + "\n\npress r to retry • q quit\n"
	case !m.ready:
		content = "loading..."
	case m.session.View() == app.ViewLogin:
		content = m.renderLogin()
	case m.session.View() == app.ViewSignup:
		content = m.renderSignup()
	default:
		content = m.renderDashboard()
	}
	v := tea.NewView(content)
	v.MouseMode = tea.MouseModeCellMotion
	v.AltScreen = true
	return v
}

// loadData loads required data for the current operation.
func (m Model) loadData() tea.Msg {
	ctx := context.Background()
	if _, err := m.svc.EnsureBoard(ctx); err != nil {
		return loadedMsg{err: err}
	}
	board, err := m.svc.Board(ctx)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{board: board}
}

// loadActivityLog loads activity entries for modal rendering.
func (m Model) loadActivityLog() tea.Msg {
	events, err := m.svc.ListChangeEvents(context.Background(), activityLogMaxItems)
	if err != nil {
		return activityLogLoadedMsg{err: err}
	}
	return activityLogLoadedMsg{entries: mapChangeEventsToActivityEntries(events)}
}

// openActivityLog enters activity-log mode and triggers the fetch.
func (m *Model) openActivityLog() tea.Cmd {
	m.mode = modeActivityLog
	m.status = "activity log"
	return m.loadActivityLog
}

// mapChangeEventsToActivityEntries converts newest-first events into chronological rows.
func mapChangeEventsToActivityEntries(events []domain.ChangeEvent) []activityEntry {
	entries := make([]activityEntry, 0, len(events))
	for idx := len(events) - 1; idx >= 0; idx-- {
		entries = append(entries, mapChangeEventToActivityEntry(events[idx]))
	}
	if len(entries) > activityLogMaxItems {
		entries = append([]activityEntry(nil), entries[len(entries)-activityLogMaxItems:]...)
	}
	return entries
}

// mapChangeEventToActivityEntry derives a compact activity row from one event.
func mapChangeEventToActivityEntry(event domain.ChangeEvent) activityEntry {
	summary := "edit task"
	switch event.Operation {
	case domain.ChangeOperationCreate:
		summary = "add task"
	case domain.ChangeOperationMove:
		summary = "move task"
		if from, to := event.Metadata["from_column_id"], event.Metadata["to_column_id"]; from != "" && to != "" && from != to {
			summary = "move task " + from + " → " + to
		}
	case domain.ChangeOperationDelete:
		summary = "delete task"
	}
	target := strings.TrimSpace(event.Metadata["title"])
	if target == "" {
		target = "-"
	}
	return activityEntry{
		At:      event.OccurredAt.UTC(),
		Summary: summary,
		Target:  target,
		Actor:   event.Actor,
	}
}

// handleErrorKey handles the error screen, which only offers retry and quit.
func (m Model) handleErrorKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.reload):
		m.err = nil
		m.status = "reloading..."
		return m, m.loadData
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

// handleNormalModeKey handles dashboard keys outside any modal.
func (m Model) handleNormalModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll {
		if key.Matches(msg, m.keys.toggleHelp) || msg.String() == "esc" {
			m.help.ShowAll = false
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.reload):
		m.status = "reloading..."
		return m, m.loadData
	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = true
		return m, nil
	case key.Matches(msg, m.keys.dismissFlash):
		m.session.DismissFlash()
		return m, nil
	case key.Matches(msg, m.keys.logout):
		return m.logout()
	case key.Matches(msg, m.keys.moveLeft):
		m.selectLane(m.selectedLane - 1)
		return m, nil
	case key.Matches(msg, m.keys.moveRight):
		m.selectLane(m.selectedLane + 1)
		return m, nil
	case key.Matches(msg, m.keys.moveUp):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil
	case key.Matches(msg, m.keys.moveDown):
		if m.selectedRow < len(m.currentLaneCards())-1 {
			m.selectedRow++
		}
		return m, nil
	case key.Matches(msg, m.keys.addCard):
		return m, m.startAddCardForm()
	case key.Matches(msg, m.keys.renameCard):
		return m, m.startRenameCard()
	case key.Matches(msg, m.keys.deleteCard):
		return m.requestDelete()
	case key.Matches(msg, m.keys.grabCard):
		return m.beginKeyboardDrag()
	case key.Matches(msg, m.keys.copyCard):
		return m, m.copySelectedCard()
	case key.Matches(msg, m.keys.activityLog):
		return m, m.openActivityLog()
	}
	return m, nil
}

// handleInputModeKey routes keys while a modal is open.
func (m Model) handleInputModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAlert:
		switch msg.String() {
		case "enter", "esc", "space", " ":
			m.alert = ""
			m.mode = modeNone
		}
		return m, nil

	case modeActivityLog:
		switch msg.String() {
		case "esc", "q":
			m.mode = modeNone
			m.status = "ready"
		default:
			if key.Matches(msg, m.keys.activityLog) {
				m.mode = modeNone
				m.status = "ready"
			}
		}
		return m, nil

	case modeConfirmDelete:
		switch msg.String() {
		case "h", "left", "l", "right", "tab":
			m.confirmChoice = 1 - m.confirmChoice
			return m, nil
		case "y":
			return m.applyDelete()
		case "n", "esc":
			m.pendingDelete = ""
			m.mode = modeNone
			m.status = "delete canceled"
			return m, nil
		case "enter":
			if m.confirmChoice == 0 {
				return m.applyDelete()
			}
			m.pendingDelete = ""
			m.mode = modeNone
			m.status = "delete canceled"
			return m, nil
		}
		return m, nil

	case modeAddCard:
		switch msg.String() {
		case "esc":
			m.mode = modeNone
			m.status = "add canceled"
			return m, nil
		case "tab", "down":
			return m, m.focusAddField(m.formFocus + 1)
		case "shift+tab", "up":
			return m, m.focusAddField(m.formFocus - 1)
		case "enter":
			return m.submitAddCard()
		}
		var cmd tea.Cmd
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
		return m, cmd

	case modeRenameCard:
		switch msg.String() {
		case "esc":
			m.mode = modeNone
			m.status = "edit canceled"
			return m, nil
		case "enter":
			return m.submitRename()
		}
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateFocusedInput forwards non-key messages such as cursor blinks.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.session.View() == app.ViewLogin:
		m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	case m.session.View() == app.ViewSignup:
		m.signupInputs[m.signupFocus], cmd = m.signupInputs[m.signupFocus].Update(msg)
	case m.mode == modeAddCard:
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	case m.mode == modeRenameCard:
		m.renameInput, cmd = m.renameInput.Update(msg)
	}
	return m, cmd
}

// startAddCardForm opens the add-task form.
func (m *Model) startAddCardForm() tea.Cmd {
	m.mode = modeAddCard
	m.status = "new task"
	m.formInputs[addFieldTitle].Reset()
	if strings.TrimSpace(m.formInputs[addFieldDay].Value()) == "" {
		m.formInputs[addFieldDay].SetValue(m.defaultDay)
	}
	return m.focusAddField(addFieldTitle)
}

// focusAddField focuses one add-form field, wrapping around.
func (m *Model) focusAddField(idx int) tea.Cmd {
	idx = wrapIndex(idx, len(m.formInputs))
	m.formFocus = idx
	var cmd tea.Cmd
	for i := range m.formInputs {
		if i == idx {
			cmd = m.formInputs[i].Focus()
			continue
		}
		m.formInputs[i].Blur()
	}
	return cmd
}

// submitAddCard adds the card. A blank title leaves the form open.
func (m Model) submitAddCard() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.formInputs[addFieldTitle].Value())
	if title == "" {
		return m, nil
	}
	in := app.AddCardInput{
		Title: title,
		Day:   strings.TrimSpace(m.formInputs[addFieldDay].Value()),
		Owner: m.session.Username(),
	}
	m.mode = modeNone
	m.formInputs[addFieldTitle].Reset()
	m.status = "adding task..."
	return m, func() tea.Msg {
		card, err := m.svc.AddCard(context.Background(), in)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "task added", reload: true, focusCardID: card.ID}
	}
}

// startRenameCard opens the edit prompt pre-filled with the current title.
func (m *Model) startRenameCard() tea.Cmd {
	card, ok := m.selectedCard()
	if !ok {
		m.status = "no task selected"
		return nil
	}
	m.mode = modeRenameCard
	m.status = "edit task"
	m.renameInput.SetValue(card.Title)
	m.renameInput.CursorEnd()
	return m.renameInput.Focus()
}

// submitRename renames the selected card. Blank input changes nothing.
func (m Model) submitRename() (tea.Model, tea.Cmd) {
	m.mode = modeNone
	m.renameInput.Blur()
	title := strings.TrimSpace(m.renameInput.Value())
	card, ok := m.selectedCard()
	if !ok || title == "" || title == card.Title {
		m.status = "ready"
		return m, nil
	}
	actor := m.session.Username()
	return m, func() tea.Msg {
		if _, err := m.svc.RenameCard(context.Background(), card.ID, title, actor); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "task updated", reload: true, focusCardID: card.ID}
	}
}

// requestDelete asks for confirmation, or deletes directly when disabled.
func (m Model) requestDelete() (tea.Model, tea.Cmd) {
	card, ok := m.selectedCard()
	if !ok {
		m.status = "no task selected"
		return m, nil
	}
	m.pendingDelete = card.ID
	if !m.confirmDelete {
		return m.applyDelete()
	}
	m.mode = modeConfirmDelete
	m.confirmChoice = 0
	m.status = "confirm delete"
	return m, nil
}

// applyDelete removes the pending card from the board and the store.
func (m Model) applyDelete() (tea.Model, tea.Cmd) {
	cardID := m.pendingDelete
	m.pendingDelete = ""
	m.mode = modeNone
	if cardID == "" {
		return m, nil
	}
	m.board.Remove(cardID)
	m.clampSelection()
	actor := m.session.Username()
	return m, func() tea.Msg {
		if err := m.svc.DeleteCard(context.Background(), cardID, actor); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "task deleted", reload: true}
	}
}

// copySelectedCard writes the selected card to the system clipboard.
func (m *Model) copySelectedCard() tea.Cmd {
	card, ok := m.selectedCard()
	if !ok {
		m.status = "no task selected"
		return nil
	}
	text := cardClipboardText(card)
	write := m.copyToClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return actionMsg{status: "copy failed: " + err.Error()}
		}
		return actionMsg{status: "copied task"}
	}
}

// cardClipboardText formats a card as one line.
func cardClipboardText(card domain.Card) string {
	parts := []string{card.Title}
	if card.Day != "" {
		parts = append(parts, card.Day)
	}
	if card.Owner != "" {
		parts = append(parts, "@"+card.Owner)
	}
	return strings.Join(parts, " · ")
}

// logout ends the session and returns to the login view.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if m.drag.Active() {
		_ = m.drag.Cancel(&m.board)
	}
	m.mouseHeld = false
	m.mode = modeNone
	m.help.ShowAll = false
	m.session.Logout()
	m.resetLoginInputs()
	m.status = "logged out"
	return m, m.focusLoginField(0)
}

// commitMove persists the current slot of a dropped card.
func (m Model) commitMove(cardID string) tea.Cmd {
	li, ci, ok := m.board.Locate(cardID)
	if !ok {
		return nil
	}
	in := app.MoveCardInput{
		CardID:   cardID,
		ColumnID: m.board.Lanes[li].Column.ID,
		Index:    ci,
		Actor:    m.session.Username(),
	}
	return func() tea.Msg {
		if _, err := m.svc.MoveCard(context.Background(), in); err != nil {
			if errors.Is(err, app.ErrNotFound) {
				return actionMsg{status: "task no longer exists", reload: true}
			}
			return actionMsg{err: err}
		}
		return actionMsg{status: "task moved", reload: true, focusCardID: in.CardID}
	}
}

// currentLaneCards returns the cards of the selected lane.
func (m Model) currentLaneCards() []domain.Card {
	if m.selectedLane < 0 || m.selectedLane >= len(m.board.Lanes) {
		return nil
	}
	return m.board.Lanes[m.selectedLane].Cards
}

// selectedCard returns the selected card.
func (m Model) selectedCard() (domain.Card, bool) {
	cards := m.currentLaneCards()
	if m.selectedRow < 0 || m.selectedRow >= len(cards) {
		return domain.Card{}, false
	}
	return cards[m.selectedRow], true
}

// selectLane moves the lane cursor and clamps the row.
func (m *Model) selectLane(idx int) {
	if len(m.board.Lanes) == 0 {
		return
	}
	m.selectedLane = clamp(idx, 0, len(m.board.Lanes)-1)
	m.clampSelection()
}

// focusCard moves the cursor onto cardID.
func (m *Model) focusCard(cardID string) {
	if li, ci, ok := m.board.Locate(cardID); ok {
		m.selectedLane = li
		m.selectedRow = ci
	}
}

// clampSelection clamps selections.
func (m *Model) clampSelection() {
	if len(m.board.Lanes) == 0 {
		m.selectedLane = 0
		m.selectedRow = 0
		return
	}
	m.selectedLane = clamp(m.selectedLane, 0, len(m.board.Lanes)-1)
	m.selectedRow = clamp(m.selectedRow, 0, max(0, len(m.currentLaneCards())-1))
}

// newModalInput constructs modal input.
func newModalInput(prompt, placeholder, value string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = limit
	if value != "" {
		in.SetValue(value)
	}
	return in
}

// newAddCardInputs builds the title and day fields.
func newAddCardInputs(defaultDay string) []textinput.Model {
	return []textinput.Model{
		newModalInput("task: ", "what needs doing", "", 120),
		newModalInput("day:  ", "e.g. Monday", defaultDay, 40),
	}
}

// resizeInputs fits text inputs to the window.
func (m *Model) resizeInputs() {
	width := clamp(m.width-24, 20, 48)
	for i := range m.loginInputs {
		m.loginInputs[i].SetWidth(width)
	}
	for i := range m.signupInputs {
		m.signupInputs[i].SetWidth(width)
	}
	for i := range m.formInputs {
		m.formInputs[i].SetWidth(width)
	}
	m.renameInput.SetWidth(width)
}

// wrapIndex wraps idx into [0,total).
func wrapIndex(idx, total int) int {
	if total <= 0 {
		return 0
	}
	return ((idx % total) + total) % total
}

// clamp clamps the requested operation.
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// fitLines fits lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// overlayOnContent centers overlay on top of base.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}

	base = fitLines(base, height)
	canvas := lipgloss.NewCanvas(width, height)
	baseLayer := lipgloss.NewLayer(base).X(0).Y(0).Z(0)
	centeredOverlay := lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlay,
	)
	overlayLayer := lipgloss.NewLayer(centeredOverlay).X(0).Y(0).Z(10)

	canvas.Compose(baseLayer)
	canvas.Compose(overlayLayer)
	return canvas.Render()
}

// truncate truncates the requested operation.
func truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= maxRunes {
		return s
	}
	if maxRunes <= 1 {
		return string(rs[:maxRunes])
	}
	return string(rs[:maxRunes-1]) + "…"
}

// plural formats n with a singular or plural noun.
func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
