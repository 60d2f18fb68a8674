package tui

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/hylla/taskboard/internal/app"
)

// login form field indexes.
const (
	loginFieldUsername = iota
	loginFieldPassword
)

// signup form field indexes.
const (
	signupFieldUsername = iota
	signupFieldEmail
	signupFieldPassword
	signupFieldConfirm
)

// passwordMismatchAlert is the blocking alert raised by signup.
const passwordMismatchAlert = "Passwords don't match!"

// newLoginInputs builds the username and password fields.
func newLoginInputs() []textinput.Model {
	password := newModalInput("password: ", "", "", 64)
	password.EchoMode = textinput.EchoPassword
	return []textinput.Model{
		newModalInput("username: ", "", "", 64),
		password,
	}
}

// newSignupInputs builds the signup fields.
func newSignupInputs() []textinput.Model {
	password := newModalInput("password: ", "", "", 64)
	password.EchoMode = textinput.EchoPassword
	confirm := newModalInput("confirm:  ", "", "", 64)
	confirm.EchoMode = textinput.EchoPassword
	return []textinput.Model{
		newModalInput("username: ", "", "", 64),
		newModalInput("email:    ", "", "", 120),
		password,
		confirm,
	}
}

// focusLoginField focuses one login field, wrapping around.
func (m *Model) focusLoginField(idx int) tea.Cmd {
	idx = wrapIndex(idx, len(m.loginInputs))
	m.loginFocus = idx
	var cmd tea.Cmd
	for i := range m.loginInputs {
		if i == idx {
			cmd = m.loginInputs[i].Focus()
			continue
		}
		m.loginInputs[i].Blur()
	}
	return cmd
}

// focusSignupField focuses one signup field, wrapping around.
func (m *Model) focusSignupField(idx int) tea.Cmd {
	idx = wrapIndex(idx, len(m.signupInputs))
	m.signupFocus = idx
	var cmd tea.Cmd
	for i := range m.signupInputs {
		if i == idx {
			cmd = m.signupInputs[i].Focus()
			continue
		}
		m.signupInputs[i].Blur()
	}
	return cmd
}

// resetLoginInputs clears the login form.
func (m *Model) resetLoginInputs() {
	for i := range m.loginInputs {
		m.loginInputs[i].Reset()
	}
}

// resetSignupInputs clears the signup form.
func (m *Model) resetSignupInputs() {
	for i := range m.signupInputs {
		m.signupInputs[i].Reset()
	}
}

// handleLoginKey handles keys on the login screen.
func (m Model) handleLoginKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.loginKeys.submit):
		return m.submitLogin()
	case key.Matches(msg, m.loginKeys.nextField):
		return m, m.focusLoginField(m.loginFocus + 1)
	case key.Matches(msg, m.loginKeys.prevField):
		return m, m.focusLoginField(m.loginFocus - 1)
	case key.Matches(msg, m.loginKeys.switchView):
		m.session.ShowSignup()
		m.resetSignupInputs()
		return m, m.focusSignupField(signupFieldUsername)
	case key.Matches(msg, m.loginKeys.dismiss):
		m.session.DismissFlash()
		return m, nil
	}
	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

// submitLogin signs in and opens the dashboard.
func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	username := m.loginInputs[loginFieldUsername].Value()
	password := m.loginInputs[loginFieldPassword].Value()
	if err := m.session.Login(username, password); err != nil {
		return m, nil
	}
	for i := range m.loginInputs {
		m.loginInputs[i].Blur()
	}
	m.resetLoginInputs()
	m.status = "ready"
	return m, m.loadData
}

// handleSignupKey handles keys on the signup screen.
func (m Model) handleSignupKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.signupKeys.submit):
		return m.submitSignup()
	case key.Matches(msg, m.signupKeys.nextField):
		return m, m.focusSignupField(m.signupFocus + 1)
	case key.Matches(msg, m.signupKeys.prevField):
		return m, m.focusSignupField(m.signupFocus - 1)
	case key.Matches(msg, m.signupKeys.switchView), key.Matches(msg, m.signupKeys.dismiss):
		m.session.ShowLogin()
		return m, m.focusLoginField(loginFieldUsername)
	}
	var cmd tea.Cmd
	m.signupInputs[m.signupFocus], cmd = m.signupInputs[m.signupFocus].Update(msg)
	return m, cmd
}

// submitSignup validates the form. A mismatch raises a blocking alert, missing
// fields are ignored, and success returns to a cleared login form.
func (m Model) submitSignup() (tea.Model, tea.Cmd) {
	err := m.session.Signup(app.SignupInput{
		Username:        m.signupInputs[signupFieldUsername].Value(),
		Email:           m.signupInputs[signupFieldEmail].Value(),
		Password:        m.signupInputs[signupFieldPassword].Value(),
		ConfirmPassword: m.signupInputs[signupFieldConfirm].Value(),
	})
	switch {
	case errors.Is(err, app.ErrPasswordMismatch):
		m.alert = passwordMismatchAlert
		m.mode = modeAlert
		return m, nil
	case err != nil:
		return m, nil
	}
	m.resetSignupInputs()
	m.resetLoginInputs()
	return m, m.focusLoginField(loginFieldUsername)
}

// renderLogin renders the login screen.
func (m Model) renderLogin() string {
	lines := []string{titleStyle.Render("Sign in"), ""}
	if flash, ok := m.session.Flash(); ok {
		lines = append(lines, renderFlash(flash), "")
	}
	for _, in := range m.loginInputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "", hintStyle.Render("no account? ctrl+n to sign up"))
	return m.renderAuthScreen(strings.Join(lines, "\n"), m.loginKeys)
}

// renderSignup renders the signup screen.
func (m Model) renderSignup() string {
	lines := []string{titleStyle.Render("Create account"), ""}
	for _, in := range m.signupInputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "", hintStyle.Render("have an account? ctrl+n to sign in"))
	return m.renderAuthScreen(strings.Join(lines, "\n"), m.signupKeys)
}

// renderAuthScreen centers a form card with its help line.
func (m Model) renderAuthScreen(form string, keys help.KeyMap) string {
	card := modalStyle.Render(form)
	m.help.SetWidth(max(0, m.width-2))
	body := lipgloss.JoinVertical(lipgloss.Center, card, "", m.help.View(keys))
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	page := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	if m.mode == modeAlert {
		return overlayOnContent(page, m.renderAlert(), m.width, m.height)
	}
	return page
}
