package app

import "strings"

// View identifies which screen the session is on.
type View string

// View values.
const (
	ViewLogin     View = "login"
	ViewSignup    View = "signup"
	ViewDashboard View = "dashboard"
)

// FlashKind styles a flash notice.
type FlashKind string

// FlashKind values.
const (
	FlashSuccess FlashKind = "success"
	FlashDanger  FlashKind = "danger"
)

// Flash messages shown after login attempts.
const (
	FlashLoginSuccess = "Logged in successfully"
	FlashLoginMissing = "Please fill in all fields"
)

// Flash is a dismissable one-line notice.
type Flash struct {
	Kind    FlashKind
	Message string
}

// Session is the demo sign-in state machine. Credentials are only checked for
// presence; any non-empty pair signs in.
type Session struct {
	view     View
	username string
	flash    Flash
}

// NewSession starts on the login view.
func NewSession() *Session {
	return &Session{view: ViewLogin}
}

// View returns the active view.
func (s *Session) View() View {
	return s.view
}

// Username returns the signed-in username, or "" before login.
func (s *Session) Username() string {
	return s.username
}

// Flash returns the visible flash notice.
func (s *Session) Flash() (Flash, bool) {
	return s.flash, s.flash.Message != ""
}

// DismissFlash hides the flash notice.
func (s *Session) DismissFlash() {
	s.flash = Flash{}
}

// ShowSignup switches from login to signup.
func (s *Session) ShowSignup() {
	s.view = ViewSignup
	s.flash = Flash{}
}

// ShowLogin switches from signup to login.
func (s *Session) ShowLogin() {
	s.view = ViewLogin
}

// Login signs in with any non-empty username and password. Whitespace counts
// as present.
func (s *Session) Login(username, password string) error {
	if username == "" || password == "" {
		s.flash = Flash{Kind: FlashDanger, Message: FlashLoginMissing}
		return ErrMissingCredentials
	}
	if trimmed := strings.TrimSpace(username); trimmed != "" {
		username = trimmed
	}
	s.username = username
	s.view = ViewDashboard
	s.flash = Flash{Kind: FlashSuccess, Message: FlashLoginSuccess}
	return nil
}

// SignupInput holds the signup form values.
type SignupInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Signup checks the password confirmation first, then presence. On success the
// session returns to the login view; nothing is stored.
func (s *Session) Signup(in SignupInput) error {
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if in.Username == "" || in.Password == "" {
		return ErrMissingCredentials
	}
	s.view = ViewLogin
	return nil
}

// Logout returns to the login view.
func (s *Session) Logout() {
	s.username = ""
	s.view = ViewLogin
	s.flash = Flash{}
}
