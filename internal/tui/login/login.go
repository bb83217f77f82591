// ABOUTME: Sign-in and registration screen as a bubbletea model
// ABOUTME: Rebuilds its huh form when an admin sign-in requires a second factor

package login

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barberslot/barberslot-cli/internal/tui/styles"
	"github.com/charmbracelet/huh"
)

// Mode selects which credentials the form collects
type Mode int

const (
	ModeCustomer Mode = iota
	ModeAdmin
	ModeRegister
)

// SubmittedMsg is sent when the form completes. The parent performs the
// actual sign-in and calls RequireSecondFactor or SetError on failure.
type SubmittedMsg struct {
	Mode         Mode
	Email        string
	Password     string
	SecondFactor string
	Name         string
	Phone        string
}

// CancelledMsg is sent when the user backs out of the screen
type CancelledMsg struct{}

// Login collects credentials for the three sign-in modes
type Login struct {
	mode       Mode
	form       *huh.Form
	needCode   bool
	submitting bool
	errMsg     string
	width      int

	email        string
	password     string
	secondFactor string
	name         string
	phone        string
}

// New creates a login screen in customer mode
func New() *Login {
	l := &Login{mode: ModeCustomer}
	l.form = l.buildForm()
	return l
}

func (l *Login) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&l.email).
			Validate(validateEmail),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&l.password).
			Validate(validateRequired("password")),
	}

	if l.mode == ModeRegister {
		fields = append(fields,
			huh.NewInput().
				Title("Name").
				Value(&l.name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Phone").
				Placeholder("07700 900000").
				Value(&l.phone),
		)
	}

	if l.mode == ModeAdmin && l.needCode {
		fields = append(fields,
			huh.NewInput().
				Title("Verification code").
				Description("Enter the 6-digit code from your authenticator").
				CharLimit(6).
				Value(&l.secondFactor).
				Validate(validateRequired("code")),
		)
	}

	title := map[Mode]string{
		ModeCustomer: "Sign in",
		ModeAdmin:    "Admin sign in",
		ModeRegister: "Create an account",
	}[l.mode]

	return huh.NewForm(
		huh.NewGroup(fields...).
			Title(title).
			Description("Tab switches between customer, admin, and registration"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		form, cmd := l.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			l.form = f
		}
		return l, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return l, func() tea.Msg { return CancelledMsg{} }
		case "tab":
			// Cycle modes; a pending second factor pins the form to admin
			if !l.needCode && !l.submitting {
				l.mode = (l.mode + 1) % 3
				l.errMsg = ""
				l.form = l.buildForm()
				return l, l.form.Init()
			}
		}
	}

	if l.submitting {
		return l, nil
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		l.submitting = true
		l.errMsg = ""
		return l, func() tea.Msg {
			return SubmittedMsg{
				Mode:         l.mode,
				Email:        strings.TrimSpace(l.email),
				Password:     l.password,
				SecondFactor: strings.TrimSpace(l.secondFactor),
				Name:         strings.TrimSpace(l.name),
				Phone:        strings.TrimSpace(l.phone),
			}
		}
	}

	return l, cmd
}

// RequireSecondFactor rebuilds the form with a verification code field.
// The email and password already entered are kept.
func (l *Login) RequireSecondFactor() tea.Cmd {
	l.mode = ModeAdmin
	l.needCode = true
	l.submitting = false
	l.secondFactor = ""
	l.form = l.buildForm()
	return l.form.Init()
}

// SetError surfaces a failure and reopens the form for another attempt
func (l *Login) SetError(msg string) tea.Cmd {
	l.errMsg = msg
	l.submitting = false
	l.password = ""
	l.secondFactor = ""
	l.form = l.buildForm()
	return l.form.Init()
}

// Mode returns the currently selected mode
func (l *Login) Mode() Mode {
	return l.mode
}

// View implements tea.Model
func (l *Login) View() string {
	var sb strings.Builder
	if l.errMsg != "" {
		sb.WriteString(styles.ErrorBanner.Render(l.errMsg))
		sb.WriteString("\n")
	}
	if l.submitting {
		sb.WriteString(styles.Subtitle.Render("Signing in..."))
		sb.WriteString("\n")
	}
	sb.WriteString(l.form.View())
	return sb.String()
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || !strings.Contains(s, "@") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
