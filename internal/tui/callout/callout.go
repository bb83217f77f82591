// ABOUTME: Call-out request form as a bubbletea model
// ABOUTME: Collects address and contact details for a mobile barber visit

package callout

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/tui/styles"
)

// SubmittedMsg is sent when the form completes
type SubmittedMsg struct {
	Request *client.CalloutRequest
}

// CancelledMsg is sent when the user backs out
type CancelledMsg struct{}

// Callout collects a mobile-barber booking request
type Callout struct {
	form       *huh.Form
	submitting bool
	errMsg     string
	width      int

	name          string
	phone         string
	address       string
	details       string
	preferredTime string
}

// New creates the call-out form, prefilled with known contact details
func New(name, phone string) *Callout {
	c := &Callout{name: name, phone: phone}
	c.form = c.buildForm()
	return c
}

func (c *Callout) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&c.name).
				Validate(required("name")),
			huh.NewInput().
				Title("Phone").
				Placeholder("07700 900000").
				Value(&c.phone).
				Validate(required("phone")),
			huh.NewInput().
				Title("Address").
				Description("Where should the barber come?").
				Value(&c.address).
				Validate(required("address")),
			huh.NewInput().
				Title("Preferred time").
				Description("Leave blank for first available").
				Value(&c.preferredTime),
			huh.NewText().
				Title("Details").
				Description("Access notes, number of people, anything useful").
				CharLimit(500).
				Value(&c.details),
		).Title("Request a call-out").
			Description("A barber comes to you"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (c *Callout) Init() tea.Cmd {
	return c.form.Init()
}

// Update implements tea.Model
func (c *Callout) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		form, cmd := c.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			c.form = f
		}
		return c, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return c, func() tea.Msg { return CancelledMsg{} }
		}
	}

	if c.submitting {
		return c, nil
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.submitting = true
		req := &client.CalloutRequest{
			Name:          strings.TrimSpace(c.name),
			Phone:         strings.TrimSpace(c.phone),
			Address:       strings.TrimSpace(c.address),
			Details:       strings.TrimSpace(c.details),
			PreferredTime: strings.TrimSpace(c.preferredTime),
		}
		return c, func() tea.Msg { return SubmittedMsg{Request: req} }
	}

	return c, cmd
}

// SetError surfaces a submission failure and reopens the form
func (c *Callout) SetError(msg string) tea.Cmd {
	c.errMsg = msg
	c.submitting = false
	c.form = c.buildForm()
	return c.form.Init()
}

// View implements tea.Model
func (c *Callout) View() string {
	var sb strings.Builder
	if c.errMsg != "" {
		sb.WriteString(styles.ErrorBanner.Render(c.errMsg))
		sb.WriteString("\n")
	}
	if c.submitting {
		sb.WriteString(styles.Subtitle.Render("Sending request..."))
		sb.WriteString("\n")
	}
	sb.WriteString(c.form.View())
	return sb.String()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
