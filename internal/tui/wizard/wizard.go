// ABOUTME: Booking wizard as a bubbletea model
// ABOUTME: Uses huh forms with a visual progress indicator for step navigation

package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/store"
	"github.com/barberslot/barberslot-cli/internal/tui/icons"
	"github.com/barberslot/barberslot-cli/internal/tui/styles"
)

// Step indices. The service step is bypassed when the shop has the
// service catalog switched off.
const (
	stepService = 1
	stepDate    = 2
	stepTime    = 3
	stepDetails = 4
)

// skipValue marks the "no service selected" choice in the catalog select
const skipValue = "-"

// CompleteMsg is sent when the wizard finishes with a submittable request.
// The key is the draft ID, so retries of the same draft dedupe server-side.
type CompleteMsg struct {
	Request        *client.BookingRequest
	IdempotencyKey string
}

// CancelledMsg is sent when the wizard is cancelled. The draft survives.
type CancelledMsg struct{}

type servicesLoadedMsg struct {
	services []client.Service
	err      error
}

type datesLoadedMsg struct {
	dates []string
	err   error
}

type timesLoadedMsg struct {
	times []string
	err   error
}

// Wizard walks a customer through composing an appointment. Every choice
// is written into the store draft immediately, so quitting mid-flow loses
// nothing.
type Wizard struct {
	st      *store.Store
	api     *client.Client
	form    *huh.Form
	spin    spinner.Model
	step    int
	loading bool
	errMsg  string
	width   int

	hasServiceStep bool

	services []client.Service
	dates    []string
	times    []string

	// Form field values
	serviceChoice  string
	date           string
	timeSlot       string
	name           string
	email          string
	phone          string
	bookingFor     string
	specialRequest string
}

// New creates a wizard resuming from whatever the draft already holds.
// Session prefill runs only when the draft has no contact fields yet;
// values the customer already typed are kept.
func New(st *store.Store, api *client.Client) *Wizard {
	draft := st.Draft()
	if draft.Name == "" && draft.Email == "" && draft.Phone == "" {
		st.PrefillFromSession()
		draft = st.Draft()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	w := &Wizard{
		st:             st,
		api:            api,
		spin:           sp,
		hasServiceStep: st.Settings().ServicesEnabled,
		serviceChoice:  draft.ServiceID,
		date:           draft.Date,
		timeSlot:       draft.Time,
		name:           draft.Name,
		email:          draft.Email,
		phone:          draft.Phone,
		bookingFor:     draft.BookingFor,
		specialRequest: draft.SpecialRequest,
	}
	if w.serviceChoice == "" {
		w.serviceChoice = skipValue
	}

	w.step = stepService
	if !w.hasServiceStep {
		w.step = stepDate
	}
	// Resume past steps the draft already completed
	if resume := draft.StepCompleted + 1; resume > w.step && resume <= stepDetails {
		w.step = resume
	}

	w.loading = true
	return w
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return tea.Batch(w.spin.Tick, w.loadStep())
}

// loadStep fetches whatever the current step needs from the backend
func (w *Wizard) loadStep() tea.Cmd {
	switch w.step {
	case stepService:
		return func() tea.Msg {
			services, err := w.api.Services(context.Background())
			return servicesLoadedMsg{services: services, err: err}
		}
	case stepDate:
		return func() tea.Msg {
			dates, err := w.api.AvailableDates(context.Background())
			return datesLoadedMsg{dates: dates, err: err}
		}
	case stepTime:
		date := w.date
		return func() tea.Msg {
			times, err := w.api.AvailableTimes(context.Background(), date)
			return timesLoadedMsg{times: times, err: err}
		}
	default:
		// Details step needs no backend data
		w.loading = false
		w.form = w.createDetailsForm()
		return w.form.Init()
	}
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		if w.form != nil {
			form, cmd := w.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				w.form = f
			}
			return w, cmd
		}
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return CancelledMsg{} }
		}

	case spinner.TickMsg:
		if w.loading {
			var cmd tea.Cmd
			w.spin, cmd = w.spin.Update(msg)
			return w, cmd
		}
		return w, nil

	case servicesLoadedMsg:
		w.loading = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		w.services = msg.services
		w.form = w.createServiceForm()
		return w, w.form.Init()

	case datesLoadedMsg:
		w.loading = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		w.dates = msg.dates
		w.form = w.createDateForm()
		return w, w.form.Init()

	case timesLoadedMsg:
		w.loading = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		w.times = msg.times
		w.form = w.createTimeForm()
		return w, w.form.Init()
	}

	if w.form == nil {
		return w, nil
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) createServiceForm() *huh.Form {
	options := []huh.Option[string]{
		huh.NewOption("Skip - decide at the chair", skipValue),
	}
	for _, svc := range w.services {
		label := fmt.Sprintf("%s (%d min, £%.2f)", svc.Name, svc.DurationMin, float64(svc.PriceCents)/100)
		options = append(options, huh.NewOption(label, svc.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Service").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(options...).
				Value(&w.serviceChoice),
		).Title("Step 1: Service").
			Description("Pick a service, or skip and decide in the shop"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createDateForm() *huh.Form {
	var options []huh.Option[string]
	for _, d := range w.dates {
		options = append(options, huh.NewOption(d, d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Date").
				Description("Days with at least one open slot").
				Options(options...).
				Value(&w.date),
		).Title(fmt.Sprintf("Step %d: Date", w.displayStep())).
			Description("When would you like to come in?"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createTimeForm() *huh.Form {
	var options []huh.Option[string]
	for _, t := range w.times {
		options = append(options, huh.NewOption(t, t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Time").
				Description("Open slots on "+w.date).
				Options(options...).
				Value(&w.timeSlot),
		).Title(fmt.Sprintf("Step %d: Time", w.displayStep())).
			Description("Pick a slot"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createDetailsForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&w.name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&w.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Phone").
				Placeholder("07700 900000").
				Value(&w.phone).
				Validate(validateRequired("phone")),
			huh.NewInput().
				Title("Booking for").
				Description("Leave blank if it's for you").
				Value(&w.bookingFor),
			huh.NewText().
				Title("Special request").
				Description("Anything the barber should know").
				CharLimit(500).
				Value(&w.specialRequest),
		).Title(fmt.Sprintf("Step %d: Your details", w.displayStep())).
			Description("Contact details for the appointment"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case stepService:
		serviceID := w.serviceChoice
		serviceName := ""
		if serviceID == skipValue {
			serviceID = ""
		} else {
			for _, svc := range w.services {
				if svc.ID == serviceID {
					serviceName = svc.Name
					break
				}
			}
		}
		w.st.UpdateDraft(store.DraftPatch{ServiceID: &serviceID, ServiceName: &serviceName})
		w.st.SetStep(stepService)
		return w.gotoStep(stepDate)

	case stepDate:
		w.st.UpdateDraft(store.DraftPatch{Date: &w.date})
		w.st.SetStep(stepDate)
		// A new date invalidates any previously chosen time
		w.timeSlot = ""
		return w.gotoStep(stepTime)

	case stepTime:
		w.st.UpdateDraft(store.DraftPatch{Time: &w.timeSlot})
		w.st.SetStep(stepTime)
		return w.gotoStep(stepDetails)

	case stepDetails:
		w.st.UpdateDraft(store.DraftPatch{
			Name:           &w.name,
			Email:          &w.email,
			Phone:          &w.phone,
			BookingFor:     &w.bookingFor,
			SpecialRequest: &w.specialRequest,
		})
		w.st.SetStep(stepDetails)

		draft := w.st.Draft()
		req := &client.BookingRequest{
			ServiceID:         draft.ServiceID,
			Date:              draft.Date,
			Time:              draft.Time,
			Name:              draft.Name,
			Email:             draft.Email,
			Phone:             draft.Phone,
			BookingFor:        draft.BookingFor,
			SpecialRequest:    draft.SpecialRequest,
			InspirationPhotos: draft.InspirationPhotos,
		}
		key := draft.ID
		return w, func() tea.Msg {
			return CompleteMsg{Request: req, IdempotencyKey: key}
		}
	}

	return w, nil
}

func (w *Wizard) gotoStep(step int) (tea.Model, tea.Cmd) {
	w.step = step
	w.form = nil
	w.loading = true
	w.errMsg = ""
	return w, tea.Batch(w.spin.Tick, w.loadStep())
}

// stepNames for the progress indicator, narrowed when the catalog is off
func (w *Wizard) stepNames() []string {
	if w.hasServiceStep {
		return []string{"Service", "Date", "Time", "Details"}
	}
	return []string{"Date", "Time", "Details"}
}

// displayStep maps the internal step index to the user-visible number
func (w *Wizard) displayStep() int {
	if w.hasServiceStep {
		return w.step
	}
	return w.step - 1
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")

	if w.errMsg != "" {
		sb.WriteString(styles.ErrorBanner.Render(w.errMsg))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("Esc to go back"))
		return sb.String()
	}

	if w.loading {
		sb.WriteString(w.spin.View())
		sb.WriteString(" Checking availability...")
		return sb.String()
	}

	if w.form != nil {
		sb.WriteString(w.form.View())
	}

	return sb.String()
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	width := w.width - 1
	if width < 60 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	names := w.stepNames()
	current := w.displayStep()

	var steps []string
	for i, name := range names {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		if stepNum < current {
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		} else if stepNum == current {
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		} else {
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	stepsLine := strings.Join(steps, "    ")

	// Progress bar line format: "│  " + bar + " │" = 5 chars overhead
	barWidth := width - 5
	totalSteps := len(names)
	filledWidth := (current * barWidth) / totalSteps
	emptyWidth := barWidth - filledWidth

	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", emptyWidth))
	progressBar := filledBar + emptyBar

	styledTitle := titleStyle.Render("Progress")
	titleWidth := lipgloss.Width("Progress")

	// Top border: "┌─ " + title + " " + fill + "┐"
	topFillWidth := max(0, width-5-titleWidth)
	topBorder := "┌─ " + styledTitle + " " + strings.Repeat("─", topFillWidth) + "┐"

	// Steps line: "│ " + content + padding + " │" = 4 chars overhead
	stepsLineWidth := lipgloss.Width(stepsLine)
	stepsPadding := max(0, width-4-stepsLineWidth)
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │"

	progressLinePadded := "│  " + progressBar + " │"

	bottomFillWidth := width - 2
	bottomBorder := "└" + strings.Repeat("─", bottomFillWidth) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
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
