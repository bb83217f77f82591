// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/store"
	"github.com/barberslot/barberslot-cli/internal/tui/callout"
	"github.com/barberslot/barberslot-cli/internal/tui/dashboard"
	"github.com/barberslot/barberslot-cli/internal/tui/debuglog"
	"github.com/barberslot/barberslot-cli/internal/tui/gallery"
	"github.com/barberslot/barberslot-cli/internal/tui/icons"
	"github.com/barberslot/barberslot-cli/internal/tui/login"
	"github.com/barberslot/barberslot-cli/internal/tui/menu"
	"github.com/barberslot/barberslot-cli/internal/tui/queueview"
	"github.com/barberslot/barberslot-cli/internal/tui/styles"
	"github.com/barberslot/barberslot-cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenLogin
	ScreenWizard
	ScreenConfirm
	ScreenQueue
	ScreenGallery
	ScreenCallout
	ScreenDashboard
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping layout
	panelPadding     = 4  // Total horizontal padding from panel borders

	pollInterval = 5 * time.Second
)

// storeChangedMsg is sent when a store slice notifies its subscribers
type storeChangedMsg struct {
	slice store.Slice
}

// sessionRestoredMsg is sent after the startup session restore finishes
type sessionRestoredMsg struct{}

// settingsFetchedMsg is sent after a settings refresh attempt
type settingsFetchedMsg struct{}

// loginResultMsg carries the outcome of a sign-in attempt
type loginResultMsg struct {
	mode         login.Mode
	requires2FA  bool
	errorMessage string
}

// queueLoadedMsg is sent when a queue poll completes
type queueLoadedMsg struct {
	entries []client.QueueEntry
	err     error
}

// galleryLoadedMsg is sent when the gallery list loads
type galleryLoadedMsg struct {
	images []client.GalleryImage
	err    error
}

// overviewLoadedMsg is sent when an admin dashboard poll completes
type overviewLoadedMsg struct {
	overview *client.Overview
	barbers  []client.Barber
	err      error
}

// bookingCreatedMsg is sent when booking submission completes
type bookingCreatedMsg struct {
	booking *client.Booking
	err     error
}

// calloutCreatedMsg is sent when a call-out request completes
type calloutCreatedMsg struct {
	job *client.CalloutJob
	err error
}

// adminActionMsg reports the result of a queue or call-out mutation
type adminActionMsg struct {
	err error
}

// pollTickMsg drives periodic refresh on live screens
type pollTickMsg struct{}

// App is the root model for the TUI
type App struct {
	st     *store.Store
	api    *client.Client
	screen Screen
	width  int
	height int
	err    error

	confirmTitle string
	confirmBody  string
	lastUpdate   time.Time

	// Child models
	menu        *menu.Menu
	loginView   *login.Login
	wizardView  *wizard.Wizard
	queueView   *queueview.QueueView
	galleryView *gallery.Gallery
	calloutView *callout.Callout
	dash        *dashboard.Dashboard

	// Store subscriptions
	sessionCh  <-chan struct{}
	settingsCh <-chan struct{}
	cancelSubs []func()
}

// New creates a new TUI application
func New(st *store.Store, api *client.Client) *App {
	a := &App{
		st:     st,
		api:    api,
		screen: ScreenMenu,
	}
	sessionCh, cancelSession := st.Subscribe(store.SliceSession)
	settingsCh, cancelSettings := st.Subscribe(store.SliceSettings)
	a.sessionCh = sessionCh
	a.settingsCh = settingsCh
	a.cancelSubs = []func(){cancelSession, cancelSettings}
	a.menu = menu.New(st.Settings(), st.Session())
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.restoreSession(),
		a.fetchSettings(),
		a.waitForStore(a.sessionCh, store.SliceSession),
		a.waitForStore(a.settingsCh, store.SliceSettings),
	)
}

// waitForStore blocks on a subscription channel and rearms after delivery
func (a *App) waitForStore(ch <-chan struct{}, slice store.Slice) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{slice: slice}
	}
}

func (a *App) restoreSession() tea.Cmd {
	return func() tea.Msg {
		a.st.RestoreSession(context.Background())
		return sessionRestoredMsg{}
	}
}

func (a *App) fetchSettings() tea.Cmd {
	return func() tea.Msg {
		a.st.FetchSettings(context.Background())
		return settingsFetchedMsg{}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.queueView != nil {
			a.queueView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.galleryView != nil {
			a.galleryView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.dash != nil {
			a.dash.SetSize(a.contentWidth(), a.contentHeight())
		}
		// Forward to form-based children
		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenCallout:
			return a.updateCallout(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenMenu:
			return a.updateMenu(msg)
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenConfirm:
			return a.updateConfirm(msg)
		case ScreenQueue:
			return a.updateQueue(msg)
		case ScreenGallery:
			return a.updateGallery(msg)
		case ScreenCallout:
			return a.updateCallout(msg)
		case ScreenDashboard:
			return a.updateDashboard(msg)
		}

	case storeChangedMsg:
		// Menu availability follows session and settings
		a.menu = menu.New(a.st.Settings(), a.st.Session())
		var ch <-chan struct{}
		if msg.slice == store.SliceSession {
			ch = a.sessionCh
		} else {
			ch = a.settingsCh
		}
		return a, a.waitForStore(ch, msg.slice)

	case sessionRestoredMsg, settingsFetchedMsg:
		a.menu = menu.New(a.st.Settings(), a.st.Session())
		return a, nil

	case menu.ItemSelectedMsg:
		return a.handleMenuItem(msg.Item)

	case menu.CancelledMsg:
		return a, tea.Quit

	case login.SubmittedMsg:
		return a, a.signIn(msg)

	case login.CancelledMsg:
		a.st.ClearError()
		return a.gotoMenu()

	case loginResultMsg:
		return a.handleLoginResult(msg)

	case wizard.CompleteMsg:
		return a, a.createBooking(msg.Request, msg.IdempotencyKey)

	case wizard.CancelledMsg:
		// Draft survives; the wizard resumes where it left off
		return a.gotoMenu()

	case callout.SubmittedMsg:
		return a, a.createCallout(msg.Request)

	case callout.CancelledMsg:
		return a.gotoMenu()

	case bookingCreatedMsg:
		return a.handleBookingCreated(msg)

	case calloutCreatedMsg:
		return a.handleCalloutCreated(msg)

	case queueLoadedMsg:
		if msg.err != nil {
			debuglog.Error("queue poll", msg.err)
			return a, nil
		}
		a.lastUpdate = time.Now()
		if a.queueView == nil {
			a.queueView = queueview.New(msg.entries, a.st.Settings(), a.contentWidth(), a.contentHeight())
		} else {
			a.queueView.Update(msg.entries)
		}
		return a, nil

	case galleryLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.lastUpdate = time.Now()
		a.galleryView = gallery.New(msg.images, a.contentWidth(), a.contentHeight())
		return a, nil

	case overviewLoadedMsg:
		if msg.err != nil {
			debuglog.Error("dashboard poll", msg.err)
			return a, nil
		}
		a.lastUpdate = time.Now()
		if a.dash == nil {
			a.dash = dashboard.New(a.st.Settings(), a.contentWidth(), a.contentHeight())
		}
		a.dash.SetData(msg.overview.Queue, msg.overview.Callouts, msg.barbers)
		return a, nil

	case adminActionMsg:
		if msg.err != nil {
			a.err = msg.err
		}
		// Reconcile the optimistic update with server truth
		return a, a.loadOverview()

	case pollTickMsg:
		switch a.screen {
		case ScreenQueue:
			return a, tea.Batch(a.loadQueue(), a.pollTick())
		case ScreenDashboard:
			return a, tea.Batch(a.loadOverview(), a.pollTick())
		}
		return a, nil

	default:
		// Forward unknown messages to active forms (needed for huh internals)
		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenCallout:
			return a.updateCallout(msg)
		}
	}

	return a, nil
}

func (a *App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.menu == nil {
		return a, nil
	}
	model, cmd := a.menu.Update(msg)
	a.menu = model.(*menu.Menu)
	return a, cmd
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.loginView == nil {
		return a, nil
	}
	model, cmd := a.loginView.Update(msg)
	a.loginView = model.(*login.Login)
	return a, cmd
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardView == nil {
		return a, nil
	}
	model, cmd := a.wizardView.Update(msg)
	a.wizardView = model.(*wizard.Wizard)
	return a, cmd
}

func (a *App) updateCallout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.calloutView == nil {
		return a, nil
	}
	model, cmd := a.calloutView.Update(msg)
	a.calloutView = model.(*callout.Callout)
	return a, cmd
}

func (a *App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "enter", "esc":
		return a.gotoMenu()
	}
	return a, nil
}

func (a *App) updateQueue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		return a, a.loadQueue()
	case "b", "esc":
		return a.gotoMenu()
	}
	return a, nil
}

func (a *App) updateGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc":
		return a.gotoMenu()
	case "up", "k":
		if a.galleryView != nil {
			a.galleryView.MoveUp()
		}
	case "down", "j":
		if a.galleryView != nil {
			a.galleryView.MoveDown()
		}
	}
	return a, nil
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.dash == nil {
		return a, nil
	}
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc":
		return a.gotoMenu()
	case "r":
		return a, a.loadOverview()
	case "tab":
		a.dash.ToggleFocus()
		return a, nil
	case "c":
		if a.dash.Focus() == dashboard.PaneQueue {
			if e := a.dash.SelectedQueueEntry(); e != nil && e.Status == "waiting" {
				a.dash.MarkQueueStatus(e.ID, "called", "")
				return a, a.callQueueEntry(e.ID)
			}
		}
		return a, nil
	case "d":
		if a.dash.Focus() == dashboard.PaneQueue {
			if e := a.dash.SelectedQueueEntry(); e != nil && e.Status == "called" {
				a.dash.MarkQueueStatus(e.ID, "done", "")
				return a, a.completeQueueEntry(e.ID)
			}
		}
		return a, nil
	case "a":
		if a.dash.Focus() == dashboard.PaneCallouts {
			j := a.dash.SelectedCallout()
			barber := a.dash.NextBarber()
			if j != nil && j.Status == "pending" && barber != nil {
				a.dash.MarkCalloutAssigned(j.ID, barber.Name)
				return a, a.assignCallout(j.ID, barber.ID)
			}
		}
		return a, nil
	case "x":
		if a.dash.Focus() == dashboard.PaneCallouts {
			if j := a.dash.SelectedCallout(); j != nil && j.Status == "assigned" {
				a.dash.MarkCalloutCompleted(j.ID)
				return a, a.completeCallout(j.ID)
			}
		}
		return a, nil
	}
	return a, a.dash.Update(msg)
}

func (a *App) handleMenuItem(item menu.Item) (tea.Model, tea.Cmd) {
	a.err = nil
	switch item {
	case menu.ItemBook:
		a.wizardView = wizard.New(a.st, a.api)
		a.screen = ScreenWizard
		return a, a.wizardView.Init()

	case menu.ItemQueue:
		a.screen = ScreenQueue
		a.queueView = queueview.New(nil, a.st.Settings(), a.contentWidth(), a.contentHeight())
		return a, tea.Batch(a.loadQueue(), a.pollTick())

	case menu.ItemCallout:
		sess := a.st.Session()
		name, phone := "", ""
		if sess.CurrentUser != nil {
			name = sess.CurrentUser.Name
			phone = sess.CurrentUser.Phone
		}
		a.calloutView = callout.New(name, phone)
		a.screen = ScreenCallout
		return a, a.calloutView.Init()

	case menu.ItemGallery:
		a.screen = ScreenGallery
		return a, a.loadGallery()

	case menu.ItemSignIn:
		a.loginView = login.New()
		a.screen = ScreenLogin
		return a, a.loginView.Init()

	case menu.ItemSignOut:
		a.st.Logout()
		a.menu = menu.New(a.st.Settings(), a.st.Session())
		return a, nil

	case menu.ItemAdmin:
		a.screen = ScreenDashboard
		a.dash = dashboard.New(a.st.Settings(), a.contentWidth(), a.contentHeight())
		return a, tea.Batch(a.loadOverview(), a.pollTick())
	}
	return a, nil
}

func (a *App) gotoMenu() (tea.Model, tea.Cmd) {
	a.screen = ScreenMenu
	a.err = nil
	a.menu = menu.New(a.st.Settings(), a.st.Session())
	return a, nil
}

func (a *App) signIn(msg login.SubmittedMsg) tea.Cmd {
	return func() tea.Msg {
		switch msg.Mode {
		case login.ModeAdmin:
			requires2FA, err := a.st.LoginAdmin(context.Background(), msg.Email, msg.Password, msg.SecondFactor)
			if err != nil {
				return loginResultMsg{mode: msg.Mode, errorMessage: a.st.Session().ErrorMessage}
			}
			return loginResultMsg{mode: msg.Mode, requires2FA: requires2FA}
		case login.ModeRegister:
			if err := a.st.Register(context.Background(), msg.Email, msg.Password, msg.Name, msg.Phone); err != nil {
				return loginResultMsg{mode: msg.Mode, errorMessage: a.st.Session().ErrorMessage}
			}
			// Registration does not sign in; follow with a normal login
			if err := a.st.Login(context.Background(), msg.Email, msg.Password); err != nil {
				return loginResultMsg{mode: msg.Mode, errorMessage: a.st.Session().ErrorMessage}
			}
			return loginResultMsg{mode: msg.Mode}
		default:
			if err := a.st.Login(context.Background(), msg.Email, msg.Password); err != nil {
				return loginResultMsg{mode: msg.Mode, errorMessage: a.st.Session().ErrorMessage}
			}
			return loginResultMsg{mode: msg.Mode}
		}
	}
}

func (a *App) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if a.loginView == nil {
		return a, nil
	}
	if msg.requires2FA {
		return a, a.loginView.RequireSecondFactor()
	}
	if msg.errorMessage != "" {
		return a, a.loginView.SetError(msg.errorMessage)
	}
	// Admin settings may differ from the public view
	a.loginView = nil
	model, _ := a.gotoMenu()
	return model, a.fetchSettings()
}

func (a *App) handleBookingCreated(msg bookingCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Draft is intact; reopen the wizard with the failure visible
		a.err = msg.err
		a.screen = ScreenConfirm
		a.confirmTitle = "Booking failed"
		a.confirmBody = msg.err.Error() + "\n\nYour choices are saved - pick \"Book an appointment\" to try again."
		return a, nil
	}

	a.st.ClearDraft()
	a.screen = ScreenConfirm
	a.confirmTitle = "Booking confirmed"
	b := msg.booking
	body := fmt.Sprintf("%s at %s", b.Date, b.Time)
	if b.ServiceName != "" {
		body = b.ServiceName + "\n" + body
	}
	body += fmt.Sprintf("\nFor %s", b.CustomerName)
	a.confirmBody = body
	return a, nil
}

func (a *App) handleCalloutCreated(msg calloutCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if a.calloutView != nil {
			return a, a.calloutView.SetError(msg.err.Error())
		}
		a.err = msg.err
		return a, nil
	}
	a.screen = ScreenConfirm
	a.confirmTitle = "Call-out requested"
	a.confirmBody = fmt.Sprintf("We'll call %s to confirm a time.\nAddress: %s",
		msg.job.Phone, msg.job.Address)
	a.calloutView = nil
	return a, nil
}

// View implements tea.Model. Child pointers are nil-checked here, before
// any interface wrapping, so a screen whose data has not arrived renders
// the loading state instead of dereferencing a nil model.
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenMenu:
		content = a.viewMenu()
	case ScreenLogin:
		if a.loginView != nil {
			content = a.loginView.View()
		}
	case ScreenWizard:
		if a.wizardView != nil {
			content = a.wizardView.View()
		}
	case ScreenConfirm:
		content = a.viewConfirm()
	case ScreenQueue:
		var body string
		if a.queueView != nil {
			body = a.queueView.View()
		}
		content = a.viewPanel(body)
	case ScreenGallery:
		var body string
		if a.galleryView != nil {
			body = a.galleryView.View()
		}
		content = a.viewPanel(body)
	case ScreenCallout:
		if a.calloutView != nil {
			content = a.calloutView.View()
		}
	case ScreenDashboard:
		var body string
		if a.dash != nil {
			body = a.dash.View()
		}
		content = a.viewPanel(body)
	default:
		content = a.viewMenu()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewMenu() string {
	if a.menu != nil {
		return a.menu.View()
	}
	return ""
}

// viewPanel frames a live-data screen; body is empty until the first load
func (a *App) viewPanel(body string) string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n" + body
	}
	if body == "" {
		return styles.Panel.Width(a.contentWidth()).Render("Loading...")
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(body)
}

func (a *App) viewConfirm() string {
	title := styles.Title.Render(icons.CheckOK.String() + " " + a.confirmTitle)
	if a.err != nil {
		title = styles.StatusCritical.Render(icons.Critical.String() + " " + a.confirmTitle)
	}
	body := lipgloss.NewStyle().Foreground(styles.Text).Render(a.confirmBody)
	help := styles.Help.Render("Enter to return to the menu")
	return styles.ActivePanel.Width(a.contentWidth()).Render(title + "\n" + body + "\n" + help)
}

// contentWidth calculates the width available for screen content
func (a *App) contentWidth() int {
	w := a.width
	if w < minTerminalWidth {
		w = minTerminalWidth
	}
	return w - panelPadding
}

// contentHeight calculates the height available for screen content
func (a *App) contentHeight() int {
	// Header, footer, panel borders, and padding eat about 8 rows
	return a.height - 8
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("BarberSlot"))

	rightText := ""
	sess := a.st.Session()
	if sess.Status.IsAuthenticated && sess.CurrentUser != nil {
		who := sess.CurrentUser.Name
		if who == "" {
			who = sess.CurrentUser.Email
		}
		if sess.Status.UserType == store.UserTypeAdmin {
			who += " (admin)"
		}
		rightText = contextStyle.Render(who) + " "
	}

	leftRendered := lipgloss.NewStyle().Render(leftText)
	rightRendered := lipgloss.NewStyle().Align(lipgloss.Right).Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	header := "╭─" + leftRendered + fill + rightRendered + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenLogin:
		shortcuts = []string{"Tab Mode", "Enter Submit", "Esc Back"}
	case ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenConfirm:
		shortcuts = []string{"Enter Menu", "q Quit"}
	case ScreenQueue:
		shortcuts = []string{"r Refresh", "b Back", "q Quit"}
	case ScreenGallery:
		shortcuts = []string{"↑↓ Browse", "b Back", "q Quit"}
	case ScreenCallout:
		shortcuts = []string{"Enter Submit", "Esc Back"}
	case ScreenDashboard:
		shortcuts = []string{"Tab Pane", "c Call", "d Done", "a Assign", "x Complete", "b Back"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && (a.screen == ScreenQueue || a.screen == ScreenDashboard) {
		elapsed := a.formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	footer := "╰─" + leftText + fill + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

func (a *App) pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (a *App) loadQueue() tea.Cmd {
	return func() tea.Msg {
		entries, err := a.api.Queue(context.Background())
		return queueLoadedMsg{entries: entries, err: err}
	}
}

func (a *App) loadGallery() tea.Cmd {
	return func() tea.Msg {
		images, err := a.api.Gallery(context.Background())
		return galleryLoadedMsg{images: images, err: err}
	}
}

func (a *App) loadOverview() tea.Cmd {
	return func() tea.Msg {
		overview, err := a.api.AdminOverview(context.Background())
		if err != nil {
			return overviewLoadedMsg{err: err}
		}
		barbers, err := a.api.Barbers(context.Background())
		if err != nil {
			return overviewLoadedMsg{err: err}
		}
		return overviewLoadedMsg{overview: overview, barbers: barbers}
	}
}

func (a *App) createBooking(req *client.BookingRequest, idempotencyKey string) tea.Cmd {
	return func() tea.Msg {
		booking, err := a.api.CreateBooking(context.Background(), req, idempotencyKey)
		return bookingCreatedMsg{booking: booking, err: err}
	}
}

func (a *App) createCallout(req *client.CalloutRequest) tea.Cmd {
	return func() tea.Msg {
		job, err := a.api.CreateCallout(context.Background(), req)
		return calloutCreatedMsg{job: job, err: err}
	}
}

func (a *App) callQueueEntry(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.api.CallQueueEntry(context.Background(), id)
		return adminActionMsg{err: err}
	}
}

func (a *App) completeQueueEntry(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.api.CompleteQueueEntry(context.Background(), id)
		return adminActionMsg{err: err}
	}
}

func (a *App) assignCallout(id, barberID string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.api.AssignCallout(context.Background(), id, barberID)
		return adminActionMsg{err: err}
	}
}

func (a *App) completeCallout(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.api.CompleteCallout(context.Background(), id)
		return adminActionMsg{err: err}
	}
}

// Close cancels store subscriptions
func (a *App) Close() {
	for _, cancel := range a.cancelSubs {
		cancel()
	}
}

// Run starts the TUI
func Run(st *store.Store, api *client.Client) error {
	if err := debuglog.Init(store.DefaultConfigDir()); err != nil {
		// Diagnostics are best effort; the TUI works without them
		debuglog.Close()
	}
	defer debuglog.Close()

	app := New(st, api)
	defer app.Close()

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
