// ABOUTME: Admin dashboard component showing the live queue and call-out jobs
// ABOUTME: Two focusable tables with optimistic status updates between polls

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/tui/icons"
	"github.com/barberslot/barberslot-cli/internal/tui/styles"
	"github.com/barberslot/barberslot-cli/internal/tui/widgets"
)

// Pane identifies which table has focus
type Pane int

const (
	PaneQueue Pane = iota
	PaneCallouts
)

// Dashboard displays the admin view of the queue and call-out jobs
type Dashboard struct {
	queueTable   table.Model
	calloutTable table.Model
	focus        Pane

	queue    []client.QueueEntry
	callouts []client.CalloutJob
	barbers  []client.Barber
	settings client.ShopSettings

	width  int
	height int
}

// New creates an empty dashboard; data arrives with the first poll
func New(settings client.ShopSettings, width, height int) *Dashboard {
	d := &Dashboard{
		settings: settings,
		width:    width,
		height:   height,
	}
	d.queueTable = newTable(queueColumns(), d.tableHeight())
	d.calloutTable = newTable(calloutColumns(), d.tableHeight())
	d.queueTable.Focus()
	d.calloutTable.Blur()
	return d
}

func newTable(cols []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.Text).
		Background(styles.Surface).
		Bold(true)
	t.SetStyles(s)
	return t
}

func queueColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 18},
		{Title: "Status", Width: 9},
		{Title: "Barber", Width: 14},
		{Title: "Wait", Width: 7},
	}
}

func calloutColumns() []table.Column {
	return []table.Column{
		{Title: "Customer", Width: 16},
		{Title: "Address", Width: 22},
		{Title: "Status", Width: 10},
		{Title: "Barber", Width: 14},
	}
}

// SetData replaces the table contents, keeping cursor positions
func (d *Dashboard) SetData(queue []client.QueueEntry, callouts []client.CalloutJob, barbers []client.Barber) {
	d.queue = queue
	d.callouts = callouts
	d.barbers = barbers
	d.rebuildRows()
}

func (d *Dashboard) rebuildRows() {
	queueRows := make([]table.Row, 0, len(d.queue))
	for _, e := range d.queue {
		wait := ""
		if e.Status == "waiting" && e.EstimatedWaitMin > 0 {
			wait = fmt.Sprintf("~%dm", e.EstimatedWaitMin)
		}
		queueRows = append(queueRows, table.Row{
			fmt.Sprintf("%d", e.Position),
			e.Name,
			e.Status,
			e.BarberName,
			wait,
		})
	}
	qCursor := d.queueTable.Cursor()
	d.queueTable.SetRows(queueRows)
	if qCursor < len(queueRows) {
		d.queueTable.SetCursor(qCursor)
	}

	calloutRows := make([]table.Row, 0, len(d.callouts))
	for _, c := range d.callouts {
		calloutRows = append(calloutRows, table.Row{
			c.CustomerName,
			c.Address,
			c.Status,
			c.BarberName,
		})
	}
	cCursor := d.calloutTable.Cursor()
	d.calloutTable.SetRows(calloutRows)
	if cCursor < len(calloutRows) {
		d.calloutTable.SetCursor(cCursor)
	}
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.queueTable.SetHeight(d.tableHeight())
	d.calloutTable.SetHeight(d.tableHeight())
}

func (d *Dashboard) tableHeight() int {
	// Title, fill bar, table headers, and section gaps eat about 10 rows
	h := (d.height - 10) / 2
	if h < 3 {
		h = 3
	}
	return h
}

// Focus returns the currently focused pane
func (d *Dashboard) Focus() Pane {
	return d.focus
}

// ToggleFocus switches between the queue and call-out tables
func (d *Dashboard) ToggleFocus() {
	if d.focus == PaneQueue {
		d.focus = PaneCallouts
		d.queueTable.Blur()
		d.calloutTable.Focus()
	} else {
		d.focus = PaneQueue
		d.calloutTable.Blur()
		d.queueTable.Focus()
	}
}

// Update forwards navigation keys to the focused table
func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if d.focus == PaneQueue {
		d.queueTable, cmd = d.queueTable.Update(msg)
	} else {
		d.calloutTable, cmd = d.calloutTable.Update(msg)
	}
	return cmd
}

// SelectedQueueEntry returns the queue entry under the cursor
func (d *Dashboard) SelectedQueueEntry() *client.QueueEntry {
	i := d.queueTable.Cursor()
	if i < 0 || i >= len(d.queue) {
		return nil
	}
	return &d.queue[i]
}

// SelectedCallout returns the call-out job under the cursor
func (d *Dashboard) SelectedCallout() *client.CalloutJob {
	i := d.calloutTable.Cursor()
	if i < 0 || i >= len(d.callouts) {
		return nil
	}
	return &d.callouts[i]
}

// NextBarber picks the first active barber for call-out assignment
func (d *Dashboard) NextBarber() *client.Barber {
	for i := range d.barbers {
		if d.barbers[i].Active {
			return &d.barbers[i]
		}
	}
	return nil
}

// MarkQueueStatus applies an optimistic local status change. The next
// poll replaces it with server truth either way.
func (d *Dashboard) MarkQueueStatus(id, status, barberName string) {
	for i := range d.queue {
		if d.queue[i].ID == id {
			d.queue[i].Status = status
			if barberName != "" {
				d.queue[i].BarberName = barberName
			}
			break
		}
	}
	d.rebuildRows()
}

// MarkCalloutAssigned applies an optimistic assignment
func (d *Dashboard) MarkCalloutAssigned(id, barberName string) {
	for i := range d.callouts {
		if d.callouts[i].ID == id {
			d.callouts[i].Status = "assigned"
			d.callouts[i].BarberName = barberName
			break
		}
	}
	d.rebuildRows()
}

// MarkCalloutCompleted applies an optimistic completion
func (d *Dashboard) MarkCalloutCompleted(id string) {
	for i := range d.callouts {
		if d.callouts[i].ID == id {
			d.callouts[i].Status = "completed"
			break
		}
	}
	d.rebuildRows()
}

// Waiting returns the number of queue entries still waiting
func (d *Dashboard) Waiting() int {
	n := 0
	for _, e := range d.queue {
		if e.Status == "waiting" {
			n++
		}
	}
	return n
}

// Pending returns the number of unassigned call-out jobs
func (d *Dashboard) Pending() int {
	n := 0
	for _, c := range d.callouts {
		if c.Status == "pending" {
			n++
		}
	}
	return n
}

// View renders the dashboard
func (d *Dashboard) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Shield.String() + " Shop Floor"))
	sb.WriteString("\n")
	sb.WriteString(widgets.QueueFillBar(d.Waiting(), d.settings.MaxQueueLength, 20))
	sb.WriteString("\n\n")

	queueTitle := fmt.Sprintf("%s Queue (%d)", icons.Queue.String(), len(d.queue))
	calloutTitle := fmt.Sprintf("%s Call-outs (%d pending)", icons.Van.String(), d.Pending())

	titleStyle := func(p Pane) lipgloss.Style {
		if d.focus == p {
			return lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(styles.Muted)
	}

	sb.WriteString(titleStyle(PaneQueue).Render(queueTitle))
	sb.WriteString("\n")
	sb.WriteString(d.queueTable.View())
	sb.WriteString("\n\n")
	sb.WriteString(titleStyle(PaneCallouts).Render(calloutTitle))
	sb.WriteString("\n")
	sb.WriteString(d.calloutTable.View())

	return lipgloss.NewStyle().
		Width(d.width).
		Height(d.height).
		Render(sb.String())
}
