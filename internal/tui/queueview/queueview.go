// ABOUTME: Walk-in queue display for customers
// ABOUTME: Shows live positions, wait estimates, and queue fullness

package queueview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/tui/icons"
	"github.com/barberslot/barberslot-cli/internal/tui/styles"
	"github.com/barberslot/barberslot-cli/internal/tui/widgets"
)

// historyLen caps the queue-depth history kept between polls
const historyLen = 30

// QueueView displays the live walk-in queue
type QueueView struct {
	entries  []client.QueueEntry
	settings client.ShopSettings
	history  []int
	width    int
	height   int
}

// New creates a queue view with current data
func New(entries []client.QueueEntry, settings client.ShopSettings, width, height int) *QueueView {
	q := &QueueView{
		entries:  entries,
		settings: settings,
		width:    width,
		height:   height,
	}
	q.history = append(q.history, q.Waiting())
	return q
}

// Update refreshes the view with new queue data
func (q *QueueView) Update(entries []client.QueueEntry) {
	q.entries = entries
	q.history = append(q.history, q.Waiting())
	if len(q.history) > historyLen {
		q.history = q.history[len(q.history)-historyLen:]
	}
}

// SetSize updates the view dimensions
func (q *QueueView) SetSize(width, height int) {
	q.width = width
	q.height = height
}

// Waiting returns the number of entries still waiting
func (q *QueueView) Waiting() int {
	n := 0
	for _, e := range q.entries {
		if e.Status == "waiting" {
			n++
		}
	}
	return n
}

// View renders the queue
func (q *QueueView) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Queue.String() + " Walk-in Queue"))
	sb.WriteString("\n")

	waiting := q.Waiting()
	sb.WriteString(widgets.QueueFillBar(waiting, q.settings.MaxQueueLength, 20))
	sb.WriteString("\n\n")

	if len(q.entries) == 0 {
		sb.WriteString(styles.Subtitle.Render("No one is waiting. Walk right in."))
	}

	for _, e := range q.entries {
		line := fmt.Sprintf("%2d. %-20s %s", e.Position, e.Name, widgets.QueueBadge(e.Status))
		if e.Status == "waiting" && e.EstimatedWaitMin > 0 {
			line += fmt.Sprintf("  ~%d min", e.EstimatedWaitMin)
		}
		if e.Status == "called" && e.BarberName != "" {
			line += "  " + styles.StatusWarning.Render("chair with "+e.BarberName)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if waiting >= q.settings.MaxQueueLength && q.settings.MaxQueueLength > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusCritical.Render("Queue is full - check back shortly"))
	}

	if len(q.history) > 1 {
		sb.WriteString("\n\n")
		sb.WriteString(styles.Subtitle.Render("Trend: "))
		sb.WriteString(widgets.Trend(q.history, 20, q.settings.MaxQueueLength))
	}

	return lipgloss.NewStyle().
		Width(q.width).
		Height(q.height).
		Render(sb.String())
}
