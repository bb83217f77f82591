// ABOUTME: Main menu for TUI startup
// ABOUTME: Item availability follows shop settings and the current session

package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/store"
	"github.com/barberslot/barberslot-cli/internal/tui/icons"
	"github.com/barberslot/barberslot-cli/internal/tui/styles"
)

// Item identifies a menu entry
type Item int

const (
	ItemBook Item = iota
	ItemQueue
	ItemCallout
	ItemGallery
	ItemSignIn
	ItemSignOut
	ItemAdmin
	ItemQuit
)

// ItemSelectedMsg is sent when an enabled item is chosen
type ItemSelectedMsg struct {
	Item Item
}

// CancelledMsg is sent when the user quits from the menu
type CancelledMsg struct{}

type entry struct {
	item    Item
	label   string
	icon    icons.Icon
	enabled bool
	note    string
}

// Menu is the main menu model
type Menu struct {
	entries []entry
	cursor  int
	width   int
}

// New builds the menu from the current settings and session. Disabled
// features stay visible with a note rather than disappearing.
func New(settings client.ShopSettings, session store.Session) *Menu {
	entries := []entry{
		{item: ItemBook, label: "Book an appointment", icon: icons.Scissors, enabled: true},
		{item: ItemQueue, label: "Walk-in queue", icon: icons.Queue, enabled: settings.WalkInsEnabled, note: "walk-ins off"},
		{item: ItemCallout, label: "Request a call-out", icon: icons.Van, enabled: settings.CalloutsEnabled, note: "call-outs off"},
		{item: ItemGallery, label: "Style gallery", icon: icons.Photo, enabled: settings.GalleryEnabled, note: "gallery off"},
	}

	if session.Status.IsAuthenticated {
		label := "Sign out"
		if session.CurrentUser != nil && session.CurrentUser.Name != "" {
			label = fmt.Sprintf("Sign out (%s)", session.CurrentUser.Name)
		}
		entries = append(entries, entry{item: ItemSignOut, label: label, icon: icons.Logout, enabled: true})
		if session.Status.UserType == store.UserTypeAdmin {
			entries = append(entries, entry{item: ItemAdmin, label: "Admin dashboard", icon: icons.Shield, enabled: true})
		}
	} else {
		entries = append(entries, entry{item: ItemSignIn, label: "Sign in", icon: icons.Login, enabled: true})
	}

	entries = append(entries, entry{item: ItemQuit, label: "Quit", icon: icons.Quit, enabled: true})

	return &Menu{entries: entries}
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			e := m.entries[m.cursor]
			if !e.enabled {
				return m, nil
			}
			if e.item == ItemQuit {
				return m, func() tea.Msg { return CancelledMsg{} }
			}
			return m, func() tea.Msg { return ItemSelectedMsg{Item: e.item} }
		case "q":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Menu) View() string {
	title := styles.Title.Render(icons.App.String() + " BarberSlot")
	subtitle := styles.Subtitle.Render("Book a chair, join the queue, or bring the barber to you")

	var lines string
	for i, e := range m.entries {
		cursor := "  "
		labelStyle := lipgloss.NewStyle().Foreground(styles.Text)
		if i == m.cursor {
			cursor = styles.KeyStyle.Render("> ")
			labelStyle = labelStyle.Bold(true).Foreground(styles.Primary)
		}
		label := labelStyle.Render(e.label)
		if !e.enabled {
			label = lipgloss.NewStyle().Foreground(styles.Muted).Render(e.label + " (" + e.note + ")")
		}
		lines += fmt.Sprintf("%s%s %s\n", cursor, e.icon.String(), label)
	}

	return title + "\n" + subtitle + "\n" + lines
}

// Selected returns the item under the cursor
func (m *Menu) Selected() Item {
	return m.entries[m.cursor].item
}
