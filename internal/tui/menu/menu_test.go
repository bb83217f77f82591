// ABOUTME: Tests for the main menu
// ABOUTME: Item availability must follow shop settings and the session

package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/store"
)

func allOn() client.ShopSettings {
	return store.DefaultSettings()
}

func guest() store.Session {
	return store.Session{Status: store.SessionStatus{UserType: store.UserTypeNone}}
}

func customer() store.Session {
	return store.Session{
		CurrentUser: &client.User{ID: "u-1", Name: "Sam"},
		AuthToken:   "tok",
		Status: store.SessionStatus{
			IsAuthenticated: true,
			UserType:        store.UserTypeCustomer,
		},
	}
}

func admin() store.Session {
	s := customer()
	s.Status.UserType = store.UserTypeAdmin
	return s
}

func items(m *Menu) []Item {
	var out []Item
	for _, e := range m.entries {
		out = append(out, e.item)
	}
	return out
}

func TestMenuGuestEntries(t *testing.T) {
	m := New(allOn(), guest())

	got := items(m)
	want := []Item{ItemBook, ItemQueue, ItemCallout, ItemGallery, ItemSignIn, ItemQuit}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestMenuAdminGetsDashboard(t *testing.T) {
	m := New(allOn(), admin())

	found := false
	for _, it := range items(m) {
		if it == ItemAdmin {
			found = true
		}
		if it == ItemSignIn {
			t.Error("signed-in menu must not offer sign in")
		}
	}
	if !found {
		t.Error("expected admin dashboard entry for admin session")
	}
}

func TestMenuCustomerHasNoDashboard(t *testing.T) {
	m := New(allOn(), customer())

	for _, it := range items(m) {
		if it == ItemAdmin {
			t.Error("customer session must not see the admin dashboard")
		}
	}
}

func TestMenuDisabledFeaturesStayVisible(t *testing.T) {
	settings := allOn()
	settings.WalkInsEnabled = false
	settings.GalleryEnabled = false
	m := New(settings, guest())

	view := m.View()
	if !strings.Contains(view, "walk-ins off") {
		t.Error("disabled walk-ins should show a note, not vanish")
	}
	if !strings.Contains(view, "gallery off") {
		t.Error("disabled gallery should show a note, not vanish")
	}
}

func TestMenuDisabledItemNotSelectable(t *testing.T) {
	settings := allOn()
	settings.WalkInsEnabled = false
	m := New(settings, guest())

	// Move cursor onto the queue entry and press enter
	m.cursor = 1
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("selecting a disabled entry must be a no-op")
	}
}

func TestMenuEnterEmitsSelection(t *testing.T) {
	m := New(allOn(), guest())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from selection")
	}
	msg := cmd()
	sel, ok := msg.(ItemSelectedMsg)
	if !ok {
		t.Fatalf("expected ItemSelectedMsg, got %T", msg)
	}
	if sel.Item != ItemBook {
		t.Errorf("expected ItemBook, got %d", sel.Item)
	}
}

func TestMenuQuitEmitsCancelled(t *testing.T) {
	m := New(allOn(), guest())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a command from quit")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Error("expected CancelledMsg")
	}
}
