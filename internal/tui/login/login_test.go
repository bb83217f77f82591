// ABOUTME: Tests for the sign-in screen
// ABOUTME: Validates mode cycling and the second-factor rebuild

package login

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLoginStartsInCustomerMode(t *testing.T) {
	l := New()
	if l.Mode() != ModeCustomer {
		t.Errorf("expected customer mode, got %d", l.Mode())
	}
}

func TestTabCyclesModes(t *testing.T) {
	l := New()

	tab := tea.KeyMsg{Type: tea.KeyTab}
	model, _ := l.Update(tab)
	l = model.(*Login)
	if l.Mode() != ModeAdmin {
		t.Errorf("expected admin mode after one tab, got %d", l.Mode())
	}

	model, _ = l.Update(tab)
	l = model.(*Login)
	if l.Mode() != ModeRegister {
		t.Errorf("expected register mode after two tabs, got %d", l.Mode())
	}

	model, _ = l.Update(tab)
	l = model.(*Login)
	if l.Mode() != ModeCustomer {
		t.Errorf("expected wrap to customer mode, got %d", l.Mode())
	}
}

func TestRequireSecondFactorPinsAdminMode(t *testing.T) {
	l := New()
	l.email = "admin@test.com"
	l.password = "pass"

	l.RequireSecondFactor()

	if l.Mode() != ModeAdmin {
		t.Error("expected admin mode after second factor requirement")
	}
	if l.email != "admin@test.com" {
		t.Error("entered email must survive the rebuild")
	}

	// Tab must not leave the admin form while a code is pending
	model, _ := l.Update(tea.KeyMsg{Type: tea.KeyTab})
	l = model.(*Login)
	if l.Mode() != ModeAdmin {
		t.Error("tab must be ignored while awaiting the code")
	}
}

func TestSetErrorClearsSecrets(t *testing.T) {
	l := New()
	l.password = "wrong"
	l.submitting = true

	l.SetError("invalid email or password")

	if l.password != "" {
		t.Error("password must be cleared after a failure")
	}
	if l.submitting {
		t.Error("form must reopen after a failure")
	}
	if !strings.Contains(l.View(), "invalid email or password") {
		t.Error("expected error banner in view")
	}
}

func TestEscEmitsCancelled(t *testing.T) {
	l := New()

	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Error("expected CancelledMsg")
	}
}
