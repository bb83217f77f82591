// ABOUTME: Shop settings slice of the store
// ABOUTME: Read-mostly server config with soft-failing refresh; never persisted

package store

import (
	"context"
	"log/slog"

	"github.com/barberslot/barberslot-cli/internal/client"
)

// DefaultSettings are applied before the first fetch completes so the
// settings slice is never nil.
func DefaultSettings() client.ShopSettings {
	return client.ShopSettings{
		ServicesEnabled:   true,
		GalleryEnabled:    true,
		CalloutsEnabled:   true,
		WalkInsEnabled:    true,
		MaxQueueLength:    10,
		BookingWindowDays: 14,
		SlotCapacity:      2,
	}
}

// SettingsPatch is a partial local update after an admin settings edit
type SettingsPatch struct {
	ServicesEnabled   *bool
	GalleryEnabled    *bool
	CalloutsEnabled   *bool
	WalkInsEnabled    *bool
	MaxQueueLength    *int
	BookingWindowDays *int
	SlotCapacity      *int
}

// Settings returns a copy of the current shop settings
func (s *Store) Settings() client.ShopSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// FetchSettings refreshes settings from the server, choosing the admin
// endpoint when an admin session exists. Failures are deliberately
// swallowed: stale-but-available beats a blank UI.
func (s *Store) FetchSettings(ctx context.Context) {
	s.mu.Lock()
	seq := s.dispatchLocked(SliceSettings)
	admin := s.session.Status.UserType == UserTypeAdmin
	s.mu.Unlock()

	var settings *client.ShopSettings
	var err error
	if admin {
		settings, err = s.api.AdminSettings(ctx)
	} else {
		settings, err = s.api.Settings(ctx)
	}
	if err != nil {
		slog.Debug("settings fetch failed, keeping previous values", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staleLocked(SliceSettings, seq) {
		return
	}
	s.settings = *settings
	s.notifyLocked(SliceSettings)
}

// PatchSettings merges a local update, used right after an admin submits
// the settings form so the UI reflects it without waiting for a refetch.
// It advances the slice sequence, so an in-flight fetch dispatched before
// the patch cannot clobber it.
func (s *Store) PatchSettings(patch SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchLocked(SliceSettings)
	if patch.ServicesEnabled != nil {
		s.settings.ServicesEnabled = *patch.ServicesEnabled
	}
	if patch.GalleryEnabled != nil {
		s.settings.GalleryEnabled = *patch.GalleryEnabled
	}
	if patch.CalloutsEnabled != nil {
		s.settings.CalloutsEnabled = *patch.CalloutsEnabled
	}
	if patch.WalkInsEnabled != nil {
		s.settings.WalkInsEnabled = *patch.WalkInsEnabled
	}
	if patch.MaxQueueLength != nil {
		s.settings.MaxQueueLength = *patch.MaxQueueLength
	}
	if patch.BookingWindowDays != nil {
		s.settings.BookingWindowDays = *patch.BookingWindowDays
	}
	if patch.SlotCapacity != nil {
		s.settings.SlotCapacity = *patch.SlotCapacity
	}
	s.notifyLocked(SliceSettings)
}
