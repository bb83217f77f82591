// ABOUTME: Durable persistence for the store's allow-listed state
// ABOUTME: Single JSON record in the XDG config directory

package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/barberslot/barberslot-cli/internal/client"
)

// PersistedStatus is the status triple as written to disk. IsLoading is
// always false on write; a process never resumes mid-load.
type PersistedStatus struct {
	IsAuthenticated bool     `json:"is_authenticated"`
	IsLoading       bool     `json:"is_loading"`
	UserType        UserType `json:"user_type"`
}

// PersistedAuth is the durable authentication state. ErrorMessage is
// always null on write; errors are ephemeral.
type PersistedAuth struct {
	CurrentUser  *client.User    `json:"current_user"`
	AuthToken    string          `json:"auth_token"`
	Status       PersistedStatus `json:"status"`
	ErrorMessage *string         `json:"error_message"`
}

// Record is the single named record written to durable storage. Shop
// settings are deliberately absent: they are server-authoritative and
// always refetched.
type Record struct {
	Authentication PersistedAuth `json:"authentication"`
	BookingDraft   BookingDraft  `json:"booking_draft"`
}

// Persister reads and writes the state record in a config directory
type Persister struct {
	configDir string
}

// NewPersister creates a persister rooted at the given config directory
func NewPersister(configDir string) *Persister {
	return &Persister{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "barberslot")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "barberslot")
}

func (p *Persister) stateFile() string {
	return filepath.Join(p.configDir, "state.json")
}

// Load reads the persisted record. A missing or corrupt file yields nil:
// the store starts fresh rather than failing startup.
func (p *Persister) Load() *Record {
	data, err := os.ReadFile(p.stateFile())
	if err != nil {
		return nil
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil
	}
	return &rec
}

// Save writes the record. The file holds a bearer token, so it is written
// 0600 in a 0700 directory.
func (p *Persister) Save(rec Record) error {
	if err := os.MkdirAll(p.configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.stateFile(), data, 0600)
}
