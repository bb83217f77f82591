// ABOUTME: Progress bar with visual threshold zones
// ABOUTME: Used for queue-fullness and capacity-aware displays

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBarConfig holds configuration for the progress bar
type ProgressBarConfig struct {
	Width         int
	WarnThreshold float64 // Percentage where warning zone starts (default 70)
	CritThreshold float64 // Percentage where critical zone starts (default 90)
	OKColor       lipgloss.Color
	WarnColor     lipgloss.Color
	CritColor     lipgloss.Color
	EmptyColor    lipgloss.Color
	ShowZones     bool // Show threshold markers in the bar
}

// DefaultProgressBarConfig returns sensible defaults
func DefaultProgressBarConfig() ProgressBarConfig {
	return ProgressBarConfig{
		Width:         20,
		WarnThreshold: 70,
		CritThreshold: 90,
		OKColor:       lipgloss.Color("#10B981"), // Green
		WarnColor:     lipgloss.Color("#F59E0B"), // Amber
		CritColor:     lipgloss.Color("#EF4444"), // Red
		EmptyColor:    lipgloss.Color("#374151"), // Dark gray
		ShowZones:     true,
	}
}

// ProgressBar renders a progress bar with threshold zones
func ProgressBar(percent float64, config ProgressBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(config.Width))
	if filled > config.Width {
		filled = config.Width
	}

	warnPos := int(config.WarnThreshold / 100.0 * float64(config.Width))
	critPos := int(config.CritThreshold / 100.0 * float64(config.Width))

	var bar strings.Builder
	bar.WriteString("[")

	for i := 0; i < config.Width; i++ {
		var char string
		var color lipgloss.Color

		if i < filled {
			char = "█"
			if i >= critPos {
				color = config.CritColor
			} else if i >= warnPos {
				color = config.WarnColor
			} else {
				color = config.OKColor
			}
		} else {
			if config.ShowZones && (i == warnPos || i == critPos) {
				char = "│"
			} else {
				char = "░"
			}
			color = config.EmptyColor
		}

		bar.WriteString(lipgloss.NewStyle().Foreground(color).Render(char))
	}

	bar.WriteString("]")
	return bar.String()
}

// QueueFillBar renders the queue occupancy against the shop's queue cap
func QueueFillBar(waiting, maxLength, width int) string {
	if maxLength <= 0 {
		maxLength = 1
	}
	percent := float64(waiting) / float64(maxLength) * 100

	config := DefaultProgressBarConfig()
	config.Width = width
	bar := ProgressBar(percent, config)

	label := fmt.Sprintf("%d/%d waiting", waiting, maxLength)
	var color lipgloss.Color
	switch StatusFromPercent(percent, config.WarnThreshold, config.CritThreshold) {
	case StatusCritical:
		color = config.CritColor
	case StatusWarning:
		color = config.WarnColor
	default:
		color = config.OKColor
	}

	return bar + " " + lipgloss.NewStyle().Foreground(color).Render(label)
}
