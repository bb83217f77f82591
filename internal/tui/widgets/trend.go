// ABOUTME: Trend widget renders mini history charts using block characters
// ABOUTME: Compact view of how queue depth has moved over recent polls

package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/barberslot/barberslot-cli/internal/tui/styles"
)

// trendBlocks are the Unicode block characters for different heights
var trendBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Trend renders a compact history of counts, most recent last.
// Each sample is colored against limit: green while there is room,
// amber when close, red at or over.
func Trend(counts []int, width, limit int) string {
	if len(counts) == 0 || width <= 0 {
		return ""
	}

	sampled := sampleCounts(counts, width)

	min, max := sampled[0], sampled[0]
	for _, v := range sampled {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var sb []byte
	for _, v := range sampled {
		block := string(countToBlock(v, min, max))
		sb = append(sb, trendColor(v, limit).Render(block)...)
	}
	return string(sb)
}

func trendColor(count, limit int) lipgloss.Style {
	if limit <= 0 {
		return lipgloss.NewStyle().Foreground(styles.Accent)
	}
	switch {
	case count >= limit:
		return lipgloss.NewStyle().Foreground(styles.Danger)
	case count*4 >= limit*3:
		return lipgloss.NewStyle().Foreground(styles.Warning)
	default:
		return lipgloss.NewStyle().Foreground(styles.Secondary)
	}
}

// sampleCounts resamples the history to the target width
func sampleCounts(counts []int, width int) []int {
	if len(counts) == width {
		return counts
	}

	result := make([]int, width)

	if len(counts) < width {
		// Pad at the beginning so the line grows from the right
		copy(result[width-len(counts):], counts)
	} else {
		ratio := float64(len(counts)) / float64(width)
		for i := 0; i < width; i++ {
			idx := int(float64(i) * ratio)
			if idx >= len(counts) {
				idx = len(counts) - 1
			}
			result[i] = counts[idx]
		}
	}

	return result
}

// countToBlock maps a count to a block character by its position in the range
func countToBlock(count, min, max int) rune {
	if max == min {
		return trendBlocks[len(trendBlocks)/2]
	}

	idx := (count - min) * (len(trendBlocks) - 1) / (max - min)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(trendBlocks) {
		idx = len(trendBlocks) - 1
	}

	return trendBlocks[idx]
}
