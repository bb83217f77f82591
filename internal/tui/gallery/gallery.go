// ABOUTME: Style gallery browser
// ABOUTME: Scrollable list of inspiration photos with captions

package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/tui/icons"
	"github.com/barberslot/barberslot-cli/internal/tui/styles"
)

// Gallery lists the shop's inspiration photos
type Gallery struct {
	images []client.GalleryImage
	cursor int
	width  int
	height int
}

// New creates a gallery view with current data
func New(images []client.GalleryImage, width, height int) *Gallery {
	return &Gallery{images: images, width: width, height: height}
}

// SetSize updates the view dimensions
func (g *Gallery) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// MoveUp moves the cursor up
func (g *Gallery) MoveUp() {
	if g.cursor > 0 {
		g.cursor--
	}
}

// MoveDown moves the cursor down
func (g *Gallery) MoveDown() {
	if g.cursor < len(g.images)-1 {
		g.cursor++
	}
}

// Selected returns the image under the cursor, or nil when empty
func (g *Gallery) Selected() *client.GalleryImage {
	if len(g.images) == 0 {
		return nil
	}
	return &g.images[g.cursor]
}

// View renders the gallery
func (g *Gallery) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Photo.String() + " Style Gallery"))
	sb.WriteString("\n")

	if len(g.images) == 0 {
		sb.WriteString(styles.Subtitle.Render("Nothing here yet."))
		return lipgloss.NewStyle().Width(g.width).Height(g.height).Render(sb.String())
	}

	for i, img := range g.images {
		cursor := "  "
		captionStyle := lipgloss.NewStyle().Foreground(styles.Text)
		if i == g.cursor {
			cursor = styles.KeyStyle.Render("> ")
			captionStyle = captionStyle.Bold(true).Foreground(styles.Primary)
		}
		caption := img.Caption
		if caption == "" {
			caption = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", cursor, captionStyle.Render(caption)))
		if i == g.cursor {
			sb.WriteString("    " + lipgloss.NewStyle().Foreground(styles.Info).Render(img.URL) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(g.width).
		Height(g.height).
		Render(sb.String())
}
