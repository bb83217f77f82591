// ABOUTME: Gallery command for the barberslot CLI
// ABOUTME: Lists the shop's inspiration photos

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/barberslot/barberslot-cli/internal/client"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "List gallery photos",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGallery(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(galleryCmd)
}

// runGallery lists the gallery and returns an exit code
func runGallery(ctx context.Context, w io.Writer) int {
	c := newClient()

	images, err := c.Gallery(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(images, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatGalleryHuman(images))
	return 0
}

// formatGalleryHuman formats the gallery listing
func formatGalleryHuman(images []client.GalleryImage) string {
	if len(images) == 0 {
		return "Gallery is empty."
	}

	var sb strings.Builder
	for _, img := range images {
		caption := img.Caption
		if caption == "" {
			caption = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("%-12s %-30s %s\n", img.ID, caption, img.URL))
	}
	return strings.TrimRight(sb.String(), "\n")
}
