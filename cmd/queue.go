// ABOUTME: Queue command for the barberslot CLI
// ABOUTME: Shows the walk-in queue, optionally polling for changes

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
	"time"

	"github.com/spf13/cobra"

	"github.com/barberslot/barberslot-cli/internal/client"
)

var queueWatch bool

const queueWatchInterval = 5 * time.Second

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the walk-in queue",
	Long:  `Display the current walk-in queue. Pass --watch to refresh every few seconds until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runQueue(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	queueCmd.Flags().BoolVar(&queueWatch, "watch", false, "Poll the queue until interrupted")
	rootCmd.AddCommand(queueCmd)
}

// runQueue shows the queue once, or repeatedly with --watch
func runQueue(ctx context.Context, w io.Writer) int {
	c := newClient()

	if !queueWatch {
		return printQueue(ctx, c, w)
	}

	ticker := time.NewTicker(queueWatchInterval)
	defer ticker.Stop()

	for {
		if code := printQueue(ctx, c, w); code != 0 {
			return code
		}
		select {
		case <-ctx.Done():
			return 0
		case <-ticker.C:
		}
	}
}

func printQueue(ctx context.Context, c *client.Client, w io.Writer) int {
	entries, err := c.Queue(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return 0
		}
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatQueueHuman(entries))
	return 0
}

// formatQueueHuman formats the queue for human readability
func formatQueueHuman(entries []client.QueueEntry) string {
	if len(entries) == 0 {
		return "Queue is empty. Walk right in."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%3s  %-20s %-8s %-14s %s\n", "#", "Name", "Status", "Barber", "Wait"))
	for _, e := range entries {
		wait := ""
		if e.Status == "waiting" && e.EstimatedWaitMin > 0 {
			wait = fmt.Sprintf("~%d min", e.EstimatedWaitMin)
		}
		sb.WriteString(fmt.Sprintf("%3d  %-20s %-8s %-14s %s\n",
			e.Position, e.Name, e.Status, e.BarberName, wait))
	}
	return strings.TrimRight(sb.String(), "\n")
}
