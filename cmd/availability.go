// ABOUTME: Availability command for the barberslot CLI
// ABOUTME: Lists open dates, or open times for a given date

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
)

var availabilityDate string

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Show open booking slots",
	Long:  `List dates with open slots, or pass --date to list the open times on that day.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAvailability(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	availabilityCmd.Flags().StringVar(&availabilityDate, "date", "", "Date to list open times for (YYYY-MM-DD)")
	rootCmd.AddCommand(availabilityCmd)
}

// runAvailability lists slots and returns an exit code
func runAvailability(ctx context.Context, w io.Writer) int {
	c := newClient()

	if availabilityDate != "" {
		times, err := c.AvailableTimes(ctx, availabilityDate)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(map[string]any{"date": availabilityDate, "times": times}, "", "  ")
			fmt.Fprintln(w, string(data))
			return 0
		}
		if len(times) == 0 {
			fmt.Fprintf(w, "No open slots on %s.\n", availabilityDate)
			return 0
		}
		fmt.Fprintf(w, "Open slots on %s:\n  %s\n", availabilityDate, strings.Join(times, "  "))
		return 0
	}

	dates, err := c.AvailableDates(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{"dates": dates}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}
	if len(dates) == 0 {
		fmt.Fprintln(w, "No open dates in the booking window.")
		return 0
	}
	fmt.Fprintln(w, "Dates with open slots:")
	for _, d := range dates {
		fmt.Fprintf(w, "  %s\n", d)
	}
	return 0
}
