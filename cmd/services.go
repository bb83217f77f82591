// ABOUTME: Services command for the barberslot CLI
// ABOUTME: Lists the bookable service catalog

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

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List bookable services",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runServices(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

// runServices lists the service catalog and returns an exit code
func runServices(ctx context.Context, w io.Writer) int {
	c := newClient()

	services, err := c.Services(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(services, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatServicesHuman(services))
	return 0
}

// formatServicesHuman formats the catalog for human readability
func formatServicesHuman(services []client.Service) string {
	if len(services) == 0 {
		return "No services available."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %-24s %8s %10s\n", "ID", "Service", "Duration", "Price"))
	for _, s := range services {
		sb.WriteString(fmt.Sprintf("%-12s %-24s %5d min %9.2f\n",
			s.ID, s.Name, s.DurationMin, float64(s.PriceCents)/100))
	}
	return strings.TrimRight(sb.String(), "\n")
}
