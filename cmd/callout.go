// ABOUTME: Callout command for the barberslot CLI
// ABOUTME: Requests a mobile barber visit

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/barberslot/barberslot-cli/internal/client"
)

var (
	calloutName    string
	calloutPhone   string
	calloutAddress string
	calloutDetails string
	calloutTime    string
)

var calloutCmd = &cobra.Command{
	Use:   "callout",
	Short: "Request a call-out visit",
	Long:  `Request a mobile barber visit to your address. The shop calls back to confirm a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCallout(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	calloutCmd.Flags().StringVar(&calloutName, "name", "", "Your name (required)")
	calloutCmd.Flags().StringVar(&calloutPhone, "phone", "", "Contact phone (required)")
	calloutCmd.Flags().StringVar(&calloutAddress, "address", "", "Visit address (required)")
	calloutCmd.Flags().StringVar(&calloutDetails, "details", "", "Access notes or other details")
	calloutCmd.Flags().StringVar(&calloutTime, "time", "", "Preferred time")
	calloutCmd.MarkFlagRequired("name")
	calloutCmd.MarkFlagRequired("phone")
	calloutCmd.MarkFlagRequired("address")
	rootCmd.AddCommand(calloutCmd)
}

// runCallout submits the request and returns an exit code
func runCallout(ctx context.Context, w io.Writer) int {
	c := newClient()

	req := &client.CalloutRequest{
		Name:          calloutName,
		Phone:         calloutPhone,
		Address:       calloutAddress,
		Details:       calloutDetails,
		PreferredTime: calloutTime,
	}

	job, err := c.CreateCallout(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		if client.IsValidation(err) {
			return 1
		}
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(job, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Call-out requested: %s\nWe'll call %s to confirm.\n", job.ID, job.Phone)
	return 0
}
