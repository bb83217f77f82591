// ABOUTME: Book command for the barberslot CLI
// ABOUTME: Scripted booking submission with idempotent retries

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/barberslot/barberslot-cli/internal/client"
)

var (
	bookService string
	bookDate    string
	bookTime    string
	bookName    string
	bookEmail   string
	bookPhone   string
	bookFor     string
	bookRequest string
	bookKey     string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book an appointment",
	Long: `Submit a booking directly from flags. For the guided flow, use the
interactive UI instead (run barberslot with no arguments).

Pass --idempotency-key to make retries of the same booking safe; one is
generated otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBook(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	bookCmd.Flags().StringVar(&bookService, "service", "", "Service ID (optional, decide at the chair if omitted)")
	bookCmd.Flags().StringVar(&bookDate, "date", "", "Date (YYYY-MM-DD, required)")
	bookCmd.Flags().StringVar(&bookTime, "time", "", "Time slot (HH:MM, required)")
	bookCmd.Flags().StringVar(&bookName, "name", "", "Your name (required)")
	bookCmd.Flags().StringVar(&bookEmail, "email", "", "Contact email (required)")
	bookCmd.Flags().StringVar(&bookPhone, "phone", "", "Contact phone (required)")
	bookCmd.Flags().StringVar(&bookFor, "for", "", "Who the appointment is for, if not you")
	bookCmd.Flags().StringVar(&bookRequest, "request", "", "Special request for the barber")
	bookCmd.Flags().StringVar(&bookKey, "idempotency-key", "", "Key for safe retries")
	bookCmd.MarkFlagRequired("date")
	bookCmd.MarkFlagRequired("time")
	bookCmd.MarkFlagRequired("name")
	bookCmd.MarkFlagRequired("email")
	bookCmd.MarkFlagRequired("phone")
	rootCmd.AddCommand(bookCmd)
}

// runBook submits the booking and returns an exit code
func runBook(ctx context.Context, w io.Writer) int {
	c := newClient()

	key := bookKey
	if key == "" {
		key = uuid.NewString()
	}

	req := &client.BookingRequest{
		ServiceID:      bookService,
		Date:           bookDate,
		Time:           bookTime,
		Name:           bookName,
		Email:          bookEmail,
		Phone:          bookPhone,
		BookingFor:     bookFor,
		SpecialRequest: bookRequest,
	}

	booking, err := c.CreateBooking(ctx, req, key)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		if client.IsValidation(err) {
			return 1
		}
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(booking, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatBookingHuman(booking))
	return 0
}

// formatBookingHuman formats a confirmed booking
func formatBookingHuman(b *client.Booking) string {
	out := fmt.Sprintf(`Booking confirmed: %s
Date:    %s
Time:    %s
For:     %s`, b.ID, b.Date, b.Time, b.CustomerName)
	if b.ServiceName != "" {
		out += fmt.Sprintf("\nService: %s", b.ServiceName)
	}
	return out
}
