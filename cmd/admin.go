// ABOUTME: Admin command tree for the barberslot CLI
// ABOUTME: Shop settings, staff, customers, bookings, gallery, queue, and call-outs

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

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Shop administration",
	Long:  `Administrative commands. Sign in first with 'barberslot login --admin'.`,
}

func init() {
	adminCmd.AddCommand(adminOverviewCmd)
	adminCmd.AddCommand(adminSettingsCmd)
	adminCmd.AddCommand(adminBarbersCmd)
	adminCmd.AddCommand(adminCustomersCmd)
	adminCmd.AddCommand(adminBookingsCmd)
	adminCmd.AddCommand(adminGalleryCmd)
	adminCmd.AddCommand(adminQueueCmd)
	adminCmd.AddCommand(adminCalloutsCmd)
	rootCmd.AddCommand(adminCmd)
}

// adminExit maps an error to an exit code and prints it
func adminExit(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	if client.IsAuth(err) || client.IsValidation(err) {
		return 1
	}
	return 2
}

// runAdmin wraps the signal context and exit plumbing shared by all leaves
func runAdmin(run func(ctx context.Context, w io.Writer) int) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := run(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	}
}

// ---- overview ----

var adminOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the live queue and call-out jobs",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		overview, err := c.AdminOverview(ctx)
		if err != nil {
			return adminExit(w, err)
		}

		if IsJSONOutput() {
			data, _ := json.MarshalIndent(overview, "", "  ")
			fmt.Fprintln(w, string(data))
			return 0
		}

		fmt.Fprintln(w, "Queue:")
		fmt.Fprintln(w, formatQueueHuman(overview.Queue))
		fmt.Fprintln(w, "\nCall-outs:")
		fmt.Fprintln(w, formatCalloutsHuman(overview.Callouts))
		return 0
	}),
}

// ---- settings ----

var (
	settingsFlags struct {
		services bool
		gallery  bool
		callouts bool
		walkIns  bool
		maxQueue int
		window   int
		capacity int
	}
)

var adminSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change shop settings",
	Long:  `Without flags, prints the current settings. Flags update the named settings and leave the rest unchanged.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runAdminSettings(ctx, cmd, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

// runAdminSettings shows settings, applying any flag changes first
func runAdminSettings(ctx context.Context, cmd *cobra.Command, w io.Writer) int {
	c := newClient()

	settings, err := c.AdminSettings(ctx)
	if err != nil {
		return adminExit(w, err)
	}

	changed := false
	if cmd.Flags().Changed("services") {
		settings.ServicesEnabled = settingsFlags.services
		changed = true
	}
	if cmd.Flags().Changed("gallery") {
		settings.GalleryEnabled = settingsFlags.gallery
		changed = true
	}
	if cmd.Flags().Changed("callouts") {
		settings.CalloutsEnabled = settingsFlags.callouts
		changed = true
	}
	if cmd.Flags().Changed("walk-ins") {
		settings.WalkInsEnabled = settingsFlags.walkIns
		changed = true
	}
	if cmd.Flags().Changed("max-queue") {
		settings.MaxQueueLength = settingsFlags.maxQueue
		changed = true
	}
	if cmd.Flags().Changed("booking-window") {
		settings.BookingWindowDays = settingsFlags.window
		changed = true
	}
	if cmd.Flags().Changed("slot-capacity") {
		settings.SlotCapacity = settingsFlags.capacity
		changed = true
	}

	if changed {
		settings, err = c.UpdateSettings(ctx, settings)
		if err != nil {
			return adminExit(w, err)
		}
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(settings, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatSettingsHuman(settings))
	return 0
}

func init() {
	f := adminSettingsCmd.Flags()
	f.BoolVar(&settingsFlags.services, "services", true, "Enable the service catalog")
	f.BoolVar(&settingsFlags.gallery, "gallery", true, "Enable the gallery")
	f.BoolVar(&settingsFlags.callouts, "callouts", true, "Enable call-out bookings")
	f.BoolVar(&settingsFlags.walkIns, "walk-ins", true, "Enable the walk-in queue")
	f.IntVar(&settingsFlags.maxQueue, "max-queue", 10, "Maximum walk-in queue length")
	f.IntVar(&settingsFlags.window, "booking-window", 14, "Booking window in days")
	f.IntVar(&settingsFlags.capacity, "slot-capacity", 2, "Bookings per slot")
}

// formatSettingsHuman formats shop settings
func formatSettingsHuman(s *client.ShopSettings) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf(`Services:        %s
Gallery:         %s
Call-outs:       %s
Walk-ins:        %s
Max queue:       %d
Booking window:  %d days
Slot capacity:   %d`,
		onOff(s.ServicesEnabled), onOff(s.GalleryEnabled), onOff(s.CalloutsEnabled),
		onOff(s.WalkInsEnabled), s.MaxQueueLength, s.BookingWindowDays, s.SlotCapacity)
}

// ---- barbers ----

var (
	barberName      string
	barberSpecialty string
)

var adminBarbersCmd = &cobra.Command{
	Use:   "barbers",
	Short: "Manage staff",
}

var adminBarbersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List barbers",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		barbers, err := c.Barbers(ctx)
		if err != nil {
			return adminExit(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(barbers, "", "  ")
			fmt.Fprintln(w, string(data))
			return 0
		}
		for _, b := range barbers {
			state := "active"
			if !b.Active {
				state = "inactive"
			}
			fmt.Fprintf(w, "%-12s %-20s %-16s %s\n", b.ID, b.Name, b.Specialty, state)
		}
		return 0
	}),
}

var adminBarbersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a barber",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		b, err := c.CreateBarber(ctx, barberName, barberSpecialty)
		if err != nil {
			return adminExit(w, err)
		}
		fmt.Fprintf(w, "Added %s (%s)\n", b.Name, b.ID)
		return 0
	}),
}

var adminBarbersRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a barber",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient()
		if err := c.DeleteBarber(ctx, args[0]); err != nil {
			os.Exit(adminExit(os.Stdout, err))
		}
		fmt.Println("Removed.")
	},
}

func init() {
	adminBarbersAddCmd.Flags().StringVar(&barberName, "name", "", "Barber name (required)")
	adminBarbersAddCmd.Flags().StringVar(&barberSpecialty, "specialty", "", "Specialty")
	adminBarbersAddCmd.MarkFlagRequired("name")
	adminBarbersCmd.AddCommand(adminBarbersListCmd)
	adminBarbersCmd.AddCommand(adminBarbersAddCmd)
	adminBarbersCmd.AddCommand(adminBarbersRemoveCmd)
}

// ---- customers ----

var adminCustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers",
}

var adminCustomersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		customers, err := c.Customers(ctx)
		if err != nil {
			return adminExit(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(customers, "", "  ")
			fmt.Fprintln(w, string(data))
			return 0
		}
		for _, cu := range customers {
			verified := ""
			if cu.Verified {
				verified = "verified"
			}
			fmt.Fprintf(w, "%-12s %-20s %-28s %-14s %s\n", cu.ID, cu.Name, cu.Email, cu.Phone, verified)
		}
		return 0
	}),
}

var adminCustomersRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a customer account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient()
		if err := c.DeleteCustomer(ctx, args[0]); err != nil {
			os.Exit(adminExit(os.Stdout, err))
		}
		fmt.Println("Removed.")
	},
}

func init() {
	adminCustomersCmd.AddCommand(adminCustomersListCmd)
	adminCustomersCmd.AddCommand(adminCustomersRemoveCmd)
}

// ---- bookings ----

var adminBookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Manage bookings",
}

var adminBookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		bookings, err := c.AdminBookings(ctx)
		if err != nil {
			return adminExit(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(bookings, "", "  ")
			fmt.Fprintln(w, string(data))
			return 0
		}
		for _, b := range bookings {
			fmt.Fprintf(w, "%-12s %s %s  %-20s %-20s %s\n",
				b.ID, b.Date, b.Time, b.CustomerName, b.ServiceName, b.Status)
		}
		return 0
	}),
}

var adminBookingsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient()
		if err := c.CancelBooking(ctx, args[0]); err != nil {
			os.Exit(adminExit(os.Stdout, err))
		}
		fmt.Println("Cancelled.")
	},
}

func init() {
	adminBookingsCmd.AddCommand(adminBookingsListCmd)
	adminBookingsCmd.AddCommand(adminBookingsCancelCmd)
}

// ---- gallery ----

var (
	galleryURL     string
	galleryCaption string
)

var adminGalleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Manage gallery photos",
}

var adminGalleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gallery photos",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		images, err := c.AdminGallery(ctx)
		if err != nil {
			return adminExit(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(images, "", "  ")
			fmt.Fprintln(w, string(data))
			return 0
		}
		fmt.Fprintln(w, formatGalleryHuman(images))
		return 0
	}),
}

var adminGalleryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a gallery photo",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		img, err := c.AddGalleryImage(ctx, galleryURL, galleryCaption)
		if err != nil {
			return adminExit(w, err)
		}
		fmt.Fprintf(w, "Added %s\n", img.ID)
		return 0
	}),
}

var adminGalleryRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a gallery photo",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient()
		if err := c.DeleteGalleryImage(ctx, args[0]); err != nil {
			os.Exit(adminExit(os.Stdout, err))
		}
		fmt.Println("Removed.")
	},
}

func init() {
	adminGalleryAddCmd.Flags().StringVar(&galleryURL, "url", "", "Image URL (required)")
	adminGalleryAddCmd.Flags().StringVar(&galleryCaption, "caption", "", "Caption")
	adminGalleryAddCmd.MarkFlagRequired("url")
	adminGalleryCmd.AddCommand(adminGalleryListCmd)
	adminGalleryCmd.AddCommand(adminGalleryAddCmd)
	adminGalleryCmd.AddCommand(adminGalleryRemoveCmd)
}

// ---- queue ----

var walkInName string

var adminQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Manage the walk-in queue",
}

var adminQueueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the queue including served entries",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		entries, err := c.AdminQueue(ctx)
		if err != nil {
			return adminExit(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(entries, "", "  ")
			fmt.Fprintln(w, string(data))
			return 0
		}
		fmt.Fprintln(w, formatQueueHuman(entries))
		return 0
	}),
}

var adminQueueAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a walk-in to the queue",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		entry, err := c.AddWalkIn(ctx, walkInName)
		if err != nil {
			return adminExit(w, err)
		}
		fmt.Fprintf(w, "Added %s at position %d\n", entry.Name, entry.Position)
		return 0
	}),
}

var adminQueueCallCmd = &cobra.Command{
	Use:   "call <id>",
	Short: "Call a waiting customer to the chair",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient()
		entry, err := c.CallQueueEntry(ctx, args[0])
		if err != nil {
			os.Exit(adminExit(os.Stdout, err))
		}
		fmt.Printf("Called %s\n", entry.Name)
	},
}

var adminQueueDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a called customer as served",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient()
		entry, err := c.CompleteQueueEntry(ctx, args[0])
		if err != nil {
			os.Exit(adminExit(os.Stdout, err))
		}
		fmt.Printf("Done: %s\n", entry.Name)
	},
}

func init() {
	adminQueueAddCmd.Flags().StringVar(&walkInName, "name", "", "Customer name (required)")
	adminQueueAddCmd.MarkFlagRequired("name")
	adminQueueCmd.AddCommand(adminQueueListCmd)
	adminQueueCmd.AddCommand(adminQueueAddCmd)
	adminQueueCmd.AddCommand(adminQueueCallCmd)
	adminQueueCmd.AddCommand(adminQueueDoneCmd)
}

// ---- call-outs ----

var assignBarberID string

var adminCalloutsCmd = &cobra.Command{
	Use:   "callouts",
	Short: "Manage call-out jobs",
}

var adminCalloutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List call-out jobs",
	Run: runAdmin(func(ctx context.Context, w io.Writer) int {
		c := newClient()
		jobs, err := c.Callouts(ctx)
		if err != nil {
			return adminExit(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(jobs, "", "  ")
			fmt.Fprintln(w, string(data))
			return 0
		}
		fmt.Fprintln(w, formatCalloutsHuman(jobs))
		return 0
	}),
}

var adminCalloutsAssignCmd = &cobra.Command{
	Use:   "assign <id>",
	Short: "Assign a barber to a call-out",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient()
		job, err := c.AssignCallout(ctx, args[0], assignBarberID)
		if err != nil {
			os.Exit(adminExit(os.Stdout, err))
		}
		fmt.Printf("Assigned %s to %s\n", job.BarberName, job.CustomerName)
	},
}

var adminCalloutsCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a call-out as completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient()
		job, err := c.CompleteCallout(ctx, args[0])
		if err != nil {
			os.Exit(adminExit(os.Stdout, err))
		}
		fmt.Printf("Completed call-out for %s\n", job.CustomerName)
	},
}

func init() {
	adminCalloutsAssignCmd.Flags().StringVar(&assignBarberID, "barber", "", "Barber ID (required)")
	adminCalloutsAssignCmd.MarkFlagRequired("barber")
	adminCalloutsCmd.AddCommand(adminCalloutsListCmd)
	adminCalloutsCmd.AddCommand(adminCalloutsAssignCmd)
	adminCalloutsCmd.AddCommand(adminCalloutsCompleteCmd)
}

// formatCalloutsHuman formats call-out jobs
func formatCalloutsHuman(jobs []client.CalloutJob) string {
	if len(jobs) == 0 {
		return "No call-out jobs."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %-18s %-24s %-10s %s\n", "ID", "Customer", "Address", "Status", "Barber"))
	for _, j := range jobs {
		sb.WriteString(fmt.Sprintf("%-12s %-18s %-24s %-10s %s\n",
			j.ID, j.CustomerName, j.Address, j.Status, j.BarberName))
	}
	return strings.TrimRight(sb.String(), "\n")
}
