// ABOUTME: Root command for the barberslot CLI
// ABOUTME: Handles global flags, config file loading, and shared client setup

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/store"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8080"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "barberslot",
	Short: "CLI for the BarberSlot booking platform",
	Long: `barberslot is a command-line interface for the BarberSlot barbershop.

Book appointments, watch the walk-in queue, request call-outs, and run
the shop from the admin commands. Run with no arguments for the
interactive terminal UI.

Environment Variables:
  BARBERSLOT_API_URL  Backend API URL (default: http://localhost:8080)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand launches the interactive UI
		return runTUI()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides BARBERSLOT_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// initConfig wires the optional config file and environment into viper
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if dir := store.DefaultConfigDir(); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.SetEnvPrefix("BARBERSLOT")
	viper.AutomaticEnv()
	viper.BindEnv("api_url")
	// A missing config file is the normal case
	_ = viper.ReadInConfig()
}

// GetAPIURL returns the API URL from flag, env, config file, or default
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if url := viper.GetString("api_url"); url != "" {
		return url
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newClient builds an API client carrying the persisted session token
func newClient() *client.Client {
	c := client.New(GetAPIURL())
	if rec := store.NewPersister(store.DefaultConfigDir()).Load(); rec != nil {
		c.SetToken(rec.Authentication.AuthToken)
	}
	return c
}

// newStore builds the full state container for commands that mutate the
// session or draft.
func newStore() (*store.Store, *client.Client) {
	c := client.New(GetAPIURL())
	st := store.New(c, store.NewPersister(store.DefaultConfigDir()))
	return st, c
}
