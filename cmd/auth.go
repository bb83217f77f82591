// ABOUTME: Authentication commands: login, logout, register, whoami
// ABOUTME: Session state persists in the config directory between invocations

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/store"
)

var (
	loginEmail    string
	loginPassword string
	loginAdmin    bool
	loginCode     string

	registerName  string
	registerPhone string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	Long: `Sign in with email and password. The session token is stored in the
config directory and reused by later commands.

Admin sign-in may require a second factor; rerun with --code when prompted.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		runLogout(os.Stdout)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a customer account",
	Long:  `Create a customer account. Registration does not sign you in; run login afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (required)")
	loginCmd.Flags().BoolVar(&loginAdmin, "admin", false, "Sign in as an administrator")
	loginCmd.Flags().StringVar(&loginCode, "code", "", "Second-factor verification code (admin)")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (required)")
	registerCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (required)")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Your name (required)")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Contact phone number")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(whoamiCmd)
}

// authFailure prints the session's error and maps the cause to an exit
// code: bad credentials or rejected input exit 1, an unreachable or
// failing backend exits 2.
func authFailure(w io.Writer, st *store.Store, err error) int {
	msg := st.Session().ErrorMessage
	if msg == "" {
		msg = err.Error()
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
	if client.IsAuth(err) || client.IsValidation(err) {
		return 1
	}
	return 2
}

// runLogin signs in and returns an exit code
func runLogin(ctx context.Context, w io.Writer) int {
	st, _ := newStore()

	if loginAdmin {
		requires2FA, err := st.LoginAdmin(ctx, loginEmail, loginPassword, loginCode)
		if err != nil {
			return authFailure(w, st, err)
		}
		if requires2FA {
			fmt.Fprintln(w, "Second factor required. Rerun with --code <verification code>.")
			return 1
		}
	} else {
		if err := st.Login(ctx, loginEmail, loginPassword); err != nil {
			return authFailure(w, st, err)
		}
	}

	sess := st.Session()
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"email":     sess.CurrentUser.Email,
			"user_type": sess.Status.UserType,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Signed in as %s (%s)\n", sess.CurrentUser.Email, sess.Status.UserType)
	}
	return 0
}

// runLogout clears the session; it never fails
func runLogout(w io.Writer) {
	st, _ := newStore()
	st.Logout()
	fmt.Fprintln(w, "Signed out.")
}

// runRegister creates an account and returns an exit code
func runRegister(ctx context.Context, w io.Writer) int {
	st, _ := newStore()

	if err := st.Register(ctx, loginEmail, loginPassword, registerName, registerPhone); err != nil {
		return authFailure(w, st, err)
	}

	fmt.Fprintf(w, "Account created for %s. Run 'barberslot login' to sign in.\n", loginEmail)
	return 0
}

// runWhoami prints the persisted session without touching the network
func runWhoami(w io.Writer) int {
	rec := store.NewPersister(store.DefaultConfigDir()).Load()
	if rec == nil || rec.Authentication.AuthToken == "" {
		fmt.Fprintln(w, "Not signed in.")
		return 1
	}

	auth := rec.Authentication
	expiry := tokenExpiry(auth.AuthToken)

	if IsJSONOutput() {
		out := map[string]any{
			"user_type": auth.Status.UserType,
		}
		if auth.CurrentUser != nil {
			out["email"] = auth.CurrentUser.Email
			out["name"] = auth.CurrentUser.Name
		}
		if !expiry.IsZero() {
			out["token_expires"] = expiry.Format(time.RFC3339)
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if auth.CurrentUser != nil {
		fmt.Fprintf(w, "Signed in:  %s (%s)\n", auth.CurrentUser.Email, auth.Status.UserType)
	} else {
		fmt.Fprintf(w, "Signed in:  (%s)\n", auth.Status.UserType)
	}
	if !expiry.IsZero() {
		if time.Now().After(expiry) {
			fmt.Fprintf(w, "Token:      expired %s\n", expiry.Format(time.RFC1123))
		} else {
			fmt.Fprintf(w, "Token:      valid until %s\n", expiry.Format(time.RFC1123))
		}
	}
	return 0
}

// tokenExpiry reads the expiry claim without verifying the signature;
// only the server can actually validate the token.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
