// ABOUTME: Entry point for the barberslot CLI
// ABOUTME: Terminal client and admin tool for the BarberSlot booking platform

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/barberslot/barberslot-cli/cmd"
)

func main() {
	// Optional .env in the working directory, handy for pointing at a dev backend
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
