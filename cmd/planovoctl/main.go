// Command planovoctl is the operator CLI for the PlaNovo API. It generates
// SRS documents from the terminal, lists prompt templates and runs database
// migrations.
package main

import (
	"os"

	"github.com/planovo/planovo-api/internal/config"
)

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		os.Exit(1)
	}
}
