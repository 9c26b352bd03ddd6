// Package main is the entry point for the sshconv CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/sshconv/cmd/sshconv/commands"
	"github.com/thoreinstein/sshconv/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(errors.ExitUser)
	}
}
