// Package main is the entry point for the tyha CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tyha/cli/internal/cmd"
	oerrors "github.com/tyha/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		code := oerrors.ExitGeneralError

		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
			// The command layer may have printed it already
			if exitErr.Printed {
				os.Exit(code)
			}
		}

		fmt.Fprintln(os.Stderr, format(err))
		os.Exit(code)
	}
}

func format(err error) string {
	msg := strings.TrimRight(err.Error(), "\n")
	if strings.HasPrefix(msg, "Error:") {
		return msg
	}
	return "Error: " + msg
}
