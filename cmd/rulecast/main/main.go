package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/rulecast/cmd/rulecast"
	rcerrors "github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/paths"
	"github.com/arthur-debert/rulecast/pkg/style"
)

func main() {
	rootCmd := rulecast.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Full structured detail only when explicitly asked for
		if os.Getenv(paths.EnvDebug) != "" {
			var rcErr *rcerrors.RulecastError
			if errors.As(err, &rcErr) && len(rcErr.Details) > 0 {
				fmt.Fprintf(os.Stderr, "details: %v\n", rcErr.Details)
			}
		}

		os.Exit(1)
	}
}
