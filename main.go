// countdown prints the days left until the events you are looking forward to.
package main

import (
	"fmt"
	"os"

	"countdown/cmd"
	cderrors "countdown/internal/errors"
)

// version is set at build time via ldflags (-X main.version=...).
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cderrors.ExitCode(err))
	}
}
