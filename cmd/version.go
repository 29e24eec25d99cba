package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is injected by main through SetVersion.
var version = "dev"

func printVersion(w io.Writer, v string) {
	fmt.Fprintf(w, "countdown %s\n", v)
}

// SetVersion allows main.go to inject the build-time version
func SetVersion(v string) {
	version = v
}

func resolveVersion() string {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout(), resolveVersion())
		},
	}
}
