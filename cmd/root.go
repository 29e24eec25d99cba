// Package cmd provides the CLI commands for countdown.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"countdown/internal/config"
	"countdown/internal/countdown"
	cderrors "countdown/internal/errors"
	"countdown/internal/logger"
	"countdown/internal/store"
)

// Env carries the process collaborators a command tree runs against.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Now returns the current time; its local calendar day is "today".
	Now func() time.Time
	// Rand drives shuffle ordering. Nil means a crypto-seeded source.
	Rand countdown.RandSource
}

// DefaultEnv wires the real process streams and clock.
func DefaultEnv() Env {
	return Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Now:    time.Now,
	}
}

// Execute runs the countdown command tree against the process arguments.
func Execute() error {
	return NewRootCmd(DefaultEnv()).Execute()
}

// NewRootCmd builds the root command. Listing is the default action;
// add-event and version are subcommands.
func NewRootCmd(env Env) *cobra.Command {
	var (
		// verbosity is incremented once per -v flag: -v=1 (info), -vv=2 (debug).
		verbosity  int
		limit      int
		order      = orderValue(countdown.DefaultOrder)
		eventStore *store.Store
	)

	root := &cobra.Command{
		Use:   "countdown",
		Short: "Countdown to events you're looking forward to",
		Long: `Print the number of days until your upcoming events.

Events are stored in ~/.countdown.json. Set COUNTDOWN_DIR and COUNTDOWN_FILE
to use a different location.

Examples:
  countdown
  countdown -n 3 -o time-desc
  countdown add-event -e "Birthday" -d 21-3-2133`,
		Version:       resolveVersion(),
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(env.Stderr)
			logger.SetLevel(verbosity)

			// Commands that never touch the event file
			if cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return cderrors.Wrap(cderrors.KindStorage, "load config", err)
			}
			logger.Debugf("config: event file %s", cfg.Path())
			eventStore = store.New(cfg.Path())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := countdown.Options{
				Order: countdown.Order(order),
				Rand:  env.Rand,
			}
			if cmd.Flags().Changed("n") {
				opts.Limit = countdown.Limit(limit)
			}
			return runList(cmd.OutOrStdout(), eventStore, env.Now(), opts)
		},
	}

	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetVersionTemplate("countdown {{.Version}}\n")
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		// -h and -V win over flags that failed to parse after them.
		if c.Flags().Changed("help") {
			return c.Help()
		}
		if c.Flags().Changed("version") {
			printVersion(c.OutOrStdout(), c.Root().Version)
			return nil
		}
		return cderrors.Wrap(cderrors.KindInvalidArgument, "",
			fmt.Errorf("%w\n\nRun: %s --help", err, c.CommandPath()))
	})

	// CountP increments verbosity each time -v is passed: -v=1, -vv=2
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Verbosity: -v info, -vv debug")
	root.Flags().IntVarP(&limit, "n", "n", 0, "Max number of events to display")
	root.Flags().VarP(&order, "order", "o", "Ordering of the events: "+countdown.OrderNames())
	root.Flags().BoolP("version", "V", false, "Print version information")

	root.AddCommand(
		newAddEventCmd(func() *store.Store { return eventStore }),
		newVersionCmd(),
	)
	return root
}

// noArgs rejects positional arguments as invalid input.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return cderrors.Wrap(cderrors.KindInvalidArgument, "", err)
	}
	return nil
}

// orderValue adapts countdown.Order to a pflag.Value so bad orders fail at
// flag parsing.
type orderValue countdown.Order

var _ pflag.Value = (*orderValue)(nil)

func (o *orderValue) String() string { return string(*o) }

func (o *orderValue) Set(s string) error {
	if s == "" {
		return fmt.Errorf("order must not be empty")
	}
	parsed, err := countdown.ParseOrder(s)
	if err != nil {
		return err
	}
	*o = orderValue(parsed)
	return nil
}

func (o *orderValue) Type() string { return "order" }
