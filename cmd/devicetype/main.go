// devicetype classifies window sizes and device presets from the terminal.
//
//	devicetype classify --width 1280 --height 800
//	devicetype classify --width 841 --height 673 --hinge horizontal --tabletop
//	devicetype presets --pdf report.pdf --xlsx matrix.xlsx --cards cards.pdf
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Version info (set by build)
	Version   = "dev"
	BuildTime = "unknown"
)

// options holds the global flags.
type options struct {
	logLevel string
	logger   zerolog.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &options{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "devicetype",
		Short: "Classify window sizes into adaptive layout device types",
		Long: `devicetype maps window dimensions and fold posture to one of
Compact, Medium, Foldable, Expanded, Large or ExtraLarge, and shows the
panel layout an adaptive scaffold would pick for it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newClassifyCmd(opts),
		newPresetsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show devicetype version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "devicetype version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Build time: %s\n", BuildTime)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
