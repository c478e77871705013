package main

import (
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose bool
}

// logger returns a console logger when verbose output is requested.
func (o *rootOptions) logger() l.Wrapper {
	if o.Verbose {
		return l.NewConsoleLoggerWrapper()
	}
	return l.NewNopLoggerWrapper()
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "splines",
		Short: "Grouped 1-D interpolation",
		Long: `Interpolate control points per group of rows and evaluate them at a
shared set of query points. Supports linear, cosine and Catmull-Rom curves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newInterpolateCommand(opts))
	cmd.AddCommand(newWAVCommand(opts))
	cmd.AddCommand(newMethodsCommand())

	return cmd
}
