// Command graphplot renders series from CSV or XLSX files, or sampled
// functions, as a PNG line chart.
//
//	graphplot --func 'x*sin(x)' --from 0 --to 20 -o sine.png
//	graphplot --transform-y Log10 --markers circle data.csv
//	graphplot --xlsx-sheet Power --individual --bands --watch log.xlsx
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   "graphplot [input.csv|input.xlsx]",
		Short: "Render series as a PNG line chart",
		Long: `graphplot lays out series with automatic grid lines and labels and
renders them as PNG. The first input column holds the x values, every
further column one series.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if o.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&o.funcName, "func", "", "Sample a function: "+strings.Join(functionNames(), ", "))
	flags.Float64Var(&o.from, "from", 0, "Start of the sampled range")
	flags.Float64Var(&o.to, "to", 10, "End of the sampled range")
	flags.Float64Var(&o.step, "step", 0.1, "Sampling step")
	flags.IntVar(&o.samples, "samples", 0, "Sample n evenly spaced points of [from:to] instead of stepping")
	flags.StringVar(&o.sheet, "xlsx-sheet", "", "Sheet of an XLSX input (default: first sheet)")
	flags.StringVar(&o.transformY, "transform-y", "", "Y axis transformation: Identity, Log10, Ln, SquareRoot")
	flags.BoolVar(&o.individual, "individual", false, "Scale every series to its own y range")
	flags.BoolVar(&o.bands, "bands", false, "Stack individually scaled series in bands")
	flags.StringVar(&o.markers, "markers", "none", "Point markers: none, square, circle")
	flags.Float64Var(&o.window, "window", 0, "Only keep the last window x units of every series")
	flags.IntVar(&o.width, "width", 800, "Width in pixels")
	flags.IntVar(&o.height, "height", 500, "Height in pixels")
	flags.Float64Var(&o.fontSize, "font-size", 10, "Label font size in points")
	flags.StringVarP(&o.output, "output", "o", "graph.png", "Output file ('-' for stdout)")
	flags.BoolVarP(&o.watch, "watch", "w", false, "Re-render whenever the input file changes")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log layout details")

	return rootCmd
}

func run(ctx context.Context, o *options, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	if o.watch && path == "" {
		return errors.New("--watch needs an input file")
	}

	if err := o.plot(path); err != nil {
		if !o.watch {
			return err
		}
		slog.Error("graphplot: initial render failed", "err", err)
	}
	if !o.watch {
		return nil
	}
	return watch(ctx, path, func() error { return o.plot(path) })
}
