package main

import (
	"log/slog"

	"github.com/govalues/bignum"
	"github.com/govalues/bignum/internal/config"
	"github.com/spf13/cobra"
)

// options holds the persistent flags and the state derived from them.
type options struct {
	config        string
	precision     int
	rounding      string
	checkOverflow bool
	maxSteps      int
	verbose       bool

	ctx    bignum.Context
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "bignum",
		Short:         "Arbitrary-precision integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.config, "config", "", "load settings from a TOML or YAML file")
	f.IntVar(&opts.precision, "precision", bignum.BaseContext.Precision, "number of fractional digits of quotients")
	f.StringVar(&opts.rounding, "rounding", bignum.BaseContext.Rounding.String(), "rounding mode")
	f.BoolVar(&opts.checkOverflow, "check-overflow", bignum.BaseContext.CheckOverflow, "fail when a result leaves the safe range")
	f.IntVar(&opts.maxSteps, "max-steps", bignum.BaseContext.MaxSteps, "iteration bound of roots and searches")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug records to stderr")

	cmd.AddCommand(newCalcCmd(opts), newRoundCmd(opts), newArrayCmd(opts))
	return cmd
}

// setup builds the logger and the arithmetic context.
// Flags set on the command line override the config file.
func (o *options) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := bignum.BaseContext
	if o.config != "" {
		cfg, err := config.Load(o.config)
		if err != nil {
			return err
		}
		ctx, err = cfg.Context()
		if err != nil {
			return err
		}
		o.logger.Debug("loaded config", "path", o.config)
	}

	f := cmd.Flags()
	if f.Changed("precision") {
		ctx.Precision = o.precision
	}
	if f.Changed("rounding") {
		mode, err := bignum.ParseRoundingMode(o.rounding)
		if err != nil {
			return err
		}
		ctx.Rounding = mode
	}
	if f.Changed("check-overflow") {
		ctx.CheckOverflow = o.checkOverflow
	}
	if f.Changed("max-steps") {
		ctx.MaxSteps = o.maxSteps
	}
	if err := ctx.Validate(); err != nil {
		return err
	}
	o.ctx = ctx
	o.logger.Debug("using context", "context", ctx)
	return nil
}
