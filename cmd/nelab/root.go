// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/nelab/config"
	"github.com/katalvlaran/nelab/matrix"
	"github.com/katalvlaran/nelab/matrixio"
)

const version = "v0.1.0"

// Persistent flag names.
const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagFormat    = "format"
	flagPrecision = "precision"
)

// app carries the state shared by every subcommand: raw flag values,
// the resolved configuration and the logger built from it.
type app struct {
	cfgPath   string
	logLevel  string
	format    string
	precision int

	cfg *config.Config
	log zerolog.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:     "nelab",
		Short:   "Dense linear algebra on matrix documents",
		Version: version,
		Long: `nelab loads matrices from YAML or JSON documents and runs one kernel
operation on them: arithmetic, products, determinant, inverse, rank,
trace, minors and 3D vector algebra.

A matrix document is either flat
  rows: 2
  cols: 2
  data: [1, 2, 3, 4]
or nested
  matrix: [[1, 2], [3, 4]]

Configuration precedence: flags > NELAB_* environment > --config file > defaults.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.bindPersistentFlags(root.PersistentFlags())
	root.AddCommand(a.structuralCommands()...)
	root.AddCommand(a.arithmeticCommands()...)
	root.AddCommand(a.vectorCommands()...)

	return root
}

// bindPersistentFlags registers the flags shared by every subcommand.
// Empty defaults leave the configured value in place; see setup.
func (a *app) bindPersistentFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.cfgPath, flagConfig, "", "YAML configuration file")
	fs.StringVar(&a.logLevel, flagLogLevel, "", "log level (debug|info|warn|error)")
	fs.StringVarP(&a.format, flagFormat, "o", "", "output format (text|json|yaml)")
	fs.IntVar(&a.precision, flagPrecision, -1, "decimals in printed values, -1 for shortest exact form")
}

// setup resolves configuration once per invocation and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed(flagFormat) {
		cfg.Output.Format = a.format
	}
	if flags.Changed(flagPrecision) {
		cfg.Output.Precision = a.precision
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("cmd", cmd.Name()).
		Logger()
	a.cfg = cfg

	a.log.Debug().
		Str("format", cfg.Output.Format).
		Int("precision", cfg.Output.Precision).
		Float64("epsilon", cfg.Numeric.Epsilon).
		Bool("strict_finite", cfg.Numeric.StrictFinite).
		Msg("configuration resolved")

	return nil
}

// load reads one operand with the configured numeric policy.
func (a *app) load(path string) (*matrix.Dense, error) {
	m, err := matrixio.Load(path, a.cfg.MatrixOptions()...)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("file", path).Str("shape", shapeOf(m)).Int("elements", m.Len()).Msg("operand loaded")

	return m, nil
}

// unary builds a command over one matrix file.
func (a *app) unary(name, short string, run func(m *matrix.Dense) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := run(m)
			if err != nil {
				return fmt.Errorf("%s %s: %w", name, args[0], err)
			}
			a.log.Debug().Str("op", name).Str("shape", shapeOf(m)).Dur("elapsed", time.Since(start)).Msg("done")

			return a.write(cmd.OutOrStdout(), name, res)
		},
	}
}

// binary builds a command over two matrix files.
func (a *app) binary(name, short string, run func(x, y *matrix.Dense) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.load(args[0])
			if err != nil {
				return err
			}
			y, err := a.load(args[1])
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := run(x, y)
			if err != nil {
				return fmt.Errorf("%s %s %s: %w", name, args[0], args[1], err)
			}
			a.log.Debug().
				Str("op", name).
				Str("a", shapeOf(x)).
				Str("b", shapeOf(y)).
				Dur("elapsed", time.Since(start)).
				Msg("done")

			return a.write(cmd.OutOrStdout(), name, res)
		},
	}
}

func shapeOf(m *matrix.Dense) string {
	r, c := m.Shape()

	return fmt.Sprintf("%dx%d", r, c)
}
