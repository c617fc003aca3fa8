// Command ratcalc evaluates reverse Polish expressions over exact rationals.
//
//	ratcalc 1/2 1/3 +                 # (5/6)
//	ratcalc --format latex 3 4 / inv  # \frac{4}{3}
//	ratcalc --scalar big 2 e40 *      # (20000000000000000000000000000000000000000/1)
//
// Operands are integers or fractions a/b. Operators are + - * / %, neg, inv,
// sq (square) and e<k>, which pushes 10^k.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	configPath string
	scalar     string
	format     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var (
		opts   options
		cfg    *Config
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "ratcalc [flags] <token>...",
		Short: "Exact rational RPN calculator",
		Long: `ratcalc evaluates a reverse Polish expression of rationals exactly.

Operands are integers (3, -7) or fractions (1/2, -6/8), reduced on entry.
Operators: + - * / % neg inv sq e<k>.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scalar") {
				cfg.Scalar = opts.scalar
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = opts.format
			}

			logger, err = newLogger(cfg.Logging, opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("evaluating",
				zap.Strings("tokens", args),
				zap.String("scalar", cfg.Scalar),
				zap.String("format", cfg.Format))

			out, err := Calculate(cfg, args, logger)
			if err != nil {
				logger.Debug("evaluation failed", zap.Error(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	// Flags stop at the first operand, so later tokens like -3/4 are
	// operands. A leading negative operand is handled by operandArgs.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&opts.scalar, "scalar", "int64", "scalar type: int64, int128 or big")
	cmd.Flags().StringVar(&opts.format, "format", "plain", "output format: plain or latex")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	return cmd
}

func newLogger(lc LoggingConfig, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if lc.Level != "" {
		level, err := zap.ParseAtomicLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		config.Level = level
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// operandArgs inserts "--" ahead of the first operand when that operand is
// a negative number, which pflag would otherwise parse as a shorthand flag.
func operandArgs(flags *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return args
		case isNegativeNumber(a):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		case strings.HasPrefix(a, "--"):
			name, _, inline := strings.Cut(a[2:], "=")
			if f := flags.Lookup(name); f != nil && !inline && f.NoOptDefVal == "" {
				i++
			}
		case strings.HasPrefix(a, "-") && len(a) > 1:
			// In a cluster like -vc the first flag taking a value consumes
			// the rest of the cluster, or the next argument if nothing is left.
			for j := 1; j < len(a); j++ {
				f := flags.ShorthandLookup(a[j : j+1])
				if f == nil || f.NoOptDefVal != "" {
					continue
				}
				if j == len(a)-1 {
					i++
				}
				break
			}
		default:
			return args
		}
	}
	return args
}

func isNegativeNumber(s string) bool {
	return len(s) > 1 && s[0] == '-' && s[1] >= '0' && s[1] <= '9'
}

func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(operandArgs(cmd.Flags(), args))
	return cmd.Execute()
}

func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ratcalc:", err)
		os.Exit(1)
	}
}
