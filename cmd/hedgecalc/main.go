package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quanthedge/hedgecalc/internal/calculation"
	"github.com/quanthedge/hedgecalc/internal/config"
	"github.com/quanthedge/hedgecalc/internal/domain"
	"github.com/quanthedge/hedgecalc/internal/output"
	"github.com/quanthedge/hedgecalc/pkg/stats"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// zeroLogger bridges the CLI's zerolog logger into the engine's Logger seam.
type zeroLogger struct {
	log zerolog.Logger
}

func (z zeroLogger) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zeroLogger) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z zeroLogger) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z zeroLogger) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }

var (
	verbose    bool
	formatName string
	saveReport bool

	logger zerolog.Logger
)

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

var rootCmd = &cobra.Command{
	Use:   "hedgecalc",
	Short: "Expense hedge calculator",
	Long:  "Computes and evaluates prediction-market hedges against recurring or single-event expense volatility",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger()
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "hedgecalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var quoteCmd = &cobra.Command{
	Use:   "quote [input-file]",
	Short: "Compute the deterministic hedge economics for a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		report := newReport(cfg)
		ratio := decimal.NewFromFloat(cfg.HedgeRatio)
		switch cfg.Mode {
		case domain.ModeRecurring:
			quote := calculation.CalculateHedging(cfg.Scenario.BaselineCost, cfg.Scenario.AdverseCost,
				ratio, cfg.Scenario.SharePrice, cfg.Scenario.FeeRate)
			report.Quote = &quote
		case domain.ModeConsolation:
			quote := calculation.CalculateConsolationHedging(cfg.Consolation.EntryCost, cfg.Consolation.Consolation,
				ratio, cfg.Consolation.SharePrice, cfg.Consolation.FeeRate)
			report.ConsolationQuote = &quote
		}

		return emit(report)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Run the Monte Carlo comparison at the configured hedge ratio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		if runs, _ := cmd.Flags().GetInt("runs"); runs > 0 {
			cfg.Simulation.Runs = runs
		}

		sim := calculation.NewSimulator()
		sim.Logger = zeroLogger{logger}

		var hedged, unhedged []float64
		switch cfg.Mode {
		case domain.ModeRecurring:
			hedged, unhedged = sim.RunComparison(*cfg.Scenario, cfg.HedgeRatio, cfg.Simulation.Runs)
		case domain.ModeConsolation:
			hedged, unhedged = sim.RunConsolationComparison(*cfg.Consolation, cfg.HedgeRatio, cfg.Simulation.Runs)
		}

		hedgedStats, err := stats.Describe(hedged)
		if err != nil {
			return err
		}
		unhedgedStats, err := stats.Describe(unhedged)
		if err != nil {
			return err
		}

		report := newReport(cfg)
		report.Runs = cfg.Simulation.Runs
		report.HedgedStats = &hedgedStats
		report.UnhedgedStats = &unhedgedStats

		return emit(report)
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [input-file]",
	Short: "Sweep hedge ratios and report the best-scoring candidate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		if steps, _ := cmd.Flags().GetInt("steps"); steps > 0 {
			cfg.Optimizer.Steps = steps
		}
		if runs, _ := cmd.Flags().GetInt("runs"); runs > 0 {
			cfg.Optimizer.RunsPerStep = runs
		}

		sim := calculation.NewSimulator()
		sim.Logger = zeroLogger{logger}
		opt := calculation.NewOptimizer(sim)
		opt.Logger = zeroLogger{logger}
		if cfg.Weights != nil {
			opt.RecurringWeights = *cfg.Weights
			opt.ConsolationWeights = *cfg.Weights
		}

		var result calculation.OptimizationResult
		switch cfg.Mode {
		case domain.ModeRecurring:
			result, err = opt.FindOptimalHedgeRatio(*cfg.Scenario, cfg.Optimizer.Steps, cfg.Optimizer.RunsPerStep)
		case domain.ModeConsolation:
			result, err = opt.FindOptimalConsolationRatio(*cfg.Consolation, cfg.Optimizer.RunsPerStep)
		}
		if err != nil {
			return err
		}

		report := newReport(cfg)
		report.HedgeRatio = result.OptimalRatio
		report.Optimization = &result

		return emit(report)
	},
}

var initCmd = &cobra.Command{
	Use:   "init [output-file]",
	Short: "Write an example scenario configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "scenario.yaml"
		if len(args) == 1 {
			filename = args[0]
		}

		example := config.NewInputParser().CreateExampleConfiguration()
		data, err := yaml.Marshal(example)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}

		logger.Info().Str("file", filename).Msg("wrote example configuration")
		return nil
	},
}

func newReport(cfg *domain.Configuration) *calculation.AnalysisReport {
	return &calculation.AnalysisReport{
		Mode:        cfg.Mode,
		GeneratedAt: time.Now(),
		Scenario:    cfg.Scenario,
		Consolation: cfg.Consolation,
		HedgeRatio:  cfg.HedgeRatio,
	}
}

// emit formats the report and writes it to stdout or, when --output is set,
// to a timestamped file.
func emit(report *calculation.AnalysisReport) error {
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormatterNames())
	}

	if saveReport {
		ext := formatter.Name()
		if ext == "console" {
			ext = "txt"
		}
		filename, err := output.WriteFormatted(formatter, report, ext)
		if err != nil {
			return err
		}
		logger.Info().Str("file", filename).Msg("wrote report")
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format (console, json, csv)")
	rootCmd.PersistentFlags().BoolVarP(&saveReport, "output", "o", false, "write report to a timestamped file instead of stdout")

	simulateCmd.Flags().Int("runs", 0, "override the configured number of simulation runs")
	optimizeCmd.Flags().Int("steps", 0, "override the configured number of sweep steps")
	optimizeCmd.Flags().Int("runs", 0, "override the configured runs per candidate")

	rootCmd.AddCommand(quoteCmd, simulateCmd, optimizeCmd, initCmd, versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
