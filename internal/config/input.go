package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/quanthedge/hedgecalc/internal/domain"
)

// Defaults applied when a scenario file leaves settings unset.
const (
	DefaultSimulationRuns       = 1000
	DefaultOptimizerSteps       = 20
	DefaultOptimizerRunsPerStep = 500
)

// InputParser handles parsing of scenario configuration files. The
// calculation packages do not validate inputs; every validation rule lives
// here, at the boundary.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file, applies
// defaults, and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func (ip *InputParser) applyDefaults(config *domain.Configuration) {
	if config.Mode == "" {
		config.Mode = domain.ModeRecurring
	}
	if config.Simulation.Runs == 0 {
		config.Simulation.Runs = DefaultSimulationRuns
	}
	if config.Optimizer.Steps == 0 {
		config.Optimizer.Steps = DefaultOptimizerSteps
	}
	if config.Optimizer.RunsPerStep == 0 {
		config.Optimizer.RunsPerStep = DefaultOptimizerRunsPerStep
	}
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	switch config.Mode {
	case domain.ModeRecurring:
		if config.Scenario == nil {
			return fmt.Errorf("mode %q requires a scenario block", config.Mode)
		}
		if err := ip.validateScenario(config.Scenario); err != nil {
			return fmt.Errorf("scenario validation failed: %w", err)
		}
	case domain.ModeConsolation:
		if config.Consolation == nil {
			return fmt.Errorf("mode %q requires a consolation block", config.Mode)
		}
		if err := ip.validateConsolation(config.Consolation); err != nil {
			return fmt.Errorf("consolation validation failed: %w", err)
		}
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", domain.ModeRecurring, domain.ModeConsolation, config.Mode)
	}

	if config.HedgeRatio < 0 || config.HedgeRatio > 1 {
		return fmt.Errorf("hedge ratio must be between 0 and 1")
	}
	if config.Simulation.Runs <= 0 {
		return fmt.Errorf("simulation runs must be positive")
	}
	if config.Optimizer.Steps <= 0 {
		return fmt.Errorf("optimizer steps must be positive")
	}
	if config.Optimizer.RunsPerStep <= 0 {
		return fmt.Errorf("optimizer runs per step must be positive")
	}
	if config.Weights != nil {
		if err := ip.validateWeights(config.Weights); err != nil {
			return fmt.Errorf("weights validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateScenario(sc *domain.Scenario) error {
	if sc.BaselineCost.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("baseline cost must be positive")
	}
	if sc.AdverseCost.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("adverse cost must be positive")
	}
	if sc.AdverseCost.LessThanOrEqual(sc.BaselineCost) {
		return fmt.Errorf("adverse cost must exceed baseline cost")
	}
	if sc.Periods <= 0 {
		return fmt.Errorf("periods must be positive")
	}
	return validateMarketTerms(sc.EventProbability, sc.SharePrice, sc.FeeRate)
}

func (ip *InputParser) validateConsolation(cs *domain.ConsolationScenario) error {
	if cs.EntryCost.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("entry cost must be positive")
	}
	if cs.Consolation.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("consolation must be positive")
	}
	return validateMarketTerms(cs.EventProbability, cs.SharePrice, cs.FeeRate)
}

func (ip *InputParser) validateWeights(w *domain.ScoreWeights) error {
	for _, v := range []float64{w.WorstCase, w.Volatility, w.Drawdown, w.RiskAdjusted, w.PremiumPenalty} {
		if v < 0 {
			return fmt.Errorf("weights cannot be negative")
		}
	}
	return nil
}

// validateMarketTerms rejects degenerate market parameters: probability 0
// or 1 makes every trial identical, and fee rate 1 divides by zero in the
// payoff algebra.
func validateMarketTerms(probability float64, price, feeRate decimal.Decimal) error {
	if probability <= 0 || probability >= 1 {
		return fmt.Errorf("event probability must be strictly between 0 and 1")
	}
	if price.LessThanOrEqual(decimal.Zero) || price.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("share price must be strictly between 0 and 1")
	}
	if feeRate.LessThan(decimal.Zero) || feeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("fee rate must be in [0, 1)")
	}
	return nil
}

// CreateExampleConfiguration returns a ready-to-edit recurring-expense
// configuration: a monthly utility bill that jumps from 100 to 120 when a
// cold-snap event (30% chance per month) occurs, hedged on a market quoting
// YES at 0.35 with a 2% settlement fee.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Mode: domain.ModeRecurring,
		Scenario: &domain.Scenario{
			BaselineCost:     decimal.NewFromInt(100),
			AdverseCost:      decimal.NewFromInt(120),
			EventProbability: 0.3,
			Periods:          12,
			SharePrice:       decimal.NewFromFloat(0.35),
			FeeRate:          decimal.NewFromFloat(0.02),
		},
		HedgeRatio: 0.8,
		Simulation: domain.SimulationSettings{Runs: DefaultSimulationRuns},
		Optimizer: domain.OptimizerSettings{
			Steps:       DefaultOptimizerSteps,
			RunsPerStep: DefaultOptimizerRunsPerStep,
		},
	}
}
