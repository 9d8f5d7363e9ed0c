package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanthedge/hedgecalc/internal/domain"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Recurring(t *testing.T) {
	content := "mode: recurring\n" +
		"scenario:\n" +
		"  baseline_cost: 100\n" +
		"  adverse_cost: 120\n" +
		"  event_probability: 0.3\n" +
		"  periods: 12\n" +
		"  share_price: 0.35\n" +
		"  fee_rate: 0.02\n" +
		"hedge_ratio: 0.8\n"

	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeTempConfig(t, content))
	require.NoError(t, err)

	require.NotNil(t, cfg.Scenario)
	assert.Equal(t, domain.ModeRecurring, cfg.Mode)
	assert.True(t, cfg.Scenario.BaselineCost.Equal(decimal.NewFromInt(100)))
	assert.True(t, cfg.Scenario.AdverseCost.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 0.3, cfg.Scenario.EventProbability)
	assert.Equal(t, 12, cfg.Scenario.Periods)
	assert.Equal(t, 0.8, cfg.HedgeRatio)

	// Defaults fill the omitted blocks.
	assert.Equal(t, DefaultSimulationRuns, cfg.Simulation.Runs)
	assert.Equal(t, DefaultOptimizerSteps, cfg.Optimizer.Steps)
	assert.Equal(t, DefaultOptimizerRunsPerStep, cfg.Optimizer.RunsPerStep)
}

func TestLoadFromFile_Consolation(t *testing.T) {
	content := "mode: consolation\n" +
		"consolation:\n" +
		"  entry_cost: 250\n" +
		"  consolation: 100\n" +
		"  event_probability: 0.45\n" +
		"  share_price: 0.4\n" +
		"  fee_rate: 0.02\n"

	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeTempConfig(t, content))
	require.NoError(t, err)

	require.NotNil(t, cfg.Consolation)
	assert.True(t, cfg.Consolation.EntryCost.Equal(decimal.NewFromInt(250)))
	assert.True(t, cfg.Consolation.Consolation.Equal(decimal.NewFromInt(100)))
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempConfig(t, "mode: [unterminated"))
	assert.Error(t, err)
}

func TestValidateConfiguration_Rejections(t *testing.T) {
	base := func() *domain.Configuration {
		cfg := NewInputParser().CreateExampleConfiguration()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*domain.Configuration)
	}{
		{"unknown mode", func(c *domain.Configuration) { c.Mode = "straddle" }},
		{"missing scenario block", func(c *domain.Configuration) { c.Scenario = nil }},
		{"zero baseline", func(c *domain.Configuration) { c.Scenario.BaselineCost = decimal.Zero }},
		{"negative adverse", func(c *domain.Configuration) { c.Scenario.AdverseCost = decimal.NewFromInt(-5) }},
		{"adverse below baseline", func(c *domain.Configuration) { c.Scenario.AdverseCost = decimal.NewFromInt(90) }},
		{"probability zero", func(c *domain.Configuration) { c.Scenario.EventProbability = 0 }},
		{"probability one", func(c *domain.Configuration) { c.Scenario.EventProbability = 1 }},
		{"zero periods", func(c *domain.Configuration) { c.Scenario.Periods = 0 }},
		{"price at one", func(c *domain.Configuration) { c.Scenario.SharePrice = decimal.NewFromInt(1) }},
		{"fee at one", func(c *domain.Configuration) { c.Scenario.FeeRate = decimal.NewFromInt(1) }},
		{"negative fee", func(c *domain.Configuration) { c.Scenario.FeeRate = decimal.NewFromFloat(-0.01) }},
		{"ratio above one", func(c *domain.Configuration) { c.HedgeRatio = 1.5 }},
		{"negative runs", func(c *domain.Configuration) { c.Simulation.Runs = -3 }},
		{"negative steps", func(c *domain.Configuration) { c.Optimizer.Steps = -1 }},
		{"negative weight", func(c *domain.Configuration) {
			c.Weights = &domain.ScoreWeights{WorstCase: -0.5}
		}},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, parser.ValidateConfiguration(cfg))
		})
	}
}

func TestValidateConfiguration_ConsolationRejections(t *testing.T) {
	base := func() *domain.Configuration {
		return &domain.Configuration{
			Mode: domain.ModeConsolation,
			Consolation: &domain.ConsolationScenario{
				EntryCost:        decimal.NewFromInt(250),
				Consolation:      decimal.NewFromInt(100),
				EventProbability: 0.45,
				SharePrice:       decimal.NewFromFloat(0.4),
				FeeRate:          decimal.NewFromFloat(0.02),
			},
			Simulation: domain.SimulationSettings{Runs: 100},
			Optimizer:  domain.OptimizerSettings{Steps: 20, RunsPerStep: 100},
		}
	}

	parser := NewInputParser()
	require.NoError(t, parser.ValidateConfiguration(base()))

	cfg := base()
	cfg.Consolation.EntryCost = decimal.Zero
	assert.Error(t, parser.ValidateConfiguration(cfg))

	cfg = base()
	cfg.Consolation.Consolation = decimal.Zero
	assert.Error(t, parser.ValidateConfiguration(cfg))

	cfg = base()
	cfg.Consolation = nil
	assert.Error(t, parser.ValidateConfiguration(cfg))
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(cfg))
	assert.Equal(t, domain.ModeRecurring, cfg.Mode)
	assert.Equal(t, 12, cfg.Scenario.Periods)
}
