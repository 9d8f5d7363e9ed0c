package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanthedge/hedgecalc/internal/calculation"
	"github.com/quanthedge/hedgecalc/internal/domain"
	"github.com/quanthedge/hedgecalc/pkg/stats"
)

func sampleReport() *calculation.AnalysisReport {
	quote := calculation.CalculateHedging(
		decimal.NewFromInt(100), decimal.NewFromInt(120),
		decimal.NewFromFloat(0.8), decimal.NewFromFloat(0.35), decimal.NewFromFloat(0.02))

	return &calculation.AnalysisReport{
		Mode:        domain.ModeRecurring,
		GeneratedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Scenario: &domain.Scenario{
			BaselineCost:     decimal.NewFromInt(100),
			AdverseCost:      decimal.NewFromInt(120),
			EventProbability: 0.3,
			Periods:          12,
			SharePrice:       decimal.NewFromFloat(0.35),
			FeeRate:          decimal.NewFromFloat(0.02),
		},
		HedgeRatio:    0.8,
		Quote:         &quote,
		Runs:          100,
		HedgedStats:   &stats.Summary{Mean: -1290, Median: -1288, WorstCase10: -1330, ProbabilityPositive: 0},
		UnhedgedStats: &stats.Summary{Mean: -1272, Median: -1270, WorstCase10: -1340, ProbabilityPositive: 0},
		Optimization: &calculation.OptimizationResult{
			OptimalRatio:         0.75,
			WinPercentage:        42.5,
			WorstCaseImprovement: 10,
			VolatilityReduction:  18.2,
			SharpeRatio:          -0.3,
			MaxDrawdownReduction: 12.1,
			RiskScore:            5.43,
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "csv"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q should exist", name)
		assert.Equal(t, name, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName("  Text "))
	assert.Equal(t, "json", NormalizeFormatName("JSON-Pretty"))
	assert.Equal(t, "csv", NormalizeFormatName("csv-summary"))
	assert.Equal(t, "csv", NormalizeFormatName("csv"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}

func TestJSONFormatter(t *testing.T) {
	data, err := (JSONFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "recurring", decoded["mode"])
	assert.Contains(t, decoded, "quote")
	assert.Contains(t, decoded, "optimization")
}

func TestConsoleFormatter(t *testing.T) {
	data, err := (ConsoleFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Hedge Analysis (recurring mode)")
	assert.Contains(t, text, "Shares:              16.3265")
	assert.Contains(t, text, "Optimal hedge ratio: 75.00%")
}

func TestCSVFormatter(t *testing.T) {
	data, err := (CSVFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Metric,Value", lines[0])
	assert.Contains(t, string(data), "Premium,5.7143")
	assert.Contains(t, string(data), "RiskScore,5.4300")
}
