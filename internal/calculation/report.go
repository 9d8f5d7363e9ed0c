package calculation

import (
	"time"

	"github.com/quanthedge/hedgecalc/internal/domain"
	"github.com/quanthedge/hedgecalc/pkg/stats"
)

// AnalysisReport aggregates everything one engine invocation produced, in
// plain data form for the output formatters. Sections not exercised by the
// invocation (e.g. Optimization for a quote-only call) stay nil.
type AnalysisReport struct {
	Mode        string    `json:"mode"`
	GeneratedAt time.Time `json:"generated_at"`

	Scenario    *domain.Scenario            `json:"scenario,omitempty"`
	Consolation *domain.ConsolationScenario `json:"consolation,omitempty"`
	HedgeRatio  float64                     `json:"hedge_ratio"`

	Quote            *HedgeQuote       `json:"quote,omitempty"`
	ConsolationQuote *ConsolationQuote `json:"consolation_quote,omitempty"`

	Runs          int            `json:"runs,omitempty"`
	HedgedStats   *stats.Summary `json:"hedged_stats,omitempty"`
	UnhedgedStats *stats.Summary `json:"unhedged_stats,omitempty"`

	Optimization *OptimizationResult `json:"optimization,omitempty"`
}
