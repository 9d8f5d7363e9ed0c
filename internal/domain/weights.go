package domain

// ScoreWeights is the composite-score policy used by the hedge-ratio
// optimizer. Each weight multiplies one normalized metric; the weighted sum
// is the risk score a candidate ratio is ranked by. The defaults below are
// load-bearing product choices, but callers may substitute their own vector
// without touching the sweep logic.
type ScoreWeights struct {
	// WorstCase weights the percentage improvement in the 10th-percentile
	// outcome relative to the unhedged baseline.
	WorstCase float64 `yaml:"worst_case" json:"worst_case"`
	// Volatility weights the percentage reduction in standard deviation.
	Volatility float64 `yaml:"volatility" json:"volatility"`
	// Drawdown weights the percentage reduction in outcome range.
	Drawdown float64 `yaml:"drawdown" json:"drawdown"`
	// RiskAdjusted weights the Sharpe-style risk-adjusted-return proxy.
	RiskAdjusted float64 `yaml:"risk_adjusted" json:"risk_adjusted"`
	// PremiumPenalty is subtracted per percentage point of premium cost
	// relative to the amount at risk.
	PremiumPenalty float64 `yaml:"premium_penalty" json:"premium_penalty"`
}

// DefaultRecurringWeights emphasizes worst-case protection: the product
// treats recurring-expense hedging as insurance, not investment.
var DefaultRecurringWeights = ScoreWeights{
	WorstCase:  0.70,
	Volatility: 0.20,
	Drawdown:   0.10,
}

// DefaultConsolationWeights spreads weight across metrics and charges for
// premium spend, since consolation hedging optimizes subjective protection
// rather than pure financial efficiency.
var DefaultConsolationWeights = ScoreWeights{
	WorstCase:      0.40,
	Volatility:     0.30,
	Drawdown:       0.20,
	RiskAdjusted:   0.10,
	PremiumPenalty: 0.05,
}
