package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/quanthedge/hedgecalc/internal/domain"
	"github.com/quanthedge/hedgecalc/pkg/stats"
)

// sharpeStdDevFloor keeps the risk-adjusted-return proxy defined: below
// this standard deviation the ratio is reported as 0 instead of blowing up
// on a near-zero denominator.
const sharpeStdDevFloor = 0.01

// OptimizationResult is the chosen hedge ratio with the metric bundle of
// its winning candidate. All percentage metrics are on a 0-100 scale.
type OptimizationResult struct {
	OptimalRatio         float64 `json:"optimal_ratio"`
	WinPercentage        float64 `json:"win_percentage"`
	WorstCaseImprovement float64 `json:"worst_case_improvement"`
	VolatilityReduction  float64 `json:"volatility_reduction"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MaxDrawdownReduction float64 `json:"max_drawdown_reduction"`
	RiskScore            float64 `json:"risk_score"`
}

// Optimizer sweeps candidate hedge ratios, scoring each against a weighted
// composite of comparative risk metrics. Weight vectors default to the
// product policy but can be swapped without touching the sweep.
type Optimizer struct {
	Simulator          *Simulator
	RecurringWeights   domain.ScoreWeights
	ConsolationWeights domain.ScoreWeights
	Logger             Logger
}

// NewOptimizer creates an optimizer over the given simulator with the
// default weight policies.
func NewOptimizer(sim *Simulator) *Optimizer {
	return &Optimizer{
		Simulator:          sim,
		RecurringWeights:   domain.DefaultRecurringWeights,
		ConsolationWeights: domain.DefaultConsolationWeights,
		Logger:             NopLogger{},
	}
}

// FindOptimalHedgeRatio sweeps steps+1 evenly spaced ratios over [0,1] for
// the recurring-expense scenario, running runsPerStep trials per candidate,
// and returns the candidate with the greatest risk score. Ties keep the
// earlier (lower-ratio) candidate, so degenerate inputs resolve to ratio 0.
func (o *Optimizer) FindOptimalHedgeRatio(sc domain.Scenario, steps, runsPerStep int) (OptimizationResult, error) {
	if steps < 1 {
		return OptimizationResult{}, fmt.Errorf("optimizer: steps must be positive, got %d", steps)
	}

	// The unhedged distribution at ratio 0 fixes the comparison point for
	// every candidate.
	_, baselineSamples := o.Simulator.RunComparison(sc, 0, runsPerStep)
	baseline, err := stats.Describe(baselineSamples)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("optimizer: baseline statistics: %w", err)
	}

	best := OptimizationResult{RiskScore: math.Inf(-1)}
	for i := 0; i <= steps; i++ {
		ratio := float64(i) / float64(steps)

		hedged, unhedged := o.Simulator.RunComparison(sc, ratio, runsPerStep)
		quote := CalculateHedging(sc.BaselineCost, sc.AdverseCost, decimal.NewFromFloat(ratio), sc.SharePrice, sc.FeeRate)

		candidate, err := o.scoreCandidate(ratio, hedged, unhedged, baseline, o.RecurringWeights,
			premiumPercent(quote.Premium, sc.BaselineCost))
		if err != nil {
			return OptimizationResult{}, err
		}

		o.Logger.Debugf("candidate ratio %.4f scored %.4f", ratio, candidate.RiskScore)
		if candidate.RiskScore > best.RiskScore {
			best = candidate
		}
	}

	o.Logger.Infof("optimal hedge ratio %.4f (score %.4f)", best.OptimalRatio, best.RiskScore)
	return best, nil
}

// FindOptimalConsolationRatio sweeps the single-event consolation hedge
// over ratios 0.10 through 1.00 in 0.05 increments. The finer, floored
// sweep reflects that a consolation hedge below 10% is not worth placing.
func (o *Optimizer) FindOptimalConsolationRatio(cs domain.ConsolationScenario, runsPerStep int) (OptimizationResult, error) {
	_, baselineSamples := o.Simulator.RunConsolationComparison(cs, 0, runsPerStep)
	baseline, err := stats.Describe(baselineSamples)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("optimizer: baseline statistics: %w", err)
	}

	best := OptimizationResult{RiskScore: math.Inf(-1)}
	for i := 2; i <= 20; i++ {
		ratio := float64(i) * 0.05

		hedged, unhedged := o.Simulator.RunConsolationComparison(cs, ratio, runsPerStep)
		quote := CalculateConsolationHedging(cs.EntryCost, cs.Consolation, decimal.NewFromFloat(ratio), cs.SharePrice, cs.FeeRate)

		candidate, err := o.scoreCandidate(ratio, hedged, unhedged, baseline, o.ConsolationWeights,
			premiumPercent(quote.Premium, cs.EntryCost))
		if err != nil {
			return OptimizationResult{}, err
		}

		o.Logger.Debugf("consolation candidate ratio %.4f scored %.4f", ratio, candidate.RiskScore)
		if candidate.RiskScore > best.RiskScore {
			best = candidate
		}
	}

	o.Logger.Infof("optimal consolation ratio %.4f (score %.4f)", best.OptimalRatio, best.RiskScore)
	return best, nil
}

// scoreCandidate derives the five comparative metrics for one candidate
// ratio and folds them into the weighted composite score.
func (o *Optimizer) scoreCandidate(ratio float64, hedged, unhedged []float64, baseline stats.Summary, w domain.ScoreWeights, premiumPct float64) (OptimizationResult, error) {
	hedgedStats, err := stats.Describe(hedged)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("optimizer: candidate %.4f statistics: %w", ratio, err)
	}
	unhedgedStats, err := stats.Describe(unhedged)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("optimizer: candidate %.4f statistics: %w", ratio, err)
	}

	wins := 0
	for i := range hedged {
		if hedged[i] > unhedged[i] {
			wins++
		}
	}
	winPct := float64(wins) / float64(len(hedged)) * 100

	hedgedStd := stats.StdDev(hedged)
	unhedgedStd := stats.StdDev(unhedged)
	volReduction := reductionPercent(hedgedStd, unhedgedStd)

	sharpe := 0.0
	if hedgedStd > sharpeStdDevFloor {
		sharpe = (hedgedStats.Mean - unhedgedStats.Mean) / hedgedStd
	}

	ddReduction := reductionPercent(stats.Range(hedged), stats.Range(unhedged))

	// Outcomes are negative-valued costs, so improvement means less
	// negative: a positive delta against the fixed baseline worst case.
	worstCaseImprovement := hedgedStats.WorstCase10 - baseline.WorstCase10
	worstCasePct := 0.0
	if baseline.WorstCase10 != 0 {
		worstCasePct = worstCaseImprovement / math.Abs(baseline.WorstCase10) * 100
	}

	score := w.WorstCase*worstCasePct +
		w.Volatility*volReduction +
		w.Drawdown*ddReduction +
		w.RiskAdjusted*sharpe -
		w.PremiumPenalty*premiumPct

	return OptimizationResult{
		OptimalRatio:         ratio,
		WinPercentage:        winPct,
		WorstCaseImprovement: worstCaseImprovement,
		VolatilityReduction:  volReduction,
		SharpeRatio:          sharpe,
		MaxDrawdownReduction: ddReduction,
		RiskScore:            score,
	}, nil
}

// reductionPercent returns the percentage reduction of hedged versus
// unhedged dispersion, floored at 0: a candidate that worsens dispersion
// scores zero on that metric rather than negative.
func reductionPercent(hedged, unhedged float64) float64 {
	if unhedged <= 0 {
		return 0
	}
	reduction := (1 - hedged/unhedged) * 100
	if reduction < 0 {
		return 0
	}
	return reduction
}

// premiumPercent expresses the premium as a percentage of the amount at
// risk, the basis for the consolation mode's premium penalty.
func premiumPercent(premium, atRisk decimal.Decimal) float64 {
	if atRisk.IsZero() {
		return 0
	}
	return premium.Div(atRisk).InexactFloat64() * 100
}
