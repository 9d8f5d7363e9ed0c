package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/quanthedge/hedgecalc/internal/domain"
)

// Simulator draws repeated Bernoulli outcomes over a scenario's periods and
// accumulates hedged and unhedged totals per trial. The uniform source is
// injectable so tests can drive it deterministically; production callers
// keep the default process-wide source.
type Simulator struct {
	// Rand returns a uniform draw in [0,1). Defaults to rand.Float64.
	Rand   func() float64
	Logger Logger
}

// NewSimulator creates a simulator backed by the process-wide random source.
func NewSimulator() *Simulator {
	return &Simulator{
		Rand:   rand.Float64,
		Logger: NopLogger{},
	}
}

// branchOutcomes holds one quote's four per-period totals converted to
// float64 once per invocation; they are constant across periods and trials.
type branchOutcomes struct {
	hedgedIfEvent     float64
	hedgedIfNoEvent   float64
	unhedgedIfEvent   float64
	unhedgedIfNoEvent float64
}

// RunComparison simulates runs independent trials of the recurring-expense
// scenario at the given hedge ratio and returns the paired hedged and
// unhedged totals, each of length runs.
func (s *Simulator) RunComparison(sc domain.Scenario, hedgeRatio float64, runs int) (hedged, unhedged []float64) {
	quote := CalculateHedging(sc.BaselineCost, sc.AdverseCost, decimal.NewFromFloat(hedgeRatio), sc.SharePrice, sc.FeeRate)

	s.Logger.Debugf("simulating %d runs x %d periods at ratio %.4f (premium %s)",
		runs, sc.Periods, hedgeRatio, quote.Premium.StringFixed(4))

	return s.simulate(branchOutcomes{
		hedgedIfEvent:     quote.HedgedIfEvent.InexactFloat64(),
		hedgedIfNoEvent:   quote.HedgedIfNoEvent.InexactFloat64(),
		unhedgedIfEvent:   quote.UnhedgedIfEvent.InexactFloat64(),
		unhedgedIfNoEvent: quote.UnhedgedIfNoEvent.InexactFloat64(),
	}, sc.EventProbability, sc.Periods, runs)
}

// Run is a convenience wrapper returning only the hedged totals.
func (s *Simulator) Run(sc domain.Scenario, hedgeRatio float64, runs int) []float64 {
	hedged, _ := s.RunComparison(sc, hedgeRatio, runs)
	return hedged
}

// RunConsolationComparison simulates the single-event consolation hedge:
// one Bernoulli draw per trial, with the win/lose consolation payoffs as
// the two branches.
func (s *Simulator) RunConsolationComparison(cs domain.ConsolationScenario, hedgeRatio float64, runs int) (hedged, unhedged []float64) {
	quote := CalculateConsolationHedging(cs.EntryCost, cs.Consolation, decimal.NewFromFloat(hedgeRatio), cs.SharePrice, cs.FeeRate)

	s.Logger.Debugf("simulating %d consolation trials at ratio %.4f (premium %s)",
		runs, hedgeRatio, quote.Premium.StringFixed(4))

	return s.simulate(branchOutcomes{
		hedgedIfEvent:     quote.HedgedIfAdverse.InexactFloat64(),
		hedgedIfNoEvent:   quote.HedgedIfFavorable.InexactFloat64(),
		unhedgedIfEvent:   quote.UnhedgedIfAdverse.InexactFloat64(),
		unhedgedIfNoEvent: quote.UnhedgedIfFavorable.InexactFloat64(),
	}, cs.EventProbability, 1, runs)
}

func (s *Simulator) simulate(b branchOutcomes, eventProbability float64, periods, runs int) (hedged, unhedged []float64) {
	hedged = make([]float64, 0, runs)
	unhedged = make([]float64, 0, runs)

	for trial := 0; trial < runs; trial++ {
		var hedgedTotal, unhedgedTotal float64
		for period := 0; period < periods; period++ {
			if s.Rand() < eventProbability {
				hedgedTotal += b.hedgedIfEvent
				unhedgedTotal += b.unhedgedIfEvent
			} else {
				hedgedTotal += b.hedgedIfNoEvent
				unhedgedTotal += b.unhedgedIfNoEvent
			}
		}
		hedged = append(hedged, hedgedTotal)
		unhedged = append(unhedged, unhedgedTotal)
	}

	return hedged, unhedged
}
