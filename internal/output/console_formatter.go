package output

import (
	"bytes"
	"fmt"

	"github.com/quanthedge/hedgecalc/internal/calculation"
	"github.com/quanthedge/hedgecalc/pkg/stats"
)

// ConsoleFormatter renders the report as human-readable plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *calculation.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Hedge Analysis (%s mode)\n", report.Mode)
	fmt.Fprintf(buf, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	if sc := report.Scenario; sc != nil {
		fmt.Fprintf(buf, "Scenario: baseline %s / adverse %s per period, %d periods\n",
			sc.BaselineCost.StringFixed(2), sc.AdverseCost.StringFixed(2), sc.Periods)
		fmt.Fprintf(buf, "Market: event probability %.2f, share price %s, fee rate %s\n\n",
			sc.EventProbability, sc.SharePrice.StringFixed(2), sc.FeeRate.StringFixed(2))
	}
	if cs := report.Consolation; cs != nil {
		fmt.Fprintf(buf, "Scenario: entry cost %s, desired consolation %s\n",
			cs.EntryCost.StringFixed(2), cs.Consolation.StringFixed(2))
		fmt.Fprintf(buf, "Market: event probability %.2f, share price %s, fee rate %s\n\n",
			cs.EventProbability, cs.SharePrice.StringFixed(2), cs.FeeRate.StringFixed(2))
	}

	if q := report.Quote; q != nil {
		fmt.Fprintf(buf, "Quote at hedge ratio %.2f:\n", report.HedgeRatio)
		fmt.Fprintf(buf, "  Shares:              %s\n", q.Shares.StringFixed(4))
		fmt.Fprintf(buf, "  Premium:             %s\n", q.Premium.StringFixed(4))
		fmt.Fprintf(buf, "  Hedged if event:     %s\n", q.HedgedIfEvent.StringFixed(4))
		fmt.Fprintf(buf, "  Hedged if no event:  %s\n", q.HedgedIfNoEvent.StringFixed(4))
		fmt.Fprintf(buf, "  Unhedged if event:   %s\n", q.UnhedgedIfEvent.StringFixed(4))
		fmt.Fprintf(buf, "  Unhedged otherwise:  %s\n\n", q.UnhedgedIfNoEvent.StringFixed(4))
	}
	if q := report.ConsolationQuote; q != nil {
		fmt.Fprintf(buf, "Quote at hedge ratio %.2f:\n", report.HedgeRatio)
		fmt.Fprintf(buf, "  Shares:              %s\n", q.Shares.StringFixed(4))
		fmt.Fprintf(buf, "  Premium:             %s\n", q.Premium.StringFixed(4))
		fmt.Fprintf(buf, "  Hedged if adverse:   %s\n", q.HedgedIfAdverse.StringFixed(4))
		fmt.Fprintf(buf, "  Hedged if favorable: %s\n", q.HedgedIfFavorable.StringFixed(4))
		fmt.Fprintf(buf, "  Unhedged outcome:    %s\n\n", q.UnhedgedIfAdverse.StringFixed(4))
	}

	if report.HedgedStats != nil && report.UnhedgedStats != nil {
		fmt.Fprintf(buf, "Simulation over %d runs:\n", report.Runs)
		writeSummary(buf, "Hedged", report.HedgedStats)
		writeSummary(buf, "Unhedged", report.UnhedgedStats)
		buf.WriteString("\n")
	}

	if opt := report.Optimization; opt != nil {
		fmt.Fprintf(buf, "Optimal hedge ratio: %.2f%%\n", opt.OptimalRatio*100)
		fmt.Fprintf(buf, "  Win percentage:         %.1f%%\n", opt.WinPercentage)
		fmt.Fprintf(buf, "  Worst-case improvement: %.2f\n", opt.WorstCaseImprovement)
		fmt.Fprintf(buf, "  Volatility reduction:   %.1f%%\n", opt.VolatilityReduction)
		fmt.Fprintf(buf, "  Sharpe ratio:           %.4f\n", opt.SharpeRatio)
		fmt.Fprintf(buf, "  Max drawdown reduction: %.1f%%\n", opt.MaxDrawdownReduction)
		fmt.Fprintf(buf, "  Risk score:             %.4f\n", opt.RiskScore)
	}

	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, label string, s *stats.Summary) {
	fmt.Fprintf(buf, "  %-9s mean %.2f, median %.2f, worst-case-10 %.2f, P(positive) %.1f%%\n",
		label+":", s.Mean, s.Median, s.WorstCase10, s.ProbabilityPositive*100)
}
