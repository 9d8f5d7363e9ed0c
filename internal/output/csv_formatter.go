package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/quanthedge/hedgecalc/internal/calculation"
)

// CSVFormatter emits the report as metric,value rows for spreadsheet use.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *calculation.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return nil, err
	}

	rows := [][]string{
		{"Mode", report.Mode},
		{"HedgeRatio", formatFloat(report.HedgeRatio)},
	}

	if q := report.Quote; q != nil {
		rows = append(rows,
			[]string{"Shares", q.Shares.StringFixed(4)},
			[]string{"Premium", q.Premium.StringFixed(4)},
			[]string{"HedgedIfEvent", q.HedgedIfEvent.StringFixed(4)},
			[]string{"HedgedIfNoEvent", q.HedgedIfNoEvent.StringFixed(4)},
			[]string{"UnhedgedIfEvent", q.UnhedgedIfEvent.StringFixed(4)},
			[]string{"UnhedgedIfNoEvent", q.UnhedgedIfNoEvent.StringFixed(4)},
		)
	}
	if q := report.ConsolationQuote; q != nil {
		rows = append(rows,
			[]string{"Shares", q.Shares.StringFixed(4)},
			[]string{"Premium", q.Premium.StringFixed(4)},
			[]string{"HedgedIfAdverse", q.HedgedIfAdverse.StringFixed(4)},
			[]string{"HedgedIfFavorable", q.HedgedIfFavorable.StringFixed(4)},
			[]string{"UnhedgedOutcome", q.UnhedgedIfAdverse.StringFixed(4)},
		)
	}

	if s := report.HedgedStats; s != nil {
		rows = append(rows,
			[]string{"HedgedMean", formatFloat(s.Mean)},
			[]string{"HedgedMedian", formatFloat(s.Median)},
			[]string{"HedgedWorstCase10", formatFloat(s.WorstCase10)},
			[]string{"HedgedProbabilityPositive", formatFloat(s.ProbabilityPositive)},
		)
	}
	if s := report.UnhedgedStats; s != nil {
		rows = append(rows,
			[]string{"UnhedgedMean", formatFloat(s.Mean)},
			[]string{"UnhedgedMedian", formatFloat(s.Median)},
			[]string{"UnhedgedWorstCase10", formatFloat(s.WorstCase10)},
			[]string{"UnhedgedProbabilityPositive", formatFloat(s.ProbabilityPositive)},
		)
	}

	if opt := report.Optimization; opt != nil {
		rows = append(rows,
			[]string{"OptimalRatio", formatFloat(opt.OptimalRatio)},
			[]string{"WinPercentage", formatFloat(opt.WinPercentage)},
			[]string{"WorstCaseImprovement", formatFloat(opt.WorstCaseImprovement)},
			[]string{"VolatilityReduction", formatFloat(opt.VolatilityReduction)},
			[]string{"SharpeRatio", formatFloat(opt.SharpeRatio)},
			[]string{"MaxDrawdownReduction", formatFloat(opt.MaxDrawdownReduction)},
			[]string{"RiskScore", formatFloat(opt.RiskScore)},
		)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
