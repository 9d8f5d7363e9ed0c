package output

import (
	"encoding/json"

	"github.com/quanthedge/hedgecalc/internal/calculation"
)

// JSONFormatter serializes the analysis report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *calculation.AnalysisReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
