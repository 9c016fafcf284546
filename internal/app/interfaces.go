package app

import (
	"github.com/agbru/snippets/internal/metrics"
	"github.com/agbru/snippets/internal/pattern"
)

// Reporter presents the outcome of each step. It decouples the application
// from presentation concerns so the same run can be printed to a terminal or
// captured in tests.
type Reporter interface {
	// ReportSeries displays both forms of the series for bound n.
	ReportSeries(n int, iterative, functional float64)
	// ReportError displays an error returned by step. It is the single
	// reporting path for every error kind.
	ReportError(step string, err error)
	// ReportRecord displays a parsed record.
	ReportRecord(rec pattern.Record)
	// ReportMetrics displays the metrics gathered during the run.
	ReportMetrics(samples []metrics.Sample)
}
