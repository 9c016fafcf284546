package cli

import (
	"io"

	"github.com/agbru/snippets/internal/app"
	"github.com/agbru/snippets/internal/metrics"
	"github.com/agbru/snippets/internal/pattern"
)

// Presenter implements app.Reporter for terminal output. Results go to Out
// and reported errors to ErrOut.
type Presenter struct {
	Out    io.Writer
	ErrOut io.Writer
}

// Verify interface compliance.
var _ app.Reporter = Presenter{}

// ReportSeries displays both series values.
func (p Presenter) ReportSeries(n int, iterative, functional float64) {
	DisplaySeries(p.Out, n, iterative, functional)
}

// ReportError displays the error message and lets the run continue.
func (p Presenter) ReportError(_ string, err error) {
	DisplayError(p.ErrOut, err)
}

// ReportRecord displays the parsed record.
func (p Presenter) ReportRecord(rec pattern.Record) {
	DisplayRecord(p.Out, rec)
}

// ReportMetrics displays the metrics summary.
func (p Presenter) ReportMetrics(samples []metrics.Sample) {
	DisplayMetrics(p.Out, samples)
}
