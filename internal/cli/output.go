package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/snippets/internal/metrics"
	"github.com/agbru/snippets/internal/pattern"
	"github.com/agbru/snippets/internal/ui"
)

// FormatFloat renders f in plain decimal notation with the fewest digits
// that round-trip.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DisplaySeries prints both forms of the series for bound n.
func DisplaySeries(out io.Writer, n int, iterative, functional float64) {
	fmt.Fprintf(out, "Harmonic with n = %d is %s\n", n, ui.Accent(FormatFloat(iterative)))
	fmt.Fprintf(out, "Harmonic (calculated functionally) with n = %d is %s\n", n, ui.Accent(FormatFloat(functional)))
}

// DisplayError prints a reported error on the error stream.
func DisplayError(errOut io.Writer, err error) {
	fmt.Fprintf(errOut, "%s %s\n", ui.Error("Error message:"), err)
}

// DisplayRecord prints the fields of a parsed record.
func DisplayRecord(out io.Writer, rec pattern.Record) {
	fmt.Fprintf(out, "Record is %s\n", ui.Success(rec.String()))
}

// DisplayMetrics prints gathered metric samples, one per line.
func DisplayMetrics(out io.Writer, samples []metrics.Sample) {
	fmt.Fprintf(out, "\n%s\n", ui.Dim("--- Metrics ---"))
	for _, s := range samples {
		fmt.Fprintf(out, "%s{%s} %s\n", s.Name, s.LabelString(), FormatFloat(s.Value))
	}
}
