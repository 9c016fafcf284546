package unify

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/agbru/snippets/internal/series"
	"github.com/m-mizutani/goerr/v2"
)

// Default failure messages.
const (
	DefaultLocalMessage   = "local computation failed"
	DefaultLibraryMessage = "library computation failed, but at least this error was cleaner"
	SampleMessage         = "Some error"
)

var (
	// IntValues and FloatValues are the fixed inputs summed by both operations.
	IntValues   = []int{1, 2, 3, 4, 5}
	FloatValues = []float64{1.0, 2.0, 3.0, 4.0, 5.0}
)

// Options controls which operation fails and with what message.
type Options struct {
	FailLocal      bool
	FailLibrary    bool
	LocalMessage   string
	LibraryMessage string
}

// DefaultOptions fails the local operation and lets the library one succeed.
func DefaultOptions() Options {
	return Options{
		FailLocal:      true,
		FailLibrary:    false,
		LocalMessage:   DefaultLocalMessage,
		LibraryMessage: DefaultLibraryMessage,
	}
}

// ComputeWithLocalError prints both sums and returns a LocalError when
// opts.FailLocal is set.
func ComputeWithLocalError(out io.Writer, opts Options) error {
	printSums(out)
	if opts.FailLocal {
		return apperrors.LocalError{Message: opts.LocalMessage}
	}
	return nil
}

// ComputeWithLibraryError prints both sums and returns a library error when
// opts.FailLibrary is set. Otherwise it converts SampleResults through
// ConvertResults and succeeds.
func ComputeWithLibraryError(out, errOut io.Writer, opts Options) error {
	ints, floats := printSums(out)
	if opts.FailLibrary {
		return apperrors.NewLibraryError(opts.LibraryMessage,
			goerr.V("int_sum", ints),
			goerr.V("float_sum", floats),
		)
	}
	ConvertResults(out, errOut, SampleResults())
	return nil
}

// SampleResults is one success followed by one LocalError.
func SampleResults() []error {
	return []error{nil, apperrors.LocalError{Message: SampleMessage}}
}

// ConvertResults converts every failed result into a library error and
// reports each element: successes on out, failures on errOut. It returns how
// many elements succeeded and failed.
func ConvertResults(out, errOut io.Writer, results []error) (succeeded, failed int) {
	for _, res := range results {
		if lib := apperrors.ToLibraryError(res); lib != nil {
			fmt.Fprintf(errOut, "Got library error: %s\n", lib.Error())
			failed++
			continue
		}
		fmt.Fprintln(out, "Went fine")
		succeeded++
	}
	return succeeded, failed
}

func printSums(out io.Writer) (int, float64) {
	ints := series.Total(IntValues)
	floats := series.Total(FloatValues)
	fmt.Fprintf(out, "Sum of ints: %d\n", ints)
	fmt.Fprintf(out, "Sum of floats: %v\n", floats)
	return ints, floats
}
