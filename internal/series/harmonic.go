package series

import "math/big"

// Harmonic returns Σ 1/i for i in [1, n) using an accumulation loop.
// It returns 0 for n <= 1.
func Harmonic(n int) float64 {
	var sum float64
	for i := 1; i < n; i++ {
		sum += 1.0 / float64(i)
	}
	return sum
}

// HarmonicFunctional returns the same value as Harmonic, expressed as a
// Range → Map → Sum pipeline.
func HarmonicFunctional(n int) float64 {
	return Sum(Map(Range(1, n), reciprocal))
}

// HarmonicExact returns Σ 1/i for i in [1, n) as an exact rational. It is
// the reference the floating-point forms are checked against.
func HarmonicExact(n int) *big.Rat {
	return Reduce(Range(1, n), new(big.Rat), func(acc *big.Rat, i int) *big.Rat {
		return acc.Add(acc, big.NewRat(1, int64(i)))
	})
}

func reciprocal(i int) float64 {
	return 1.0 / float64(i)
}
