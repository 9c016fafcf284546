// Package series computes the harmonic-style series Σ 1/i for i in [1, n)
// two ways: with an explicit accumulation loop and with a functional
// map-then-reduce pipeline over iter.Seq. Both forms add the same terms in
// the same order, so they return bit-identical results.
package series
