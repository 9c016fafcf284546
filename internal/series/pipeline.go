package series

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range yields the integers in [from, to). It yields nothing when to <= from.
func Range(from, to int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := from; i < to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Map applies f to every element of seq.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Reduce folds seq from the left, starting at initial.
func Reduce[T, A any](seq iter.Seq[T], initial A, f func(A, T) A) A {
	acc := initial
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// Sum adds every element of seq, left to right.
func Sum[T Number](seq iter.Seq[T]) T {
	return Reduce(seq, T(0), func(acc, v T) T { return acc + v })
}

// Total adds every element of xs.
func Total[T Number](xs []T) T {
	return Sum(slices.Values(xs))
}
