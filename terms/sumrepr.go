// Package terms holds the sparse accumulator and Hamiltonian term tree
// shared by every code representation: SumRepr collects (code, coefficient)
// pairs, and Hamil composes heterogenous term sources into a single tree
// that flattens into a SumRepr.
package terms

import "golang.org/x/exp/constraints"

// SumRepr is a sparse weighted sum over a comparable code K with
// floating-point coefficients T. Coefficients for equal codes are summed,
// never overwritten, when added through AddTerm.
type SumRepr[T constraints.Float, K comparable] struct {
	m map[K]T
}

// NewSumRepr returns an empty accumulator.
func NewSumRepr[T constraints.Float, K comparable]() *SumRepr[T, K] {
	return &SumRepr[T, K]{m: make(map[K]T)}
}

// WithCapacity returns an empty accumulator pre-sized for n distinct codes.
func WithCapacity[T constraints.Float, K comparable](n int) *SumRepr[T, K] {
	return &SumRepr[T, K]{m: make(map[K]T, n)}
}

// Coeff returns the coefficient stored for code, or the zero value if
// absent.
func (r *SumRepr[T, K]) Coeff(code K) T {
	return r.m[code]
}

// Update overwrites the coefficient for code, returning the previous value
// and whether one was present.
func (r *SumRepr[T, K]) Update(code K, coeff T) (T, bool) {
	prev, ok := r.m[code]
	r.m[code] = coeff
	return prev, ok
}

// AddTerm adds coeff to whatever is already stored for code.
func (r *SumRepr[T, K]) AddTerm(code K, coeff T) {
	r.m[code] += coeff
}

// Len returns the number of distinct codes held.
func (r *SumRepr[T, K]) Len() int {
	return len(r.m)
}

// IsEmpty reports whether r holds no terms.
func (r *SumRepr[T, K]) IsEmpty() bool {
	return len(r.m) == 0
}

// Extend folds every term of other into r, by addition.
func (r *SumRepr[T, K]) Extend(other *SumRepr[T, K]) {
	for code, coeff := range other.m {
		r.AddTerm(code, coeff)
	}
}

// Iter calls yield once per stored (code, coefficient) pair, stopping early
// if yield returns false. Iteration order is unspecified, matching the
// underlying map.
func (r *SumRepr[T, K]) Iter(yield func(K, T) bool) {
	for code, coeff := range r.m {
		if !yield(code, coeff) {
			return
		}
	}
}
