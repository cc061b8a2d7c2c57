package terms

import "golang.org/x/exp/constraints"

// Source is a pluggable producer of (code, coefficient) pairs that can
// flatten itself into a SumRepr. It plays the role the Rust implementation
// gives its Terms trait.
type Source[T constraints.Float, K comparable] interface {
	AddTo(repr *SumRepr[T, K]) error
}

// kind discriminates the three shapes a Hamil can take.
type kind uint8

const (
	kindOffset kind = iota
	kindTerms
	kindSum
)

// Hamil is a Hamiltonian expressed as a tree of constant offsets, term
// sources, and sums thereof. It defers the actual (code, coefficient)
// expansion until Flatten is called.
type Hamil[T constraints.Float, K comparable] struct {
	kind   kind
	offset T
	source Source[T, K]
	l, r   *Hamil[T, K]
}

// NewOffsetHamil returns a Hamiltonian consisting of a single constant
// term, keyed on the zero value of K.
func NewOffsetHamil[T constraints.Float, K comparable](value T) *Hamil[T, K] {
	return &Hamil[T, K]{kind: kindOffset, offset: value}
}

// NewTermsHamil wraps a Source as a leaf of the Hamiltonian tree.
func NewTermsHamil[T constraints.Float, K comparable](src Source[T, K]) *Hamil[T, K] {
	return &Hamil[T, K]{kind: kindTerms, source: src}
}

// AddOffset returns a new Hamiltonian that is h plus a constant term.
func (h *Hamil[T, K]) AddOffset(value T) *Hamil[T, K] {
	return h.AddHamil(NewOffsetHamil[T, K](value))
}

// AddTerms returns a new Hamiltonian that is h plus the given term source.
func (h *Hamil[T, K]) AddTerms(src Source[T, K]) *Hamil[T, K] {
	return h.AddHamil(NewTermsHamil(src))
}

// AddHamil returns a new Hamiltonian that is the sum of h and other.
func (h *Hamil[T, K]) AddHamil(other *Hamil[T, K]) *Hamil[T, K] {
	return &Hamil[T, K]{kind: kindSum, l: h, r: other}
}

// AddTo flattens h into repr, recursively summing every offset, source,
// and branch. It stops and returns the first error encountered from a
// term source.
func (h *Hamil[T, K]) AddTo(repr *SumRepr[T, K]) error {
	if h == nil {
		return nil
	}
	switch h.kind {
	case kindOffset:
		var zero K
		repr.AddTerm(zero, h.offset)
		return nil
	case kindTerms:
		return h.source.AddTo(repr)
	case kindSum:
		if err := h.l.AddTo(repr); err != nil {
			return err
		}
		return h.r.AddTo(repr)
	default:
		return nil
	}
}

// Flatten runs AddTo against a fresh SumRepr and returns it.
func (h *Hamil[T, K]) Flatten() (*SumRepr[T, K], error) {
	repr := NewSumRepr[T, K]()
	if err := h.AddTo(repr); err != nil {
		return nil, err
	}
	return repr, nil
}

// StackSource adapts a pull closure into a Source without heap-allocating
// the closure itself; the closure returns ok=false once exhausted.
type StackSource[T constraints.Float, K comparable] struct {
	Pull func() (code K, coeff T, ok bool)
}

// AddTo drains Pull into repr.
func (s StackSource[T, K]) AddTo(repr *SumRepr[T, K]) error {
	for {
		code, coeff, ok := s.Pull()
		if !ok {
			return nil
		}
		repr.AddTerm(code, coeff)
	}
}

// HeapSource adapts a heap-allocated pull closure into a Source, mirroring
// the boxed-closure term source the Rust implementation keeps alongside its
// stack-allocated counterpart.
type HeapSource[T constraints.Float, K comparable] struct {
	pull func() (code K, coeff T, ok bool)
}

// NewHeapSource boxes pull as a Source.
func NewHeapSource[T constraints.Float, K comparable](pull func() (K, T, bool)) *HeapSource[T, K] {
	return &HeapSource[T, K]{pull: pull}
}

// AddTo drains the boxed closure into repr.
func (s *HeapSource[T, K]) AddTo(repr *SumRepr[T, K]) error {
	for {
		code, coeff, ok := s.pull()
		if !ok {
			return nil
		}
		repr.AddTerm(code, coeff)
	}
}
