package terms

import "testing"

func TestHamilOffsetFlattens(t *testing.T) {
	h := NewOffsetHamil[float64, int](3.5)
	repr, err := h.Flatten()
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if got := repr.Coeff(0); got != 3.5 {
		t.Fatalf("Coeff(zero key) = %v, want 3.5", got)
	}
}

func TestHamilSumCombinesBranches(t *testing.T) {
	h := NewOffsetHamil[float64, int](1.0).AddOffset(2.0)
	repr, err := h.Flatten()
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if got := repr.Coeff(0); got != 3.0 {
		t.Fatalf("Coeff(zero key) = %v, want 3.0", got)
	}
}

func TestHamilAddTermsFromStackSource(t *testing.T) {
	values := []struct {
		code  int
		coeff float64
	}{{1, 0.5}, {2, 1.5}}
	i := 0
	src := StackSource[float64, int]{
		Pull: func() (int, float64, bool) {
			if i >= len(values) {
				return 0, 0, false
			}
			v := values[i]
			i++
			return v.code, v.coeff, true
		},
	}
	h := NewTermsHamil[float64, int](src)
	repr, err := h.Flatten()
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if repr.Coeff(1) != 0.5 || repr.Coeff(2) != 1.5 {
		t.Fatal("StackSource terms missing from flattened repr")
	}
}

func TestHamilAddTermsFromHeapSource(t *testing.T) {
	remaining := 3
	src := NewHeapSource[float64, int](func() (int, float64, bool) {
		if remaining == 0 {
			return 0, 0, false
		}
		remaining--
		return remaining, 1.0, true
	})
	h := NewTermsHamil[float64, int](src)
	repr, err := h.Flatten()
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if repr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", repr.Len())
	}
}

func TestHamilAddHamilTree(t *testing.T) {
	left := NewOffsetHamil[float64, int](1.0)
	right := NewOffsetHamil[float64, int](2.0)
	combined := left.AddHamil(right).AddOffset(4.0)
	repr, err := combined.Flatten()
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if got := repr.Coeff(0); got != 7.0 {
		t.Fatalf("Coeff(zero key) = %v, want 7.0", got)
	}
}
