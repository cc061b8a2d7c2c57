package terms

import "testing"

func TestSumReprAddTermAccumulates(t *testing.T) {
	r := NewSumRepr[float64, int]()
	r.AddTerm(1, 0.5)
	r.AddTerm(1, 0.25)
	if got := r.Coeff(1); got != 0.75 {
		t.Fatalf("Coeff(1) = %v, want 0.75", got)
	}
}

func TestSumReprUpdateOverwrites(t *testing.T) {
	r := NewSumRepr[float64, int]()
	r.AddTerm(2, 1.0)
	prev, ok := r.Update(2, 9.0)
	if !ok || prev != 1.0 {
		t.Fatalf("Update returned (%v,%v), want (1.0,true)", prev, ok)
	}
	if r.Coeff(2) != 9.0 {
		t.Fatal("Update did not overwrite")
	}
}

func TestSumReprCoeffAbsentIsZero(t *testing.T) {
	r := NewSumRepr[float64, int]()
	if r.Coeff(42) != 0 {
		t.Fatal("absent coefficient should be zero")
	}
}

func TestSumReprLenIsEmpty(t *testing.T) {
	r := NewSumRepr[float64, int]()
	if !r.IsEmpty() || r.Len() != 0 {
		t.Fatal("fresh SumRepr should be empty")
	}
	r.AddTerm(1, 1.0)
	if r.IsEmpty() || r.Len() != 1 {
		t.Fatal("SumRepr should report one term")
	}
}

func TestSumReprExtend(t *testing.T) {
	a := NewSumRepr[float64, int]()
	a.AddTerm(1, 1.0)
	b := NewSumRepr[float64, int]()
	b.AddTerm(1, 2.0)
	b.AddTerm(2, 5.0)
	a.Extend(b)
	if a.Coeff(1) != 3.0 || a.Coeff(2) != 5.0 {
		t.Fatalf("Extend mismatch: %v %v", a.Coeff(1), a.Coeff(2))
	}
}

func TestSumReprIterStopsEarly(t *testing.T) {
	r := NewSumRepr[float64, int]()
	r.AddTerm(1, 1.0)
	r.AddTerm(2, 2.0)
	r.AddTerm(3, 3.0)
	count := 0
	r.Iter(func(code int, coeff float64) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Iter should have stopped after 1 call, got %d", count)
	}
}

func TestWithCapacity(t *testing.T) {
	r := WithCapacity[float64, int](16)
	if !r.IsEmpty() {
		t.Fatal("WithCapacity should start empty")
	}
}
