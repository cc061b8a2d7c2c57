package math

import "testing"

func TestRoot4Identity(t *testing.T) {
	if Identity() != R0 {
		t.Fatalf("Identity() = %v, want R0", Identity())
	}
	for _, a := range []Root4{R0, R1, R2, R3} {
		if got := a.Mul(Identity()); got != a {
			t.Fatalf("%v * identity = %v, want %v", a, got, a)
		}
		if got := Identity().Mul(a); got != a {
			t.Fatalf("identity * %v = %v, want %v", a, got, a)
		}
	}
}

func TestRoot4Associative(t *testing.T) {
	vals := []Root4{R0, R1, R2, R3}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				lhs := a.Mul(b).Mul(c)
				rhs := a.Mul(b.Mul(c))
				if lhs != rhs {
					t.Fatalf("(%v*%v)*%v = %v, want %v*(%v*%v) = %v", a, b, c, lhs, a, b, c, rhs)
				}
			}
		}
	}
}

func TestRoot4Commutative(t *testing.T) {
	vals := []Root4{R0, R1, R2, R3}
	for _, a := range vals {
		for _, b := range vals {
			if a.Mul(b) != b.Mul(a) {
				t.Fatalf("%v*%v != %v*%v", a, b, b, a)
			}
		}
	}
}

func TestRoot4Inverse(t *testing.T) {
	for _, a := range []Root4{R0, R1, R2, R3} {
		if got := a.Mul(a.Inverse()); got != R0 {
			t.Fatalf("%v * inverse(%v) = %v, want R0", a, a, got)
		}
		if got := a.Inverse().Inverse(); got != a {
			t.Fatalf("inverse(inverse(%v)) = %v, want %v", a, got, a)
		}
	}
}

func TestRoot4Table(t *testing.T) {
	cases := []struct {
		a, b, want Root4
	}{
		{R1, R1, R0},
		{R2, R2, R1},
		{R3, R3, R1},
		{R2, R3, R0},
		{R3, R2, R0},
	}
	for _, c := range cases {
		if got := c.a.Mul(c.b); got != c.want {
			t.Fatalf("%v * %v = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestRoot4NegConj(t *testing.T) {
	cases := []struct {
		a, neg, conj Root4
	}{
		{R0, R1, R0},
		{R1, R0, R1},
		{R2, R3, R3},
		{R3, R2, R2},
	}
	for _, c := range cases {
		if got := c.a.Neg(); got != c.neg {
			t.Fatalf("neg(%v) = %v, want %v", c.a, got, c.neg)
		}
		if got := c.a.Conj(); got != c.conj {
			t.Fatalf("conj(%v) = %v, want %v", c.a, got, c.conj)
		}
	}
}
