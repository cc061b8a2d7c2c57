// Package math provides the small finite-arithmetic structures that back the
// Pauli algebra: the fourth-root-of-unity group Root4.
package math

import "fmt"

// Root4 is an element of the cyclic group of order 4: the fourth roots of
// unity {+1, -1, +i, -i}. It tracks the phase that accumulates when two
// Pauli operators are multiplied together.
//
// Root4 is isomorphic to (Z/4, +) via R0<->0, R2<->1, R1<->2, R3<->3 (the
// roots in increasing argument order): Mul adds the underlying exponents mod
// 4, the same shape as a small modular field's addition table, just spelled
// out explicitly here rather than computed at runtime.
type Root4 uint8

const (
	// R0 is +1, the group identity.
	R0 Root4 = iota
	// R1 is -1.
	R1
	// R2 is +i.
	R2
	// R3 is -i.
	R3
)

// Identity returns the multiplicative identity, R0.
func Identity() Root4 {
	return R0
}

// mulTable holds the closed-form product r[a][b] = a*b.
var mulTable = [4][4]Root4{
	R0: {R0, R1, R2, R3},
	R1: {R1, R0, R3, R2},
	R2: {R2, R3, R1, R0},
	R3: {R3, R2, R0, R1},
}

// Mul returns the product a*b.
func (a Root4) Mul(b Root4) Root4 {
	return mulTable[a][b]
}

// Inverse returns a^-1: R0<->R0, R1<->R1, R2<->R3.
func (a Root4) Inverse() Root4 {
	switch a {
	case R0:
		return R0
	case R1:
		return R1
	case R2:
		return R3
	case R3:
		return R2
	default:
		panic("math: invalid Root4 value")
	}
}

// Neg returns -a: R0<->R1, R2<->R3.
func (a Root4) Neg() Root4 {
	switch a {
	case R0:
		return R1
	case R1:
		return R0
	case R2:
		return R3
	case R3:
		return R2
	default:
		panic("math: invalid Root4 value")
	}
}

// Conj returns the complex conjugate of a: R0<->R0, R1<->R1, R2<->R3.
func (a Root4) Conj() Root4 {
	return a.Inverse()
}

// String renders the root as one of "+1", "-1", "+i", "-i".
func (a Root4) String() string {
	switch a {
	case R0:
		return "+1"
	case R1:
		return "-1"
	case R2:
		return "+i"
	case R3:
		return "-i"
	default:
		return fmt.Sprintf("Root4(%d)", uint8(a))
	}
}

