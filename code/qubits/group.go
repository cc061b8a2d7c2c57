package qubits

import "f2q/math"

// sqPhase and sqOp hold the closed-form single-qubit Pauli product table:
// sqPhase[a][b] is the Root4 phase of a*b (ignoring any phase already
// carried by a or b), and sqOp[a][b] is the resulting PauliOp.
var sqPhase = [4][4]math.Root4{
	I: {math.R0, math.R0, math.R0, math.R0},
	X: {math.R0, math.R0, math.R2, math.R2},
	Y: {math.R0, math.R3, math.R0, math.R2},
	Z: {math.R0, math.R3, math.R3, math.R0},
}

var sqOp = [4][4]PauliOp{
	I: {I, X, Y, Z},
	X: {X, I, Z, Y},
	Y: {Y, Z, I, X},
	Z: {Z, Y, X, I},
}

// PauliGroup is the cross product Root4 x Pauli: a Pauli string together with an
// overall fourth-root-of-unity phase, closed under multiplication.
type PauliGroup struct {
	Phase math.Root4
	Code  Pauli
}

// NewPauliGroup constructs a PauliGroup element from a phase and a Pauli string.
func NewPauliGroup(phase math.Root4, code Pauli) PauliGroup {
	return PauliGroup{Phase: phase, Code: code}
}

// PauliGroupIdentity is the identity element: phase R0, all-I string.
func PauliGroupIdentity() PauliGroup {
	return PauliGroup{Phase: math.R0, Code: Identity()}
}

// FromPauli lifts a bare Pauli string to the group with identity phase.
func FromPauli(p Pauli) PauliGroup {
	return PauliGroup{Phase: math.R0, Code: p}
}

// FromPhase lifts a bare phase to the group with the all-I string.
func FromPhase(r math.Root4) PauliGroup {
	return PauliGroup{Phase: r, Code: Identity()}
}

// IsHermitian reports whether g's phase is +1 or -1, i.e. g is a Hermitian
// operator.
func (g PauliGroup) IsHermitian() bool {
	return g.Phase == math.R0 || g.Phase == math.R1
}

// Inverse returns g^-1: the phase inverts, the Pauli string is unchanged
// (every single-qubit Pauli is its own inverse up to phase).
func (g PauliGroup) Inverse() PauliGroup {
	return PauliGroup{Phase: g.Phase.Inverse(), Code: g.Code}
}

// Mul multiplies two group elements qubit by qubit via the single-qubit
// product table, accumulating the Root4 phase from both operands and from
// every per-qubit product.
func Mul(a, b PauliGroup) PauliGroup {
	phase := a.Phase.Mul(b.Phase)
	var code Pauli
	for i := 0; i < NumQubits; i++ {
		opA := a.Code.Get(i)
		opB := b.Code.Get(i)
		phase = phase.Mul(sqPhase[opA][opB])
		code.Set(i, sqOp[opA][opB])
	}
	return PauliGroup{Phase: phase, Code: code}
}
