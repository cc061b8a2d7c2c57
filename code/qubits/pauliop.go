// Package qubits provides the canonical qubit-side representations: the
// single-qubit Pauli alphabet, the bit-packed 64-qubit Pauli string, and the
// Root4 x Pauli product group used to track phases during multiplication.
package qubits

import "f2q/internal/f2qerr"

// PauliOp is a single-qubit Pauli operator, one of {I, X, Y, Z}.
type PauliOp uint8

const (
	// I is the identity operator. It is the zero value of PauliOp.
	I PauliOp = iota
	X
	Y
	Z
)

// PauliOpFromInt converts an integer in 0..=3 to a PauliOp. Any other value
// is a f2qerr.ErrBadIndex error.
func PauliOpFromInt(v int) (PauliOp, error) {
	switch v {
	case 0:
		return I, nil
	case 1:
		return X, nil
	case 2:
		return Y, nil
	case 3:
		return Z, nil
	default:
		return I, f2qerr.Index("Pauli index should be within 0..=3")
	}
}

// Int returns the integer encoding of op, in 0..=3.
func (op PauliOp) Int() int {
	return int(op)
}

// String renders op as a single character: "I", "X", "Y", or "Z".
func (op PauliOp) String() string {
	switch op {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// ParsePauliOp reads a single Pauli character. Any character other than
// 'I', 'X', 'Y', 'Z' is a f2qerr.ErrBadFormat error.
func ParsePauliOp(ch byte) (PauliOp, error) {
	switch ch {
	case 'I':
		return I, nil
	case 'X':
		return X, nil
	case 'Y':
		return Y, nil
	case 'Z':
		return Z, nil
	default:
		return I, f2qerr.Format("character must be one of: I, X, Y, Z")
	}
}
