package qubits

import (
	"encoding/json"
	"strings"

	"f2q/internal/f2qerr"
)

const pauliMask = 0b11

// NumQubits is the hard upper bound on the number of qubits a Pauli string
// can address. It is implicit in the 128-bit packing (two 64-bit words, two
// bits per qubit) and is not configurable: raising it would require
// redefining Pauli and the Jordan-Wigner parity computation.
const NumQubits = 64

// Pauli is a tensor product of up to 64 single-qubit Pauli operators,
// bit-packed two bits per qubit into a pair of 64-bit words: Lo holds qubits
// 0..31, Hi holds qubits 32..63, each pair of bits little-endian within its
// word.
type Pauli struct {
	Lo, Hi uint64
}

// NewPauli constructs a Pauli string directly from its packed words.
func NewPauli(lo, hi uint64) Pauli {
	return Pauli{Lo: lo, Hi: hi}
}

// Identity returns the all-identity Pauli string. It is also the zero
// value of Pauli.
func Identity() Pauli {
	return Pauli{}
}

// Index returns the 128-bit little-endian view of the packed words: Lo in
// the low 64 bits, Hi in the high 64 bits. Used for equality, ordering, and
// serialization hashing.
func (p Pauli) Index() (lo, hi uint64) {
	return p.Lo, p.Hi
}

// Get returns the Pauli operator at qubit index i. Index i must be in
// 0..64; out-of-range indices return I (absent).
func (p Pauli) Get(i int) PauliOp {
	if i < 0 || i >= NumQubits {
		return I
	}
	var bits uint64
	if i < 32 {
		bits = (p.Lo >> (uint(i) * 2)) & pauliMask
	} else {
		bits = (p.Hi >> (uint(i-32) * 2)) & pauliMask
	}
	op, err := PauliOpFromInt(int(bits))
	if err != nil {
		panic("qubits: incorrect encoding, this is a bug")
	}
	return op
}

// Set overwrites the Pauli operator at qubit index i. Index i must be in
// 0..64; out of range is a programmer error and panics.
func (p *Pauli) Set(i int, op PauliOp) {
	if i < 0 || i >= NumQubits {
		panic("qubits: index should be within 0..64")
	}
	v := uint64(op)
	if i < 32 {
		shift := uint(i) * 2
		p.Lo &^= pauliMask << shift
		p.Lo |= v << shift
	} else {
		shift := uint(i-32) * 2
		p.Hi &^= pauliMask << shift
		p.Hi |= v << shift
	}
}

// FromOps builds a Pauli string from a sequence of operators, placing them
// at positions 0, 1, 2, ... At most 64 are taken; remaining qubits stay I.
func FromOps(ops []PauliOp) Pauli {
	var p Pauli
	n := len(ops)
	if n > NumQubits {
		n = NumQubits
	}
	for i := 0; i < n; i++ {
		p.Set(i, ops[i])
	}
	return p
}

// Parity returns the Pauli string with Z on qubits 0..k (exclusive) and I
// elsewhere. Panics if k > 64.
func Parity(k int) Pauli {
	if k > NumQubits {
		panic("qubits: number of qubits must be within 0..=64")
	}
	var p Pauli
	for i := 0; i < k; i++ {
		p.Set(i, Z)
	}
	return p
}

// Less orders Pauli strings lexicographically on (Hi, Lo), so that higher
// qubit indices dominate the ordering.
func Less(a, b Pauli) bool {
	if a.Hi != b.Hi {
		return a.Hi < b.Hi
	}
	return a.Lo < b.Lo
}

// Iter returns the 64 Pauli operators in qubit order 0..63.
func (p Pauli) Iter() []PauliOp {
	ops := make([]PauliOp, NumQubits)
	for i := range ops {
		ops[i] = p.Get(i)
	}
	return ops
}

// String renders the Pauli string as 64 characters with trailing 'I'
// stripped; the all-identity string renders as "I" (never the empty
// string).
func (p Pauli) String() string {
	if p.Lo == 0 && p.Hi == 0 {
		return "I"
	}
	var b strings.Builder
	b.Grow(NumQubits)
	for i := 0; i < NumQubits; i++ {
		b.WriteString(p.Get(i).String())
	}
	return strings.TrimRight(b.String(), "I")
}

// ParsePauli reads a Pauli string of 1..=64 characters over {I,X,Y,Z},
// qubit 0 first. Length 0 or >64, or an unrecognized character, is a
// f2qerr.ErrBadFormat error.
func ParsePauli(s string) (Pauli, error) {
	if len(s) == 0 || len(s) > NumQubits {
		return Pauli{}, f2qerr.Format("str len out of range: 1..=64")
	}
	var p Pauli
	for i := 0; i < len(s); i++ {
		op, err := ParsePauliOp(s[i])
		if err != nil {
			return Pauli{}, err
		}
		p.Set(i, op)
	}
	return p, nil
}

// MarshalJSON renders p as its text encoding, quoted.
func (p Pauli) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON parses p from its text encoding.
func (p *Pauli) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return f2qerr.Format("pauli string: " + err.Error())
	}
	parsed, err := ParsePauli(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
