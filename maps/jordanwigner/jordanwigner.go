// Package jordanwigner implements the streaming Jordan-Wigner expansion: the
// closed-form rewrite of one fermionic integral into a short, deterministic
// list of weighted Pauli strings.
package jordanwigner

import (
	"time"

	"f2q/code/fermions"
	"f2q/code/qubits"
	"f2q/internal/f2qerr"
	"f2q/internal/trace"
	"f2q/terms"
)

// TermPair is one (coefficient, Pauli string) contribution of an expansion.
type TermPair struct {
	Coeff float64
	Code  qubits.Pauli
}

const half = 0.5
const quarter = 0.25
const eighth = 0.125

// Expand rewrites one fermionic term as its closed-form Pauli expansion.
// The returned slice has exactly 1, 2, 4, or 8 entries depending on the
// shape of code, per the Jordan-Wigner term-count table.
func Expand(coeff float64, code fermions.Fermions) ([]TermPair, error) {
	defer trace.Track(time.Now(), "Expand")

	switch code.Kind() {
	case fermions.Offset:
		return []TermPair{{Coeff: coeff, Code: qubits.Identity()}}, nil
	case fermions.OneElectron:
		cr, an := code.One()
		p, q := int(cr.Index()), int(an.Index())
		if p == q {
			return oneDiagonal(coeff, p), nil
		}
		return oneOffDiagonal(coeff, p, q), nil
	case fermions.TwoElectron:
		cr0, cr1, an0, an1 := code.Two()
		p, q, r, s := int(cr0.Index()), int(cr1.Index()), int(an0.Index()), int(an1.Index())
		switch {
		case p == s && q == r:
			return twoDiagonalExchange(coeff, p, q), nil
		case q == r:
			return twoPartialContraction(coeff, p, q, s), nil
		default:
			return twoGeneral(coeff, p, q, r, s), nil
		}
	default:
		return nil, f2qerr.Format("unrecognized fermion code kind")
	}
}

// zChain returns the Pauli string with Z on every qubit strictly between lo
// and hi, I elsewhere.
func zChain(lo, hi int) qubits.Pauli {
	var p qubits.Pauli
	for i := lo + 1; i < hi; i++ {
		p.Set(i, qubits.Z)
	}
	return p
}

func oneDiagonal(coeff float64, p int) []TermPair {
	var zp qubits.Pauli
	zp.Set(p, qubits.Z)
	return []TermPair{
		{Coeff: coeff * half, Code: qubits.Identity()},
		{Coeff: -coeff * half, Code: zp},
	}
}

func oneOffDiagonal(coeff float64, p, q int) []TermPair {
	chain := zChain(p, q)

	xx := chain
	xx.Set(p, qubits.X)
	xx.Set(q, qubits.X)

	yy := chain
	yy.Set(p, qubits.Y)
	yy.Set(q, qubits.Y)

	return []TermPair{
		{Coeff: coeff * half, Code: xx},
		{Coeff: coeff * half, Code: yy},
	}
}

func twoDiagonalExchange(coeff float64, p, q int) []TermPair {
	f := coeff * quarter

	var zp, zq, zpzq qubits.Pauli
	zp.Set(p, qubits.Z)
	zq.Set(q, qubits.Z)
	zpzq.Set(p, qubits.Z)
	zpzq.Set(q, qubits.Z)

	return []TermPair{
		{Coeff: f, Code: qubits.Identity()},
		{Coeff: -f, Code: zp},
		{Coeff: -f, Code: zq},
		{Coeff: f, Code: zpzq},
	}
}

func twoPartialContraction(coeff float64, p, q, s int) []TermPair {
	f := coeff * quarter
	chain := zChain(p, s)

	xpxs := chain
	xpxs.Set(p, qubits.X)
	xpxs.Set(s, qubits.X)

	xpxsZq := xpxs
	xpxsZq.Set(q, qubits.Z)

	ypys := chain
	ypys.Set(p, qubits.Y)
	ypys.Set(s, qubits.Y)

	ypysZq := ypys
	ypysZq.Set(q, qubits.Z)

	return []TermPair{
		{Coeff: f, Code: xpxs},
		{Coeff: -f, Code: xpxsZq},
		{Coeff: f, Code: ypys},
		{Coeff: -f, Code: ypysZq},
	}
}

// twoGeneralRows names the four operators placed at qubits (p, q, r, s) and
// the sign of the term, in the order enumerated by the closed-form table.
var twoGeneralRows = [8]struct {
	ops  [4]qubits.PauliOp
	sign float64
}{
	{[4]qubits.PauliOp{qubits.X, qubits.X, qubits.X, qubits.X}, 1},
	{[4]qubits.PauliOp{qubits.X, qubits.X, qubits.Y, qubits.Y}, -1},
	{[4]qubits.PauliOp{qubits.X, qubits.Y, qubits.X, qubits.Y}, 1},
	{[4]qubits.PauliOp{qubits.Y, qubits.X, qubits.X, qubits.Y}, 1},
	{[4]qubits.PauliOp{qubits.Y, qubits.X, qubits.Y, qubits.X}, 1},
	{[4]qubits.PauliOp{qubits.Y, qubits.Y, qubits.X, qubits.X}, -1},
	{[4]qubits.PauliOp{qubits.X, qubits.Y, qubits.Y, qubits.X}, 1},
	{[4]qubits.PauliOp{qubits.Y, qubits.Y, qubits.Y, qubits.Y}, 1},
}

func twoGeneral(coeff float64, p, q, r, s int) []TermPair {
	f := coeff * eighth
	chain := zChain(p, q)
	for i := s + 1; i < r; i++ {
		chain.Set(i, qubits.Z)
	}

	out := make([]TermPair, 0, 8)
	for _, row := range twoGeneralRows {
		code := chain
		code.Set(p, row.ops[0])
		code.Set(q, row.ops[1])
		code.Set(r, row.ops[2])
		code.Set(s, row.ops[3])
		out = append(out, TermPair{Coeff: row.sign * f, Code: code})
	}
	return out
}

// JordanWigner is a term source: it maps over every (coefficient, fermion
// code) pair of a source SumRepr and extends a target Pauli SumRepr with
// the per-term closed-form expansion.
type JordanWigner struct {
	source *terms.SumRepr[float64, fermions.Fermions]
}

// New wraps a fermion SumRepr as a Jordan-Wigner term source.
func New(source *terms.SumRepr[float64, fermions.Fermions]) *JordanWigner {
	return &JordanWigner{source: source}
}

// AddTo expands every term of the wrapped fermion sum and folds the result
// into repr. The source and repr must not be the same accumulator.
func (jw *JordanWigner) AddTo(repr *terms.SumRepr[float64, qubits.Pauli]) error {
	defer trace.Track(time.Now(), "JordanWigner.AddTo")

	var outerErr error
	jw.source.Iter(func(code fermions.Fermions, coeff float64) bool {
		pairs, err := Expand(coeff, code)
		if err != nil {
			outerErr = err
			return false
		}
		for _, pair := range pairs {
			repr.AddTerm(pair.Code, pair.Coeff)
		}
		return true
	})
	return outerErr
}
