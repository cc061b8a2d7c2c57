// Package gen produces pseudo-random, reproducible fermionic Hamiltonians
// for the generate subcommand, seeded by a keyed PRNG so the same seed
// always yields the same sum.
package gen

import (
	"encoding/binary"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"

	"f2q/code/fermions"
	"f2q/terms"
)

// Config controls the shape of a generated Hamiltonian.
type Config struct {
	// Seed keys the PRNG; the same seed always reproduces the same sum.
	Seed []byte
	// NumOrbitals bounds the orbital indices drawn, exclusive.
	NumOrbitals uint32
	// NumOneBody is the number of one-electron terms to draw.
	NumOneBody int
	// NumTwoBody is the number of two-electron terms to draw.
	NumTwoBody int
	// CoeffScale bounds the magnitude of drawn coefficients.
	CoeffScale float64
}

// Generate builds a fermion SumRepr with a constant offset plus the
// requested number of one- and two-electron terms, all drawn from the
// seeded PRNG.
func Generate(cfg Config) (*terms.SumRepr[float64, fermions.Fermions], error) {
	prng, err := utils.NewKeyedPRNG(cfg.Seed)
	if err != nil {
		return nil, err
	}

	repr := terms.WithCapacity[float64, fermions.Fermions](1 + cfg.NumOneBody + cfg.NumTwoBody)
	repr.AddTerm(fermions.NewOffset(), nextCoeff(prng, cfg.CoeffScale))

	for i := 0; i < cfg.NumOneBody; i++ {
		p, q := orderedPair(prng, cfg.NumOrbitals)
		code, err := fermions.FromIndices(p, q)
		if err != nil {
			return nil, err
		}
		repr.AddTerm(code, nextCoeff(prng, cfg.CoeffScale))
	}

	for i := 0; i < cfg.NumTwoBody; i++ {
		p, q, r, s := canonicalQuadruple(prng, cfg.NumOrbitals)
		code, err := fermions.FromIndices4(p, q, r, s)
		if err != nil {
			return nil, err
		}
		repr.AddTerm(code, nextCoeff(prng, cfg.CoeffScale))
	}

	return repr, nil
}

func nextUint32(prng utils.PRNG, bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	buf := make([]byte, 4)
	if _, err := prng.Read(buf); err != nil {
		return 0
	}
	return binary.BigEndian.Uint32(buf) % bound
}

func nextCoeff(prng utils.PRNG, scale float64) float64 {
	buf := make([]byte, 8)
	if _, err := prng.Read(buf); err != nil {
		return 0
	}
	r := new(big.Int).SetBytes(buf)
	r.Mod(r, big.NewInt(1<<53))
	frac := float64(r.Int64()) / float64(int64(1)<<53)
	return (frac*2 - 1) * scale
}

// orderedPair draws p<=q from [0, bound).
func orderedPair(prng utils.PRNG, bound uint32) (uint32, uint32) {
	a := nextUint32(prng, bound)
	b := nextUint32(prng, bound)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// canonicalQuadruple draws p<q, r>s, p<=s, all within [0, bound), retrying
// until the draw satisfies the invariant (bound must be at least 2).
func canonicalQuadruple(prng utils.PRNG, bound uint32) (p, q, r, s uint32) {
	if bound < 2 {
		bound = 2
	}
	for {
		p = nextUint32(prng, bound)
		q = nextUint32(prng, bound)
		r = nextUint32(prng, bound)
		s = nextUint32(prng, bound)
		if p < q && r > s && p <= s {
			return
		}
	}
}
