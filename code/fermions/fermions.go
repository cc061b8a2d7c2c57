package fermions

import (
	"encoding/json"
	"fmt"

	"f2q/internal/f2qerr"
)

// Kind discriminates the three shapes a Fermions value can take.
type Kind uint8

const (
	// Offset is the constant term (identity operator).
	Offset Kind = iota
	// OneElectron is a†_p a_q.
	OneElectron
	// TwoElectron is a†_p a†_q a_r a_s.
	TwoElectron
)

// maxOrbitalIndex is the admissibility bound shared with Pauli: orbital
// indices must be strictly less than 64 to be representable by a single
// Pauli string.
const maxOrbitalIndex = 64

// Fermions is a canonically-ordered fermionic integral: the constant
// offset, a one-electron term a†_p a_q with p<=q, or a two-electron term
// a†_p a†_q a_r a_s with p<q, r>s, p<=s. The zero value is Offset.
type Fermions struct {
	kind   Kind
	cr, cr2 Orbital
	an, an2 Orbital
}

// NewOffset returns the constant-offset term.
func NewOffset() Fermions {
	return Fermions{kind: Offset}
}

// OneElectronTerm builds a one-electron integral. It fails with
// f2qerr.ErrBadIndex unless cr.Index() <= an.Index(), or either index is
// >= 64.
func OneElectronTerm(cr Cr, an An) (Fermions, error) {
	if cr.Index() >= maxOrbitalIndex || an.Index() >= maxOrbitalIndex {
		return Fermions{}, f2qerr.Index("orbital index must be less than 64")
	}
	if cr.Index() > an.Index() {
		return Fermions{}, f2qerr.Index("one-electron term orbital ordering")
	}
	return Fermions{kind: OneElectron, cr: cr.Orbital, an: an.Orbital}, nil
}

// TwoElectronTerm builds a two-electron integral. It fails with
// f2qerr.ErrBadIndex unless cr.0.Index() < cr.1.Index(), an.0.Index() >
// an.1.Index(), cr.0.Index() <= an.1.Index(), and every index is < 64.
func TwoElectronTerm(cr0, cr1 Cr, an0, an1 An) (Fermions, error) {
	for _, idx := range []uint32{cr0.Index(), cr1.Index(), an0.Index(), an1.Index()} {
		if idx >= maxOrbitalIndex {
			return Fermions{}, f2qerr.Index("orbital index must be less than 64")
		}
	}
	if !(cr0.Index() < cr1.Index() && an0.Index() > an1.Index() && cr0.Index() <= an1.Index()) {
		return Fermions{}, f2qerr.Index("two-electron term orbital ordering")
	}
	return Fermions{
		kind: TwoElectron,
		cr:   cr0.Orbital,
		cr2:  cr1.Orbital,
		an:   an0.Orbital,
		an2:  an1.Orbital,
	}, nil
}

// Kind reports which of the three shapes f is.
func (f Fermions) Kind() Kind {
	return f.kind
}

// One returns the (cr, an) pair for a one-electron term. Valid only when
// Kind() == OneElectron.
func (f Fermions) One() (cr Cr, an An) {
	return Cr{Orbital: f.cr}, An{Orbital: f.an}
}

// Two returns the ((cr0,cr1),(an0,an1)) orbitals for a two-electron term.
// Valid only when Kind() == TwoElectron.
func (f Fermions) Two() (cr0, cr1 Cr, an0, an1 An) {
	return Cr{Orbital: f.cr}, Cr{Orbital: f.cr2}, An{Orbital: f.an}, An{Orbital: f.an2}
}

// FromIndices constructs a one-electron term from raw orbital indices
// (p, q) meaning a†_p a_q.
func FromIndices(p, q uint32) (Fermions, error) {
	return OneElectronTerm(Cr{Orbital: OrbitalWithIndex(p)}, An{Orbital: OrbitalWithIndex(q)})
}

// FromIndices4 constructs a two-electron term from raw orbital indices
// (p, q, r, s) meaning a†_p a†_q a_r a_s.
func FromIndices4(p, q, r, s uint32) (Fermions, error) {
	return TwoElectronTerm(
		Cr{Orbital: OrbitalWithIndex(p)}, Cr{Orbital: OrbitalWithIndex(q)},
		An{Orbital: OrbitalWithIndex(r)}, An{Orbital: OrbitalWithIndex(s)},
	)
}

// String renders the integral as a bracketed list of orbital indices:
// "[]", "[p, q]", or "[p, q, r, s]".
func (f Fermions) String() string {
	switch f.kind {
	case Offset:
		return "[]"
	case OneElectron:
		return fmt.Sprintf("[%d, %d]", f.cr.Index(), f.an.Index())
	case TwoElectron:
		return fmt.Sprintf("[%d, %d, %d, %d]", f.cr.Index(), f.cr2.Index(), f.an.Index(), f.an2.Index())
	default:
		return "[?]"
	}
}

// MarshalJSON renders f as a JSON array of 0, 2, or 4 orbital indices, in
// the order (cr, an) or (cr0, cr1, an0, an1).
func (f Fermions) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case Offset:
		return json.Marshal([]uint32{})
	case OneElectron:
		return json.Marshal([]uint32{f.cr.Index(), f.an.Index()})
	case TwoElectron:
		return json.Marshal([]uint32{f.cr.Index(), f.cr2.Index(), f.an.Index(), f.an2.Index()})
	default:
		return nil, f2qerr.Format("unrecognized fermion code kind")
	}
}

// UnmarshalJSON parses f from a JSON array of 0, 2, or 4 non-negative
// orbital indices, enforcing the same canonical-order invariants as the
// constructors.
func (f *Fermions) UnmarshalJSON(data []byte) error {
	var raw []uint32
	if err := json.Unmarshal(data, &raw); err != nil {
		return f2qerr.Format("fermion code: " + err.Error())
	}
	var parsed Fermions
	var err error
	switch len(raw) {
	case 0:
		parsed = NewOffset()
	case 2:
		parsed, err = FromIndices(raw[0], raw[1])
	case 4:
		parsed, err = FromIndices4(raw[0], raw[1], raw[2], raw[3])
	default:
		return f2qerr.Format(fmt.Sprintf("fermion code must have 0, 2, or 4 indices, got %d", len(raw)))
	}
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
