// Package serialize implements the stable JSON document contract for
// SumRepr values over either FermionCode or PauliString keys, plus a
// content digest convenience for the resulting bytes.
package serialize

import (
	"encoding/json"
	"sort"

	"f2q/code/fermions"
	"f2q/code/qubits"
	"f2q/internal/f2qerr"
	"f2q/terms"
)

const docType = "sumrepr"

const (
	encodingFermions = "fermions"
	encodingQubits   = "qubits"
)

type termDoc[K any] struct {
	Code  K       `json:"code"`
	Value float64 `json:"value"`
}

type document[K any] struct {
	Type     string      `json:"type"`
	Encoding string      `json:"encoding"`
	Terms    []termDoc[K] `json:"terms"`
}

// EncodeFermionSum renders repr as the "fermions"-encoded SumRepr document.
// Terms are sorted by their text form, so equal sums encode to equal bytes.
func EncodeFermionSum(repr *terms.SumRepr[float64, fermions.Fermions]) ([]byte, error) {
	doc := document[fermions.Fermions]{
		Type:     docType,
		Encoding: encodingFermions,
		Terms:    make([]termDoc[fermions.Fermions], 0, repr.Len()),
	}
	repr.Iter(func(code fermions.Fermions, coeff float64) bool {
		doc.Terms = append(doc.Terms, termDoc[fermions.Fermions]{Code: code, Value: coeff})
		return true
	})
	sort.Slice(doc.Terms, func(i, j int) bool {
		return doc.Terms[i].Code.String() < doc.Terms[j].Code.String()
	})
	return json.Marshal(doc)
}

// DecodeFermionSum parses a "fermions"-encoded SumRepr document, coalescing
// duplicate codes by addition.
func DecodeFermionSum(data []byte) (*terms.SumRepr[float64, fermions.Fermions], error) {
	var doc document[fermions.Fermions]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, f2qerr.Format("fermion sum document: " + err.Error())
	}
	if doc.Type != docType || doc.Encoding != encodingFermions {
		return nil, f2qerr.Format("fermion sum document must have type \"sumrepr\" and encoding \"fermions\"")
	}
	repr := terms.WithCapacity[float64, fermions.Fermions](len(doc.Terms))
	for _, term := range doc.Terms {
		repr.AddTerm(term.Code, term.Value)
	}
	return repr, nil
}

// EncodePauliSum renders repr as the "qubits"-encoded SumRepr document.
// Terms are sorted by qubits.Less, so equal sums encode to equal bytes.
func EncodePauliSum(repr *terms.SumRepr[float64, qubits.Pauli]) ([]byte, error) {
	doc := document[qubits.Pauli]{
		Type:     docType,
		Encoding: encodingQubits,
		Terms:    make([]termDoc[qubits.Pauli], 0, repr.Len()),
	}
	repr.Iter(func(code qubits.Pauli, coeff float64) bool {
		doc.Terms = append(doc.Terms, termDoc[qubits.Pauli]{Code: code, Value: coeff})
		return true
	})
	sort.Slice(doc.Terms, func(i, j int) bool {
		return qubits.Less(doc.Terms[i].Code, doc.Terms[j].Code)
	})
	return json.Marshal(doc)
}

// DecodePauliSum parses a "qubits"-encoded SumRepr document, coalescing
// duplicate codes by addition.
func DecodePauliSum(data []byte) (*terms.SumRepr[float64, qubits.Pauli], error) {
	var doc document[qubits.Pauli]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, f2qerr.Format("qubit sum document: " + err.Error())
	}
	if doc.Type != docType || doc.Encoding != encodingQubits {
		return nil, f2qerr.Format("qubit sum document must have type \"sumrepr\" and encoding \"qubits\"")
	}
	repr := terms.WithCapacity[float64, qubits.Pauli](len(doc.Terms))
	for _, term := range doc.Terms {
		repr.AddTerm(term.Code, term.Value)
	}
	return repr, nil
}
