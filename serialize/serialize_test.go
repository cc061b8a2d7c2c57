package serialize

import (
	"math"
	"strings"
	"testing"

	"f2q/code/fermions"
	"f2q/code/qubits"
	"f2q/terms"
)

func TestEncodeDecodeFermionSumRoundTrip(t *testing.T) {
	repr := terms.NewSumRepr[float64, fermions.Fermions]()
	repr.AddTerm(fermions.NewOffset(), 1.5)
	one, err := fermions.FromIndices(0, 2)
	if err != nil {
		t.Fatalf("FromIndices: %v", err)
	}
	repr.AddTerm(one, -0.5)

	data, err := EncodeFermionSum(repr)
	if err != nil {
		t.Fatalf("EncodeFermionSum: %v", err)
	}
	if !strings.Contains(string(data), `"encoding":"fermions"`) {
		t.Fatalf("document missing fermions encoding marker: %s", data)
	}

	got, err := DecodeFermionSum(data)
	if err != nil {
		t.Fatalf("DecodeFermionSum: %v", err)
	}
	if got.Coeff(fermions.NewOffset()) != 1.5 || got.Coeff(one) != -0.5 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestEncodeDecodePauliSumRoundTrip(t *testing.T) {
	repr := terms.NewSumRepr[float64, qubits.Pauli]()
	repr.AddTerm(qubits.Identity(), 1.0)
	xzx := qubits.FromOps([]qubits.PauliOp{qubits.X, qubits.Z, qubits.X})
	repr.AddTerm(xzx, 2.0)

	data, err := EncodePauliSum(repr)
	if err != nil {
		t.Fatalf("EncodePauliSum: %v", err)
	}
	got, err := DecodePauliSum(data)
	if err != nil {
		t.Fatalf("DecodePauliSum: %v", err)
	}
	if got.Coeff(qubits.Identity()) != 1.0 || got.Coeff(xzx) != 2.0 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestDecodeFermionSumCoalescesDuplicates(t *testing.T) {
	data := []byte(`{"type":"sumrepr","encoding":"fermions","terms":[{"code":[],"value":0.1},{"code":[],"value":0.2}]}`)
	repr, err := DecodeFermionSum(data)
	if err != nil {
		t.Fatalf("DecodeFermionSum: %v", err)
	}
	if got := repr.Coeff(fermions.NewOffset()); math.Abs(got-0.3) > 1e-12 {
		t.Fatalf("Coeff(Offset) = %v, want 0.3", got)
	}
}

func TestDecodeRejectsWrongEnvelope(t *testing.T) {
	data := []byte(`{"type":"sumrepr","encoding":"qubits","terms":[]}`)
	if _, err := DecodeFermionSum(data); err == nil {
		t.Fatal("decoding a qubits-encoded document as fermions should fail")
	}
}

func TestDigestIsStableAndHex(t *testing.T) {
	d1 := Digest([]byte("hello"))
	d2 := Digest([]byte("hello"))
	if d1 != d2 {
		t.Fatal("Digest should be deterministic")
	}
	if len(d1) != 64 {
		t.Fatalf("Digest length = %d, want 64 hex characters", len(d1))
	}
	if Digest([]byte("world")) == d1 {
		t.Fatal("different input should produce a different digest")
	}
}
