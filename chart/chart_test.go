package chart

import (
	"testing"

	"f2q/code/qubits"
	"f2q/terms"
)

func TestWeightHistogram(t *testing.T) {
	repr := terms.NewSumRepr[float64, qubits.Pauli]()
	repr.AddTerm(qubits.Identity(), 1.0)
	repr.AddTerm(qubits.FromOps([]qubits.PauliOp{qubits.X}), 1.0)
	repr.AddTerm(qubits.FromOps([]qubits.PauliOp{qubits.X, qubits.Z}), 1.0)
	repr.AddTerm(qubits.FromOps([]qubits.PauliOp{qubits.Y, qubits.Z}), 1.0)

	counts := WeightHistogram(repr)
	if counts[0] != 1 {
		t.Fatalf("counts[0] = %d, want 1 (identity)", counts[0])
	}
	if counts[1] != 1 {
		t.Fatalf("counts[1] = %d, want 1", counts[1])
	}
	if counts[2] != 2 {
		t.Fatalf("counts[2] = %d, want 2", counts[2])
	}
}

func TestBuildBarReturnsChart(t *testing.T) {
	repr := terms.NewSumRepr[float64, qubits.Pauli]()
	repr.AddTerm(qubits.Identity(), 1.0)
	bar := BuildBar(repr)
	if bar == nil {
		t.Fatal("BuildBar returned nil")
	}
}
