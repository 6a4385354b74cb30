package idhash

import (
	"testing"
)

func TestComputeRunID(t *testing.T) {
	got := ComputeRunID("1", "buy_sell", 1704292200000)

	if len(got) != 64 {
		t.Errorf("ComputeRunID() length = %d, want 64", len(got))
	}

	// Verify determinism: same inputs should produce same output
	got2 := ComputeRunID("1", "buy_sell", 1704292200000)
	if got != got2 {
		t.Errorf("ComputeRunID() not deterministic: %s != %s", got, got2)
	}
}

func TestComputeRunID_DifferentInputs(t *testing.T) {
	base := ComputeRunID("1", "buy_sell", 1000)

	if base == ComputeRunID("2", "buy_sell", 1000) {
		t.Error("Different security should produce different hash")
	}
	if base == ComputeRunID("1", "stub", 1000) {
		t.Error("Different strategy should produce different hash")
	}
	if base == ComputeRunID("1", "buy_sell", 2000) {
		t.Error("Different period start should produce different hash")
	}
}
