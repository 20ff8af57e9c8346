//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package additive

import (
	"testing"

	"github.com/markkurossi/mpccore/field"
)

func TestRoundTrip(t *testing.T) {
	shares, err := ShareAdditive(field.New(777), 4)
	if err != nil {
		t.Fatalf("ShareAdditive: %v", err)
	}
	if len(shares) != 4 {
		t.Fatalf("got %d shares, want 4", len(shares))
	}
	if got := ReconstructAdditive(shares); got != field.New(777) {
		t.Errorf("ReconstructAdditive=%v, want 777", got)
	}
}

func TestHomomorphicOps(t *testing.T) {
	a, err := ShareAdditive(field.New(10), 3)
	if err != nil {
		t.Fatalf("ShareAdditive: %v", err)
	}
	b, err := ShareAdditive(field.New(20), 3)
	if err != nil {
		t.Fatalf("ShareAdditive: %v", err)
	}

	sum := make([]Share, 3)
	for i := range a {
		s, err := AddAdditiveShares(a[i], b[i])
		if err != nil {
			t.Fatalf("AddAdditiveShares: %v", err)
		}
		sum[i] = s
	}
	if got := ReconstructAdditive(sum); got != field.New(30) {
		t.Errorf("ReconstructAdditive(sum)=%v, want 30", got)
	}

	scaled := make([]Share, 3)
	for i := range a {
		scaled[i] = ScalarMulAdditive(a[i], field.New(5))
	}
	if got := ReconstructAdditive(scaled); got != field.New(50) {
		t.Errorf("ReconstructAdditive(scaled)=%v, want 50", got)
	}
}

func TestInvalidShareCount(t *testing.T) {
	if _, err := ShareAdditive(field.New(1), 0); err == nil {
		t.Fatalf("expected error for n=0")
	}
}
