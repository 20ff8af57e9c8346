//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package replicated

import (
	"testing"

	"github.com/markkurossi/mpccore/field"
)

func TestDealAndReconstructAllPairs(t *testing.T) {
	shares, err := Deal(field.New(777))
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}

	pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, p := range pairs {
		got, err := Reconstruct(shares[p[0]], shares[p[1]])
		if err != nil {
			t.Fatalf("Reconstruct(%d,%d): %v", p[0], p[1], err)
		}
		if got != field.New(777) {
			t.Errorf("Reconstruct(%d,%d)=%v, want 777", p[0], p[1], got)
		}
	}
}

func TestVerifyReplicatedShares(t *testing.T) {
	shares, err := Deal(field.New(42))
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if !VerifyReplicatedShares(shares) {
		t.Fatalf("expected valid shares to verify")
	}

	corrupted := shares
	corrupted[1].Share1 = field.Add(corrupted[1].Share1, field.New(1))
	if VerifyReplicatedShares(corrupted) {
		t.Fatalf("expected corrupted shares to fail verification")
	}
}

func TestLocalAddSubScalarMul(t *testing.T) {
	a, err := Deal(field.New(10))
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	b, err := Deal(field.New(20))
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}

	var sum [3]Share
	for i := 0; i < 3; i++ {
		s, err := Add(a[i], b[i])
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		sum[i] = s
	}
	got, err := Reconstruct(sum[0], sum[1])
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(30) {
		t.Errorf("Reconstruct(sum)=%v, want 30", got)
	}

	var diff [3]Share
	for i := 0; i < 3; i++ {
		d, err := Sub(b[i], a[i])
		if err != nil {
			t.Fatalf("Sub: %v", err)
		}
		diff[i] = d
	}
	got, err = Reconstruct(diff[1], diff[2])
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(10) {
		t.Errorf("Reconstruct(diff)=%v, want 10", got)
	}

	var scaled [3]Share
	for i := 0; i < 3; i++ {
		scaled[i] = ScalarMul(a[i], field.New(3))
	}
	got, err = Reconstruct(scaled[0], scaled[2])
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(30) {
		t.Errorf("Reconstruct(scaled)=%v, want 30", got)
	}
}

func TestLocalMultiplyCrossProducts(t *testing.T) {
	a, err := Deal(field.New(6))
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	b, err := Deal(field.New(7))
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}

	cp, err := LocalMultiply(a[0], b[0])
	if err != nil {
		t.Fatalf("LocalMultiply: %v", err)
	}
	want := field.Mul(a[0].Share1, b[0].Share1)
	if cp.A1B1 != want {
		t.Errorf("A1B1=%v, want %v", cp.A1B1, want)
	}
}

func TestMismatchedPartyRejected(t *testing.T) {
	shares, err := Deal(field.New(1))
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if _, err := Add(shares[0], shares[1]); err == nil {
		t.Fatalf("expected mismatched-party error")
	}
}
