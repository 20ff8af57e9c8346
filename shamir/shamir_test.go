//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package shamir

import (
	"bytes"
	"testing"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

func TestShareReconstruct(t *testing.T) {
	shares, err := Split(field.New(12345), 3, 5, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(shares) != 5 {
		t.Fatalf("got %d shares, want 5", len(shares))
	}

	got, err := Reconstruct(shares[:3], 3)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(12345) {
		t.Errorf("Reconstruct=%v, want 12345", got)
	}

	if _, err := Reconstruct(shares[:2], 3); err == nil {
		t.Fatalf("Reconstruct with 2 shares should fail")
	} else {
		var e *mpcerr.Error
		if !asError(err, &e) || e.Kind != mpcerr.InsufficientShares {
			t.Errorf("expected InsufficientShares, got %v", err)
		}
	}
}

func asError(err error, target **mpcerr.Error) bool {
	e, ok := err.(*mpcerr.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestShareInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		t, n int
	}{
		{"zero threshold", 0, 5},
		{"threshold exceeds n", 4, 3},
		{"zero parties", 2, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Split(field.New(1), test.t, test.n, Sequential()); err == nil {
				t.Fatalf("expected error for t=%d n=%d", test.t, test.n)
			}
		})
	}
}

func TestHomomorphicAdd(t *testing.T) {
	sharesA, err := Split(field.New(100), 2, 3, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	sharesB, err := Split(field.New(200), 2, 3, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	var sum []Share
	for i := range sharesA {
		s, err := AddShares(sharesA[i], sharesB[i])
		if err != nil {
			t.Fatalf("AddShares: %v", err)
		}
		sum = append(sum, s)
	}

	got, err := Reconstruct(sum, 2)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(300) {
		t.Errorf("Reconstruct(sum)=%v, want 300", got)
	}
}

func TestHomomorphicSubAndScalarMul(t *testing.T) {
	shares, err := Split(field.New(50), 2, 3, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	scaled := make([]Share, len(shares))
	for i, s := range shares {
		scaled[i] = ScalarMul(s, field.New(4))
	}
	got, err := Reconstruct(scaled, 2)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(200) {
		t.Errorf("Reconstruct(scaled)=%v, want 200", got)
	}

	zero, err := Split(field.New(0), 2, 3, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	var diff []Share
	for i := range shares {
		d, err := SubShares(shares[i], zero[i])
		if err != nil {
			t.Fatalf("SubShares: %v", err)
		}
		diff = append(diff, d)
	}
	got, err = Reconstruct(diff, 2)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(50) {
		t.Errorf("Reconstruct(diff)=%v, want 50", got)
	}
}

func TestSeededDeterminism(t *testing.T) {
	seed := []byte("fixed-seed-12345")

	s1, err := Split(field.New(999), 3, 4, SeededRandom(seed))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	s2, err := Split(field.New(999), 3, 4, SeededRandom(seed))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if !bytes.Equal(CompressShares(s1), CompressShares(s2)) {
		t.Fatalf("seeded shares are not byte-identical across runs")
	}
}

func TestCompressDecompressRoundtrip(t *testing.T) {
	shares, err := Split(field.New(42), 2, 4, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	buf := CompressShares(shares)
	got, err := DecompressShares(buf)
	if err != nil {
		t.Fatalf("DecompressShares: %v", err)
	}
	if len(got) != len(shares) {
		t.Fatalf("got %d shares, want %d", len(got), len(shares))
	}
	for i := range shares {
		if got[i] != shares[i] {
			t.Errorf("share %d: got %+v, want %+v", i, got[i], shares[i])
		}
	}
}

func TestDecompressInvalidLength(t *testing.T) {
	if _, err := DecompressShares([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected SerializationError on misaligned buffer")
	}
}

func TestAdjustThreshold(t *testing.T) {
	shares, err := Split(field.New(555), 2, 3, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	reshared, err := AdjustThreshold(shares[:2], 2, 3, 5, Sequential())
	if err != nil {
		t.Fatalf("AdjustThreshold: %v", err)
	}
	if len(reshared) != 5 {
		t.Fatalf("got %d shares, want 5", len(reshared))
	}
	got, err := Reconstruct(reshared[:3], 3)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(555) {
		t.Errorf("Reconstruct=%v, want 555", got)
	}
}

func TestMergePolynomials(t *testing.T) {
	p1 := []field.Elt{field.New(1), field.New(2)}
	p2 := []field.Elt{field.New(10), field.New(20), field.New(30)}

	merged := MergePolynomials(p1, p2)
	want := []field.Elt{field.New(11), field.New(22), field.New(30)}
	for i := range want {
		if merged[i] != want[i] {
			t.Errorf("merged[%d]=%v, want %v", i, merged[i], want[i])
		}
	}
}

func TestIncrementalShareUpdate(t *testing.T) {
	shares, err := Split(field.New(7), 2, 3, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	delta := []field.Elt{field.New(3)}

	updated := IncrementalShareUpdate(shares, delta)
	got, err := Reconstruct(updated, 2)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got != field.New(10) {
		t.Errorf("Reconstruct(updated)=%v, want 10", got)
	}
}

func TestLagrangeCoefficientsMatchReconstruct(t *testing.T) {
	shares, err := Split(field.New(314), 3, 3, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	coeffs, err := LagrangeCoefficients(xsOf(shares))
	if err != nil {
		t.Fatalf("LagrangeCoefficients: %v", err)
	}

	var secret field.Elt
	for i, s := range shares {
		secret = field.Add(secret, field.Mul(s.Y, coeffs[i]))
	}
	if secret != field.New(314) {
		t.Errorf("precomputed Lagrange reconstruction=%v, want 314", secret)
	}
}

func TestDuplicateShareRejected(t *testing.T) {
	shares, err := Split(field.New(1), 2, 2, Sequential())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	dup := []Share{shares[0], shares[0]}
	if _, err := Reconstruct(dup, 2); err == nil {
		t.Fatalf("expected DuplicateShare error")
	}
}
