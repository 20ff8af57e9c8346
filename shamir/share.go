//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package shamir implements Shamir secret sharing over the field
// Z/(2^61-1)Z: polynomial evaluation, reconstruction via Lagrange
// interpolation, homomorphic share operations, configurable x-coordinate
// strategies, and a handful of derived operations (threshold adjustment,
// incremental updates, compact serialization) used by the higher MPC
// layers.
package shamir

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

// Share is one point (x, f(x)) on a secret-carrying polynomial.
type Share struct {
	X field.Elt
	Y field.Elt
}

// evalPolynomial evaluates the polynomial with the given coefficients
// (coeffs[0] is the constant term) at x using Horner's rule.
func evalPolynomial(coeffs []field.Elt, x field.Elt) field.Elt {
	var result field.Elt
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = field.Add(field.Mul(result, x), coeffs[i])
	}
	return result
}

// randomCoefficient samples a uniform field element from r.
func randomCoefficient(r io.Reader) (field.Elt, error) {
	for {
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		v := binary.LittleEndian.Uint64(buf[:])
		// Reject-and-resample the small slice of the uint64 range that
		// would bias the distribution, rather than reducing mod p.
		if v < (^uint64(0)/uint64(field.Prime))*uint64(field.Prime) {
			return field.New(v), nil
		}
	}
}

// Split shares secret into n shares such that any t of them reconstruct
// it, using the given x-coordinate strategy. Fails if t==0, t>n, or n==0.
// With a SeededRandom strategy the polynomial coefficients are also
// derived from the seed, so the whole share set is deterministic.
func Split(secret field.Elt, t, n int, strategy XStrategy) ([]Share, error) {
	if t == 0 || n == 0 || t > n {
		return nil, mpcerr.New(mpcerr.InvalidThreshold,
			"require 0 < t <= n")
	}

	var coeffSource io.Reader = rand.Reader
	if s, ok := strategy.(seededStrategy); ok {
		coeffSource = hkdf.Expand(sha256.New, s.seed, []byte("mpccore/shamir/coeff"))
	}

	coeffs := make([]field.Elt, t)
	coeffs[0] = secret
	for i := 1; i < t; i++ {
		c, err := randomCoefficient(coeffSource)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	xs, err := strategy.Coordinates(n)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, n)
	for i, x := range xs {
		shares[i] = Share{X: x, Y: evalPolynomial(coeffs, x)}
	}
	return shares, nil
}

// Reconstruct recovers the secret from at least t shares with distinct,
// nonzero x-coordinates via Lagrange interpolation at 0.
func Reconstruct(shares []Share, t int) (field.Elt, error) {
	if len(shares) < t {
		return 0, mpcerr.New(mpcerr.InsufficientShares, "")
	}
	used := shares[:t]

	if err := checkDistinctNonzero(used); err != nil {
		return 0, err
	}

	coeffs, err := LagrangeCoefficients(xsOf(used))
	if err != nil {
		return 0, err
	}

	var secret field.Elt
	for i, s := range used {
		secret = field.Add(secret, field.Mul(s.Y, coeffs[i]))
	}
	return secret, nil
}

func xsOf(shares []Share) []field.Elt {
	xs := make([]field.Elt, len(shares))
	for i, s := range shares {
		xs[i] = s.X
	}
	return xs
}

func checkDistinctNonzero(shares []Share) error {
	seen := make(map[field.Elt]bool, len(shares))
	for _, s := range shares {
		if s.X == 0 {
			return mpcerr.New(mpcerr.InvalidSecretShare,
				"share x-coordinate must be nonzero")
		}
		if seen[s.X] {
			return mpcerr.New(mpcerr.DuplicateShare, "")
		}
		seen[s.X] = true
	}
	return nil
}

// LagrangeCoefficients precomputes λⱼ = Πₖ≠ⱼ (−xₖ)·inv(xⱼ−xₖ) for the
// fixed x-set xs, so repeated reconstructions against the same share
// positions can skip straight to Σ yⱼ·λⱼ.
func LagrangeCoefficients(xs []field.Elt) ([]field.Elt, error) {
	coeffs := make([]field.Elt, len(xs))
	for j, xj := range xs {
		num := field.One
		den := field.One
		for k, xk := range xs {
			if k == j {
				continue
			}
			num = field.Mul(num, field.Neg(xk))
			den = field.Mul(den, field.Sub(xj, xk))
		}
		denInv, ok := field.Inv(den)
		if !ok {
			return nil, mpcerr.New(mpcerr.InvalidSecretShare,
				"duplicate x-coordinate in Lagrange basis")
		}
		coeffs[j] = field.Mul(num, denInv)
	}
	return coeffs, nil
}
