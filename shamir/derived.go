//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package shamir

import (
	"github.com/markkurossi/mpccore/field"
)

// IncrementalShareUpdate replaces the polynomial f each share carries
// with f+g, where g has coefficients deltaCoeffs, by adding g(xᵢ) to
// each share's yᵢ locally. Used when a polynomial is updated in place
// rather than re-shared from scratch.
func IncrementalShareUpdate(shares []Share, deltaCoeffs []field.Elt) []Share {
	out := make([]Share, len(shares))
	for i, s := range shares {
		out[i] = Share{X: s.X, Y: field.Add(s.Y, evalPolynomial(deltaCoeffs, s.X))}
	}
	return out
}

// MergePolynomials adds two coefficient lists term by term; the result
// has length max(len(p1), len(p2)).
func MergePolynomials(p1, p2 []field.Elt) []field.Elt {
	n := len(p1)
	if len(p2) > n {
		n = len(p2)
	}
	out := make([]field.Elt, n)
	for i := 0; i < n; i++ {
		var a, b field.Elt
		if i < len(p1) {
			a = p1[i]
		}
		if i < len(p2) {
			b = p2[i]
		}
		out[i] = field.Add(a, b)
	}
	return out
}

// AdjustThreshold reshares the secret carried by shares (reconstructed
// under tOld) under new parameters (tNew, nNew): one reconstruct
// followed by one fresh share.
func AdjustThreshold(shares []Share, tOld, tNew, nNew int, strategy XStrategy) (
	[]Share, error) {

	secret, err := Reconstruct(shares, tOld)
	if err != nil {
		return nil, err
	}
	return Split(secret, tNew, nNew, strategy)
}
