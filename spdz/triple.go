//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package spdz

import (
	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

// AuthTriple is a Beaver triple whose a, b and c are themselves SPDZ
// authenticated shares (value plus MAC under the session's Δ) rather
// than plain Shamir shares, the authenticated form the online
// multiplication protocol in Multiply needs: it must open d=x-a and
// e=y-b with a MAC check, which only works if a and b carry MACs of
// their own.
type AuthTriple struct {
	A, B, C []AuthShare
}

// DealAuthTriple produces a fresh authenticated Beaver triple for n
// parties under the global key delta, the SPDZ-share analogue of the
// trusted-dealer generator in beaver/dealer: a trusted dealer samples
// a, b, computes c=a·b and additively shares and authenticates all
// three.
func DealAuthTriple(n int, delta field.Elt) (AuthTriple, error) {
	a, err := randomElt()
	if err != nil {
		return AuthTriple{}, err
	}
	b, err := randomElt()
	if err != nil {
		return AuthTriple{}, err
	}
	c := field.Mul(a, b)

	aShares, err := authenticatedShare(a, n, delta)
	if err != nil {
		return AuthTriple{}, err
	}
	bShares, err := authenticatedShare(b, n, delta)
	if err != nil {
		return AuthTriple{}, err
	}
	cShares, err := authenticatedShare(c, n, delta)
	if err != nil {
		return AuthTriple{}, err
	}

	return AuthTriple{A: aShares, B: bShares, C: cShares}, nil
}

func authenticatedShare(v field.Elt, n int, delta field.Elt) ([]AuthShare, error) {
	valueShares, err := additiveShare(v, n)
	if err != nil {
		return nil, err
	}
	macShares, err := additiveShare(field.Mul(v, delta), n)
	if err != nil {
		return nil, err
	}
	shares := make([]AuthShare, n)
	for i := 0; i < n; i++ {
		shares[i] = AuthShare{PartyID: i, Value: valueShares[i], MAC: macShares[i]}
	}
	return shares, nil
}

// ConstantShare authenticates a public constant c as an n-party SPDZ
// share: party 0 folds c into its value share, and every party
// updates its MAC share by deltaShares[i]·c, mirroring
// AddPublicConstant applied to an all-zero share.
func ConstantShare(n int, deltaShares []field.Elt, c field.Elt) []AuthShare {
	out := make([]AuthShare, n)
	for i := 0; i < n; i++ {
		out[i] = AddPublicConstant(AuthShare{PartyID: i}, deltaShares[i], c, i == 0)
	}
	return out
}

// Multiply computes [x·y] from authenticated shares [x], [y] and a
// fresh AuthTriple, opening d=x-a and e=y-b with their MAC checks and
// locally recombining z = c + d·b + e·a + d·e. triple is consumed by
// the caller's choice of storage; Multiply itself does not mutate it
// since, unlike the Shamir triple in beaver.SecureMultiply, an
// AuthTriple carries no shared backing map to null out.
func Multiply(x, y []AuthShare, triple AuthTriple, deltaShares []field.Elt) ([]AuthShare, error) {
	n := len(x)
	if len(y) != n || len(deltaShares) != n ||
		len(triple.A) != n || len(triple.B) != n || len(triple.C) != n {
		return nil, mpcerr.New(mpcerr.ProtocolError,
			"spdz: mismatched share vector lengths in Multiply")
	}

	dShares := make([]AuthShare, n)
	eShares := make([]AuthShare, n)
	for i := 0; i < n; i++ {
		dShares[i] = Sub(x[i], triple.A[i])
		eShares[i] = Sub(y[i], triple.B[i])
	}

	d, err := Open(dShares, deltaShares)
	if err != nil {
		return nil, mpcerr.Wrap(mpcerr.MacCheckFailure, "spdz: opening d=x-a", err)
	}
	e, err := Open(eShares, deltaShares)
	if err != nil {
		return nil, mpcerr.Wrap(mpcerr.MacCheckFailure, "spdz: opening e=y-b", err)
	}
	de := field.Mul(d, e)

	out := make([]AuthShare, n)
	for i := 0; i < n; i++ {
		z := Add(triple.C[i], MulPublic(triple.B[i], d))
		z = Add(z, MulPublic(triple.A[i], e))
		z = AddPublicConstant(z, deltaShares[i], de, i == 0)
		out[i] = z
	}
	return out, nil
}

// ExpPublic raises an authenticated share to a public, non-secret
// exponent by square-and-multiply, consuming one triple per
// multiplication from triples, in order: a multiply-in for every set
// bit (the top one included) and a squaring for every bit below the
// top one.
// It generalizes the teacher's P-256-specific ExpShare/InvShare to
// this module's fixed prime field, since Fermat inverse (field.Inv)
// needs exponentiation by p-2 when run over secret-shared bases.
func ExpPublic(x []AuthShare, exponent uint64, triples []AuthTriple, deltaShares []field.Elt) (
	[]AuthShare, error) {

	n := len(x)
	result := ConstantShare(n, deltaShares, field.New(1))
	base := x
	idx := 0

	take := func() (AuthTriple, error) {
		if idx >= len(triples) {
			return AuthTriple{}, mpcerr.New(mpcerr.InvalidSecretShare,
				"spdz: ExpPublic ran out of beaver triples")
		}
		t := triples[idx]
		idx++
		return t, nil
	}

	e := exponent
	for e > 0 {
		if e&1 == 1 {
			tri, err := take()
			if err != nil {
				return nil, err
			}
			result, err = Multiply(result, base, tri, deltaShares)
			if err != nil {
				return nil, err
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		tri, err := take()
		if err != nil {
			return nil, err
		}
		base, err = Multiply(base, base, tri, deltaShares)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
