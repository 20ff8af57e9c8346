//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package beaver

import (
	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
	"github.com/markkurossi/mpccore/shamir"
)

// SecureMultiply computes [x·y] from Shamir shares [x], [y] of degree
// t, keyed by party id, and a fresh Beaver triple, opening only
// d=x-a and e=y-b in a single round. triple is consumed: Shares is
// emptied before return so a caller cannot accidentally reuse it for a
// second multiplication.
func SecureMultiply(x, y map[uint64]shamir.Share, t int, triple *Triple) (
	map[uint64]shamir.Share, error) {

	if len(triple.Shares) == 0 {
		return nil, mpcerr.New(mpcerr.InvalidSecretShare,
			"triple already consumed")
	}

	var dShares, eShares []shamir.Share
	ids := make([]uint64, 0, len(triple.Shares))
	for id, ts := range triple.Shares {
		xs, ok := x[id]
		if !ok {
			return nil, mpcerr.New(mpcerr.InvalidSecretShare,
				"missing x share for party")
		}
		ys, ok := y[id]
		if !ok {
			return nil, mpcerr.New(mpcerr.InvalidSecretShare,
				"missing y share for party")
		}
		d, err := shamir.SubShares(xs, ts.A)
		if err != nil {
			return nil, err
		}
		e, err := shamir.SubShares(ys, ts.B)
		if err != nil {
			return nil, err
		}
		dShares = append(dShares, d)
		eShares = append(eShares, e)
		ids = append(ids, id)
	}

	// Opening round: any t parties broadcast their shares of d and e.
	d, err := shamir.Reconstruct(dShares, t)
	if err != nil {
		return nil, err
	}
	e, err := shamir.Reconstruct(eShares, t)
	if err != nil {
		return nil, err
	}
	de := field.Mul(d, e)

	// de is a public constant; adding it to a Shamir-shared secret means
	// adding it to every party's share (unlike additive sharing, where
	// it is folded into a single party's share), since it shifts the
	// underlying polynomial's constant term uniformly.
	out := make(map[uint64]shamir.Share, len(ids))
	for _, id := range ids {
		ts := triple.Shares[id]
		term := field.Mul(d, ts.B.Y)
		term = field.Add(term, field.Mul(e, ts.A.Y))
		term = field.Add(term, ts.C.Y)
		term = field.Add(term, de)
		out[id] = shamir.Share{X: ts.A.X, Y: term}
	}

	triple.Shares = nil
	triple.Original = nil

	return out, nil
}

// BatchSecureMultiply pairs vectors of share maps with a vector of
// triples, running SecureMultiply once per pair.
func BatchSecureMultiply(xs, ys []map[uint64]shamir.Share, t int,
	triples []*Triple) ([]map[uint64]shamir.Share, error) {

	if len(xs) != len(ys) || len(xs) != len(triples) {
		return nil, mpcerr.New(mpcerr.InvalidSecretShare,
			"mismatched batch lengths")
	}

	out := make([]map[uint64]shamir.Share, len(xs))
	for i := range xs {
		res, err := SecureMultiply(xs[i], ys[i], t, triples[i])
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}
