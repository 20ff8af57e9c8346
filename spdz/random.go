//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package spdz

import "github.com/markkurossi/mpccore/field"

// DealAuthRandom generates a fresh authenticated random value shared
// among n parties: each party's value share is a local PRG output,
// and the MAC shares are computed so their sum authenticates the
// secret under delta. In a real deployment these are produced during
// preprocessing (e.g. via the trusted dealer or OLE triple
// generators, run once per random coefficient rather than per
// secret); this helper models that output directly so the online
// phase above it can be exercised without wiring a full offline
// phase.
func DealAuthRandom(n int, delta field.Elt) ([]AuthShare, error) {
	valueShares := make([]field.Elt, n)
	for i := 0; i < n; i++ {
		v, err := randomElt()
		if err != nil {
			return nil, err
		}
		valueShares[i] = v
	}

	var secret field.Elt
	for _, v := range valueShares {
		secret = field.Add(secret, v)
	}
	mac := field.Mul(secret, delta)
	macShares, err := additiveShare(mac, n)
	if err != nil {
		return nil, err
	}

	shares := make([]AuthShare, n)
	for i := 0; i < n; i++ {
		shares[i] = AuthShare{PartyID: i, Value: valueShares[i], MAC: macShares[i]}
	}
	return shares, nil
}

func additiveShare(v field.Elt, n int) ([]field.Elt, error) {
	shares := make([]field.Elt, n)
	var sum field.Elt
	for i := 0; i < n-1; i++ {
		r, err := randomElt()
		if err != nil {
			return nil, err
		}
		shares[i] = r
		sum = field.Add(sum, r)
	}
	shares[n-1] = field.Sub(v, sum)
	return shares, nil
}
