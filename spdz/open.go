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

// Open reconstructs an authenticated value from every party's share
// and checks its MAC: each party broadcasts v_i and computes σ_i =
// mac_i − v·Δ_i, where v is the reconstructed value and Δ_i is its own
// MAC key share. The check passes iff Σ σ_i = 0. On failure the
// protocol must abort the enclosing computation without releasing the
// value; Open returns zero alongside a MacCheckFailure error, never the
// reconstructed value.
func Open(shares []AuthShare, deltaShares []field.Elt) (field.Elt, error) {
	if len(shares) == 0 || len(shares) != len(deltaShares) {
		return 0, mpcerr.New(mpcerr.ProtocolError, "spdz: shares and delta shares must be equal, nonzero length")
	}

	var v field.Elt
	for _, s := range shares {
		v = field.Add(v, s.Value)
	}

	var sigmaSum field.Elt
	for i, s := range shares {
		vDelta := field.Mul(v, deltaShares[i])
		sigma := field.Sub(s.MAC, vDelta)
		sigmaSum = field.Add(sigmaSum, sigma)
	}

	if sigmaSum != field.Zero {
		return 0, mpcerr.New(mpcerr.MacCheckFailure, "spdz: MAC check failed on open")
	}
	return v, nil
}
