//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package additive implements n-out-of-n additive secret sharing over
// the MPC core's field: every one of the n shares is required to
// reconstruct the secret, in exchange for sharing and local homomorphic
// operations that need no polynomial machinery at all.
package additive

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

// Share is one party's additive share of a secret.
type Share struct {
	PartyID uint64
	Value   field.Elt
}

func randomElt() (field.Elt, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return field.New(binary.LittleEndian.Uint64(buf[:])), nil
}

// ShareAdditive splits secret into n additive shares: v_1..v_{n-1} are
// uniform and v_n is chosen so the n shares sum to secret.
func ShareAdditive(secret field.Elt, n int) ([]Share, error) {
	if n == 0 {
		return nil, mpcerr.New(mpcerr.InvalidThreshold, "n must be > 0")
	}

	shares := make([]Share, n)
	var sum field.Elt
	for i := 0; i < n-1; i++ {
		v, err := randomElt()
		if err != nil {
			return nil, err
		}
		shares[i] = Share{PartyID: uint64(i), Value: v}
		sum = field.Add(sum, v)
	}
	shares[n-1] = Share{PartyID: uint64(n - 1), Value: field.Sub(secret, sum)}
	return shares, nil
}

// ReconstructAdditive sums the values of all n shares. All n shares
// must be present; additive sharing has no threshold.
func ReconstructAdditive(shares []Share) field.Elt {
	var sum field.Elt
	for _, s := range shares {
		sum = field.Add(sum, s.Value)
	}
	return sum
}

// AddAdditiveShares adds two same-party shares locally, with no
// communication.
func AddAdditiveShares(a, b Share) (Share, error) {
	if a.PartyID != b.PartyID {
		return Share{}, mpcerr.New(mpcerr.InvalidSecretShare,
			"mismatched party ids")
	}
	return Share{PartyID: a.PartyID, Value: field.Add(a.Value, b.Value)}, nil
}

// SubAdditiveShares subtracts two same-party shares locally.
func SubAdditiveShares(a, b Share) (Share, error) {
	if a.PartyID != b.PartyID {
		return Share{}, mpcerr.New(mpcerr.InvalidSecretShare,
			"mismatched party ids")
	}
	return Share{PartyID: a.PartyID, Value: field.Sub(a.Value, b.Value)}, nil
}

// ScalarMulAdditive scales one party's share by a public constant.
func ScalarMulAdditive(s Share, k field.Elt) Share {
	return Share{PartyID: s.PartyID, Value: field.Mul(s.Value, k)}
}
