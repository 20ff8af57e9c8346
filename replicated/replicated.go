//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package replicated implements 3-party replicated secret sharing: each
// party holds two of the three additive summands of the secret, so any
// two parties together can reconstruct it without a threshold scheme.
package replicated

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

// Share is one party's replicated share. PartyID is in {0,1,2}; Share1
// holds r[PartyID] and Share2 holds r[(PartyID+1)%3].
type Share struct {
	PartyID int
	Share1  field.Elt
	Share2  field.Elt
}

func randomElt() (field.Elt, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return field.New(binary.LittleEndian.Uint64(buf[:])), nil
}

// Deal splits secret into the three replicated shares: r1, r2 are
// sampled uniformly and r3 = secret - r1 - r2.
func Deal(secret field.Elt) ([3]Share, error) {
	r1, err := randomElt()
	if err != nil {
		return [3]Share{}, err
	}
	r2, err := randomElt()
	if err != nil {
		return [3]Share{}, err
	}
	r3 := field.Sub(secret, field.Add(r1, r2))

	r := [3]field.Elt{r1, r2, r3}
	var shares [3]Share
	for i := 0; i < 3; i++ {
		shares[i] = Share{PartyID: i, Share1: r[i], Share2: r[(i+1)%3]}
	}
	return shares, nil
}

// Reconstruct recovers the secret from any two of the three shares.
func Reconstruct(a, b Share) (field.Elt, error) {
	if a.PartyID == b.PartyID {
		return 0, mpcerr.New(mpcerr.InvalidSecretShare,
			"need shares from two distinct parties")
	}

	r, err := allThree(a, b)
	if err != nil {
		return 0, err
	}
	return field.Add(field.Add(r[0], r[1]), r[2]), nil
}

// allThree recovers the three r-values r[0..2] from any two replicated
// shares held by distinct parties, using the coordinate they overlap
// on.
func allThree(a, b Share) ([3]field.Elt, error) {
	var r [3]field.Elt
	have := [3]bool{}

	set := func(idx int, v field.Elt) error {
		if have[idx] && r[idx] != v {
			return mpcerr.New(mpcerr.InvalidSecretShare,
				"inconsistent overlapping share value")
		}
		r[idx], have[idx] = v, true
		return nil
	}

	for _, s := range []Share{a, b} {
		if err := set(s.PartyID, s.Share1); err != nil {
			return r, err
		}
		if err := set((s.PartyID+1)%3, s.Share2); err != nil {
			return r, err
		}
	}
	for i := 0; i < 3; i++ {
		if !have[i] {
			return r, mpcerr.New(mpcerr.InvalidSecretShare,
				"shares do not determine all three summands")
		}
	}
	return r, nil
}

// Add combines two same-party replicated shares component-wise.
func Add(a, b Share) (Share, error) {
	if a.PartyID != b.PartyID {
		return Share{}, mpcerr.New(mpcerr.InvalidSecretShare,
			"mismatched party ids")
	}
	return Share{
		PartyID: a.PartyID,
		Share1:  field.Add(a.Share1, b.Share1),
		Share2:  field.Add(a.Share2, b.Share2),
	}, nil
}

// Sub combines two same-party replicated shares component-wise.
func Sub(a, b Share) (Share, error) {
	if a.PartyID != b.PartyID {
		return Share{}, mpcerr.New(mpcerr.InvalidSecretShare,
			"mismatched party ids")
	}
	return Share{
		PartyID: a.PartyID,
		Share1:  field.Sub(a.Share1, b.Share1),
		Share2:  field.Sub(a.Share2, b.Share2),
	}, nil
}

// ScalarMul scales both components of a share by a public constant.
func ScalarMul(s Share, k field.Elt) Share {
	return Share{
		PartyID: s.PartyID,
		Share1:  field.Mul(s.Share1, k),
		Share2:  field.Mul(s.Share2, k),
	}
}

// CrossProducts computes the four cross products aᵢ·bⱼ between a
// party's replicated shares of two secrets a and b. These are the
// local building blocks of a full 3-party multiplication; combining
// them into a fresh replicated share of a·b additionally requires a
// resharing round among the three parties, which is out of scope for
// this local primitive.
type CrossProducts struct {
	A1B1, A1B2, A2B1, A2B2 field.Elt
}

// LocalMultiply computes the cross products of two same-party
// replicated shares.
func LocalMultiply(a, b Share) (CrossProducts, error) {
	if a.PartyID != b.PartyID {
		return CrossProducts{}, mpcerr.New(mpcerr.InvalidSecretShare,
			"mismatched party ids")
	}
	return CrossProducts{
		A1B1: field.Mul(a.Share1, b.Share1),
		A1B2: field.Mul(a.Share1, b.Share2),
		A2B1: field.Mul(a.Share2, b.Share1),
		A2B2: field.Mul(a.Share2, b.Share2),
	}, nil
}

// VerifyReplicatedShares checks that the three pairwise overlaps in a
// full set of replicated shares agree: shares[i].Share2 must equal
// shares[(i+1)%3].Share1 for every i.
func VerifyReplicatedShares(shares [3]Share) bool {
	byParty := map[int]Share{}
	for _, s := range shares {
		byParty[s.PartyID] = s
	}
	if len(byParty) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if byParty[i].Share2 != byParty[(i+1)%3].Share1 {
			return false
		}
	}
	return true
}
