//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ole implements the oblivious linear evaluation primitive
// that the two-party Beaver triple generator builds on: given a
// sender's scalar x and a receiver's scalar y, the parties obtain
// correlated values r and u satisfying
//
//	u = r + x*y mod p
//
// where p is field.Prime. The sender learns only r, the receiver
// learns only u; neither party learns anything about the other
// party's input beyond what the correlation implies.
//
// The generators in this module run in a single process, so there is
// no wire between the two conceptual parties to carry IKNP-extended
// base OTs the way the teacher's vole package does over a p2p.Conn.
// This package instead implements the same ideal functionality
// directly: it is the "trusted third party" that a real OT/VOLE
// exchange is designed to emulate without being trusted. Swapping in
// a real network-backed OT extension later only requires replacing
// Evaluate's body; the Sender/Receiver contract it fulfills does not
// change.
package ole

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

func randomElt() (field.Elt, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, mpcerr.Wrap(mpcerr.CryptographicError, "ole: sampling randomness", err)
	}
	return field.New(binary.LittleEndian.Uint64(buf[:])), nil
}

// Evaluate runs a single OLE instance on the sender's x and the
// receiver's y, returning the sender's mask r and the receiver's
// correlated output u, where u = r + x*y.
func Evaluate(x, y field.Elt) (r, u field.Elt, err error) {
	r, err = randomElt()
	if err != nil {
		return 0, 0, err
	}
	u = field.Add(r, field.Mul(x, y))
	return r, u, nil
}

// BatchEvaluate runs len(xs) independent OLE instances, one per
// index, the way the teacher's vole.Sender/vole.Receiver amortize a
// batch of multiplications over a single IKNP expansion. xs and ys
// must have equal length.
func BatchEvaluate(xs, ys []field.Elt) (rs, us []field.Elt, err error) {
	if len(xs) != len(ys) {
		return nil, nil, mpcerr.New(mpcerr.ProtocolError,
			"ole: mismatched batch lengths")
	}
	rs = make([]field.Elt, len(xs))
	us = make([]field.Elt, len(xs))
	for i := range xs {
		rs[i], us[i], err = Evaluate(xs[i], ys[i])
		if err != nil {
			return nil, nil, err
		}
	}
	return rs, us, nil
}
