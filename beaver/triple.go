//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

// Package beaver defines the Beaver multiplication triple model shared
// by every triple generator (trusted dealer, two-party OLE, BFV
// threshold) and the online secure multiplication protocol that
// consumes triples.
package beaver

import (
	"encoding/binary"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/shamir"
)

// ID is a Beaver share's wire identifier: a little-endian u128 per
// §6.2's transfer format. This module never needs more than a party
// index's worth of entropy, so NewID only ever fills the low 8 bytes,
// but the type stays the full 16 bytes so the transfer format's
// length is fixed regardless of how an identifier is chosen.
type ID [16]byte

// NewID builds an ID from a uint64 party index, zero-extended to the
// full 128 bits.
func NewID(v uint64) ID {
	var id ID
	binary.LittleEndian.PutUint64(id[:8], v)
	return id
}

// Uint64 returns the low 64 bits of the identifier.
func (id ID) Uint64() uint64 {
	return binary.LittleEndian.Uint64(id[:8])
}

// Share is one party's view of a Beaver triple: Shamir shares of a, b,
// and c=a·b, all at the same x-coordinate (the party's index).
type Share struct {
	ID ID
	A  shamir.Share
	B  shamir.Share
	C  shamir.Share
}

// IsConsistent reports whether a, b and c share the same x-coordinate,
// i.e. genuinely belong to one party.
func (s Share) IsConsistent() bool {
	return s.A.X == s.B.X && s.B.X == s.C.X
}

// Triple groups one Share per participating party. Original optionally
// carries the dealt (a,b,c) values themselves, for debug/dealer audit
// use only — never transmitted to other parties.
type Triple struct {
	Shares   map[uint64]Share
	Original *Plain
}

// Plain is the dealer-side view of a triple before sharing, used only
// for auditing.
type Plain struct {
	A, B, C field.Elt
}

// Verify checks that the triple is internally consistent: every
// share's a, b, c all sit at the same x-coordinate, at least t shares
// are present, and a, b, c interpolated through all of the shares
// satisfy a·b = c in the field, so a single tampered share makes it
// fail. It never panics on malformed input, returning false instead.
func (tr *Triple) Verify(t int) bool {
	if tr == nil || len(tr.Shares) < t {
		return false
	}

	var aShares, bShares, cShares []shamir.Share
	for _, s := range tr.Shares {
		if !s.IsConsistent() {
			return false
		}
		aShares = append(aShares, s.A)
		bShares = append(bShares, s.B)
		cShares = append(cShares, s.C)
	}
	if len(aShares) < t {
		return false
	}

	a, err := shamir.Reconstruct(aShares, len(aShares))
	if err != nil {
		return false
	}
	b, err := shamir.Reconstruct(bShares, len(bShares))
	if err != nil {
		return false
	}
	c, err := shamir.Reconstruct(cShares, len(cShares))
	if err != nil {
		return false
	}

	return field.Mul(a, b) == c
}
