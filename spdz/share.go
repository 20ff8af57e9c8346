//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package spdz implements SPDZ authenticated additive shares: every
// secret v is split n-out-of-n as v = Σ v_i, with a MAC v·Δ = Σ mac_i
// carried alongside it, where the global MAC key Δ is itself additively
// shared and never known to any single party. It generalizes the
// teacher's educational two-party SPDZShare/Peer from
// docs/spdz-mascot/main.go (built for P-256 point addition) to the
// n-party, field.Prime setting.
package spdz

import "github.com/markkurossi/mpccore/field"

// AuthShare is one party's additive share of a SPDZ-authenticated
// value: its share of the value itself and its share of that value's
// MAC under the (unknown to it) global key Δ.
type AuthShare struct {
	PartyID int
	Value   field.Elt
	MAC     field.Elt
}

// Add computes the local sum of two authenticated shares held by the
// same party; the caller is responsible for pairing same-party shares
// across the two input values.
func Add(a, b AuthShare) AuthShare {
	return AuthShare{
		PartyID: a.PartyID,
		Value:   field.Add(a.Value, b.Value),
		MAC:     field.Add(a.MAC, b.MAC),
	}
}

// Sub is the authenticated-share analogue of Add.
func Sub(a, b AuthShare) AuthShare {
	return AuthShare{
		PartyID: a.PartyID,
		Value:   field.Sub(a.Value, b.Value),
		MAC:     field.Sub(a.MAC, b.MAC),
	}
}

// MulPublic scales an authenticated share by a public constant k:
// mul_public((v,m), k) = (k·v, k·m).
func MulPublic(a AuthShare, k field.Elt) AuthShare {
	return AuthShare{
		PartyID: a.PartyID,
		Value:   field.Mul(a.Value, k),
		MAC:     field.Mul(a.MAC, k),
	}
}

// LinearCombination computes Σ coeffs[i]·shares[i] via repeated
// MulPublic and Add, the way the SPDZ online phase evaluates any
// affine public-coefficient function of authenticated shares without
// interaction.
func LinearCombination(shares []AuthShare, coeffs []field.Elt) AuthShare {
	var acc AuthShare
	for i := range shares {
		term := MulPublic(shares[i], coeffs[i])
		if i == 0 {
			acc = term
			continue
		}
		acc = Add(acc, term)
	}
	return acc
}

// AddPublicConstant adds a public constant c to an additively shared
// value: only the party designated leader folds c into its value
// share, while every party updates its MAC share by deltaShare·c, so
// that the sum of MAC shares still tracks Δ·(v+c). This mirrors the
// teacher's Peer.AddConstant, generalized from two parties to n.
func AddPublicConstant(s AuthShare, deltaShare, c field.Elt, isLeader bool) AuthShare {
	value := s.Value
	if isLeader {
		value = field.Add(value, c)
	}
	mac := field.Add(s.MAC, field.Mul(deltaShare, c))
	return AuthShare{PartyID: s.PartyID, Value: value, MAC: mac}
}
