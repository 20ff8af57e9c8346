//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package spdz

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

// PRGSeedSize is the length in bytes of the seed a session derives
// for its offline-phase PRG, the same size the teacher's TLS 1.3 key
// schedule expands traffic secrets to.
const PRGSeedSize = 32

// Session holds one party's share of the session-scoped global MAC
// key Δ, plus an offline-phase PRG seed (set only by
// NewSessionFromSecret). DealAuthRandom does not read the seed; it
// draws its randomness from crypto/rand. Δ is never global core state: each
// session generates its own key shares, and a cancelled session must
// scrub them before release.
type Session struct {
	PartyID    int
	DeltaShare field.Elt
	PRGSeed    []byte
}

// NewSession samples a fresh random MAC key share for partyID from
// crypto/rand, with no derivation from an external secret.
func NewSession(partyID int) (*Session, error) {
	d, err := randomElt()
	if err != nil {
		return nil, err
	}
	return &Session{PartyID: partyID, DeltaShare: d}, nil
}

// NewSessionFromSecret derives partyID's MAC key share and offline-
// phase PRG seed from a master secret via HKDF-Expand, the same
// derivation shape the teacher's crypto/hkdf package uses to expand a
// TLS 1.3 traffic secret into distinct key material: one Expand call
// per distinct "label" keeps the MAC key share and the PRG seed
// cryptographically independent even though they trace back to the
// same master secret.
func NewSessionFromSecret(partyID int, masterSecret []byte) (*Session, error) {
	var partyIDBuf [4]byte
	binary.LittleEndian.PutUint32(partyIDBuf[:], uint32(partyID))

	deltaInfo := append([]byte("mpccore/spdz/delta-share/"), partyIDBuf[:]...)
	deltaExpander := hkdf.Expand(sha256.New, masterSecret, deltaInfo)
	var deltaBuf [8]byte
	if _, err := io.ReadFull(deltaExpander, deltaBuf[:]); err != nil {
		return nil, mpcerr.Wrap(mpcerr.CryptographicError, "spdz: deriving delta share", err)
	}

	seedInfo := append([]byte("mpccore/spdz/prg-seed/"), partyIDBuf[:]...)
	seedExpander := hkdf.Expand(sha256.New, masterSecret, seedInfo)
	seed := make([]byte, PRGSeedSize)
	if _, err := io.ReadFull(seedExpander, seed); err != nil {
		return nil, mpcerr.Wrap(mpcerr.CryptographicError, "spdz: deriving PRG seed", err)
	}

	return &Session{
		PartyID:    partyID,
		DeltaShare: field.New(binary.LittleEndian.Uint64(deltaBuf[:])),
		PRGSeed:    seed,
	}, nil
}

// Scrub overwrites the session's MAC key share and PRG seed with
// zero, as required when a session is abandoned mid-computation.
func (s *Session) Scrub() {
	s.DeltaShare = 0
	for i := range s.PRGSeed {
		s.PRGSeed[i] = 0
	}
}

func randomElt() (field.Elt, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, mpcerr.Wrap(mpcerr.CryptographicError, "spdz: sampling randomness", err)
	}
	return field.New(binary.LittleEndian.Uint64(buf[:])), nil
}

// SumDeltaShares computes the global MAC key Δ from every party's
// share. In a real deployment this sum is never computed by any
// single party; it exists here only so tests and the offline
// preprocessing machinery below can authenticate freshly dealt
// shares against a known Δ.
func SumDeltaShares(shares []field.Elt) field.Elt {
	var sum field.Elt
	for _, d := range shares {
		sum = field.Add(sum, d)
	}
	return sum
}
