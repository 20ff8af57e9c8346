//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package shamir

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

// XStrategy picks the n distinct, nonzero x-coordinates a share set is
// evaluated at.
type XStrategy interface {
	Coordinates(n int) ([]field.Elt, error)
}

// sequentialStrategy assigns x-coordinates 1..n.
type sequentialStrategy struct{}

// Sequential is the default x-coordinate strategy: 1, 2, ..., n.
func Sequential() XStrategy {
	return sequentialStrategy{}
}

func (sequentialStrategy) Coordinates(n int) ([]field.Elt, error) {
	xs := make([]field.Elt, n)
	for i := 0; i < n; i++ {
		xs[i] = field.New(uint64(i + 1))
	}
	return xs, nil
}

// randomStrategy assigns n distinct nonzero x-coordinates drawn from
// crypto/rand.
type randomStrategy struct{}

// Random is an x-coordinate strategy drawing distinct nonzero
// coordinates from a cryptographic RNG on every call.
func Random() XStrategy {
	return randomStrategy{}
}

func (randomStrategy) Coordinates(n int) ([]field.Elt, error) {
	return distinctNonzero(n, rand.Reader)
}

// seededStrategy deterministically derives x-coordinates from a fixed
// seed via HKDF-Expand, so that two Split calls with the same seed and
// n produce byte-identical coordinate sequences on any platform,
// regardless of math/rand's internal algorithm (which Go does not
// guarantee to be stable across versions).
type seededStrategy struct {
	seed []byte
}

// SeededRandom derives x-coordinates deterministically from seed: the
// same seed always yields the same coordinate sequence. Split also
// derives its polynomial coefficients from the seed under this
// strategy, so equal seeds, secrets, t and n give byte-identical shares.
func SeededRandom(seed []byte) XStrategy {
	cp := make([]byte, len(seed))
	copy(cp, seed)
	return seededStrategy{seed: cp}
}

func (s seededStrategy) Coordinates(n int) ([]field.Elt, error) {
	expander := hkdf.Expand(sha256.New, s.seed, []byte("mpccore/shamir/xcoord"))
	return distinctNonzero(n, expander)
}

// distinctNonzero reads uniform field elements from r, rejecting zero
// and repeats, until n distinct nonzero coordinates have been drawn.
func distinctNonzero(n int, r io.Reader) ([]field.Elt, error) {
	xs := make([]field.Elt, 0, n)
	seen := make(map[field.Elt]bool, n)

	var buf [8]byte
	for len(xs) < n {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, mpcerr.Wrap(mpcerr.CryptographicError,
				"x-coordinate generation", err)
		}
		v := binary.LittleEndian.Uint64(buf[:])
		x := field.New(v)
		if x == 0 || seen[x] {
			continue
		}
		seen[x] = true
		xs = append(xs, x)
	}
	return xs, nil
}
