//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package commit implements the hash-commitment black box consumed by
// the BFV threshold generator's plaintext-binding step: commit(msg, r)
// -> c, verify(c, msg, r) -> bool. It uses blake3 the way the broader
// example pack reaches for it as a fast, general-purpose hash rather
// than rolling a bespoke construction.
package commit

import (
	"crypto/rand"

	"github.com/zeebo/blake3"

	"github.com/markkurossi/mpccore/mpcerr"
)

// NonceSize is the length in bytes of the randomness r bound into
// every commitment.
const NonceSize = 32

// NewNonce samples fresh randomness for use with Commit.
func NewNonce() ([]byte, error) {
	r := make([]byte, NonceSize)
	if _, err := rand.Read(r); err != nil {
		return nil, mpcerr.Wrap(mpcerr.CryptographicError, "commit: sampling nonce", err)
	}
	return r, nil
}

// Commit binds msg under the randomness r, producing a commitment
// that is both hiding (c reveals nothing about msg without r) and
// binding (no r', msg' != msg can open c to a different message)
// against a computational adversary.
func Commit(msg, r []byte) []byte {
	h := blake3.New()
	h.Write(r)
	h.Write(msg)
	sum := h.Sum(nil)
	return sum
}

// Verify reports whether c is a valid commitment to msg under r.
func Verify(c, msg, r []byte) bool {
	got := Commit(msg, r)
	if len(got) != len(c) {
		return false
	}
	var diff byte
	for i := range got {
		diff |= got[i] ^ c[i]
	}
	return diff == 0
}
