//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package beaver

import (
	"github.com/markkurossi/mpccore/mpcerr"
	"github.com/markkurossi/mpccore/shamir"
)

// shareTransferSize is the §6.2 Beaver share transfer format's total
// size: id (16B) || a || b || c, each of a, b, c a 16B Shamir share.
const shareTransferSize = 16 + 3*16

// EncodeShare encodes a Beaver share in the §6.2 transfer format:
// id (16 B LE u128) || a || b || c.
func EncodeShare(s Share) []byte {
	buf := make([]byte, 0, shareTransferSize)
	buf = append(buf, s.ID[:]...)
	buf = append(buf, shamir.CompressShare(s.A)...)
	buf = append(buf, shamir.CompressShare(s.B)...)
	buf = append(buf, shamir.CompressShare(s.C)...)
	return buf
}

// DecodeShare decodes a Beaver share from its §6.2 transfer encoding.
func DecodeShare(b []byte) (Share, error) {
	if len(b) != shareTransferSize {
		return Share{}, mpcerr.New(mpcerr.SerializationError,
			"invalid Beaver share transfer length")
	}

	var id ID
	copy(id[:], b[0:16])

	a, err := shamir.DecompressShare(b[16:32])
	if err != nil {
		return Share{}, err
	}
	bShare, err := shamir.DecompressShare(b[32:48])
	if err != nil {
		return Share{}, err
	}
	c, err := shamir.DecompressShare(b[48:64])
	if err != nil {
		return Share{}, err
	}

	return Share{ID: id, A: a, B: bShare, C: c}, nil
}
