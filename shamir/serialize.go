//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package shamir

import (
	"encoding/binary"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

// shareWireSize is the on-wire size of one Shamir share: x (8B LE) ||
// y (8B LE).
const shareWireSize = 16

// CompressShare encodes one share as x (8 B LE u64) || y (8 B LE u64).
func CompressShare(s Share) []byte {
	buf := make([]byte, shareWireSize)
	binary.LittleEndian.PutUint64(buf[0:8], s.X.Uint64())
	binary.LittleEndian.PutUint64(buf[8:16], s.Y.Uint64())
	return buf
}

// DecompressShare decodes one share from its wire encoding.
func DecompressShare(b []byte) (Share, error) {
	if len(b) != shareWireSize {
		return Share{}, mpcerr.New(mpcerr.SerializationError,
			"invalid share length")
	}
	x := binary.LittleEndian.Uint64(b[0:8])
	y := binary.LittleEndian.Uint64(b[8:16])
	return Share{X: field.New(x), Y: field.New(y)}, nil
}

// CompressShares concatenates the wire encoding of each share in order.
func CompressShares(shares []Share) []byte {
	buf := make([]byte, 0, shareWireSize*len(shares))
	for _, s := range shares {
		buf = append(buf, CompressShare(s)...)
	}
	return buf
}

// DecompressShares splits a concatenated share buffer back into
// individual shares; its length must be a multiple of the wire share
// size.
func DecompressShares(b []byte) ([]Share, error) {
	if len(b)%shareWireSize != 0 {
		return nil, mpcerr.New(mpcerr.SerializationError,
			"share buffer length is not a multiple of the share size")
	}
	n := len(b) / shareWireSize
	shares := make([]Share, n)
	for i := 0; i < n; i++ {
		s, err := DecompressShare(b[i*shareWireSize : (i+1)*shareWireSize])
		if err != nil {
			return nil, err
		}
		shares[i] = s
	}
	return shares, nil
}
