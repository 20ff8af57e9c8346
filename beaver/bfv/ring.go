//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bfv

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/zeebo/blake3"

	"github.com/markkurossi/mpccore/mpcerr"
)

func crsHash(seed, counter []byte) [32]byte {
	h := blake3.New()
	h.Write(seed)
	h.Write(counter)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// poly is an element of Z_modulus[x]/(x^N+1), stored as its
// coefficient vector. This is a schoolbook (non-NTT, non-RNS) ring
// representation: adequate to exercise the generator's protocol
// structure, not a performance-minded implementation.
type poly struct {
	coeffs  []uint64
	modulus uint64
}

func newPoly(degree int, modulus uint64) poly {
	return poly{coeffs: make([]uint64, degree), modulus: modulus}
}

func reduceMod(v, m uint64) uint64 {
	return v % m
}

func (p poly) degree() int { return len(p.coeffs) }

func (p poly) add(q poly) poly {
	out := newPoly(p.degree(), p.modulus)
	for i := range out.coeffs {
		out.coeffs[i] = reduceMod(p.coeffs[i]+q.coeffs[i], p.modulus)
	}
	return out
}

func (p poly) sub(q poly) poly {
	out := newPoly(p.degree(), p.modulus)
	for i := range out.coeffs {
		out.coeffs[i] = reduceMod(p.coeffs[i]+p.modulus-q.coeffs[i]%p.modulus, p.modulus)
	}
	return out
}

func (p poly) neg() poly {
	out := newPoly(p.degree(), p.modulus)
	for i := range out.coeffs {
		if p.coeffs[i] == 0 {
			out.coeffs[i] = 0
		} else {
			out.coeffs[i] = p.modulus - p.coeffs[i]
		}
	}
	return out
}

func (p poly) scalarMul(c uint64) poly {
	out := newPoly(p.degree(), p.modulus)
	for i := range out.coeffs {
		hi, lo := bitsMul64(p.coeffs[i], c)
		out.coeffs[i] = mod128(hi, lo, p.modulus)
	}
	return out
}

// mul computes the negacyclic convolution p*q mod (x^N+1, modulus).
func (p poly) mul(q poly) poly {
	n := p.degree()
	out := newPoly(n, p.modulus)
	acc := make([]*big.Int, n)
	for i := range acc {
		acc[i] = new(big.Int)
	}
	m := new(big.Int).SetUint64(p.modulus)
	for i := 0; i < n; i++ {
		if p.coeffs[i] == 0 {
			continue
		}
		a := new(big.Int).SetUint64(p.coeffs[i])
		for j := 0; j < n; j++ {
			if q.coeffs[j] == 0 {
				continue
			}
			b := new(big.Int).SetUint64(q.coeffs[j])
			term := new(big.Int).Mul(a, b)
			k := i + j
			if k >= n {
				k -= n
				term.Neg(term)
			}
			acc[k].Add(acc[k], term)
		}
	}
	for i := 0; i < n; i++ {
		acc[i].Mod(acc[i], m)
		out.coeffs[i] = acc[i].Uint64()
	}
	return out
}

func bitsMul64(a, b uint64) (hi, lo uint64) {
	const mask = 0xffffffff
	aLo, aHi := a&mask, a>>32
	bLo, bHi := b&mask, b>>32

	t := aLo * bLo
	lo = t & mask
	carry := t >> 32

	t = aHi*bLo + carry
	mid := t & mask
	hi = t >> 32

	t = aLo*bHi + mid
	lo |= (t & mask) << 32
	carry = t >> 32

	hi += aHi*bHi + carry
	return hi, lo
}

func mod128(hi, lo, m uint64) uint64 {
	x := new(big.Int).SetUint64(hi)
	x.Lsh(x, 64)
	x.Or(x, new(big.Int).SetUint64(lo))
	x.Mod(x, new(big.Int).SetUint64(m))
	return x.Uint64()
}

// encodePoly serializes a polynomial's coefficients in the §6.2
// ciphertext coefficient-vector shape: len (4B LE u32) || len·(8B LE
// u64), reused here for a single coefficient vector rather than the
// two making up a full Ciphertext.
func encodePoly(p poly) []byte {
	out := make([]byte, 4+8*len(p.coeffs))
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(p.coeffs)))
	for i, c := range p.coeffs {
		binary.LittleEndian.PutUint64(out[4+8*i:4+8*i+8], c)
	}
	return out
}

// decodePoly parses a coefficient vector encoded by encodePoly,
// attaching modulus since the wire format carries no modulus field.
func decodePoly(data []byte, modulus uint64) (poly, error) {
	if len(data) < 4 {
		return poly{}, mpcerr.New(mpcerr.SerializationError, "bfv: poly shorter than length prefix")
	}
	n := binary.LittleEndian.Uint32(data[0:4])
	rest := data[4:]
	if uint64(len(rest)) != uint64(n)*8 {
		return poly{}, mpcerr.New(mpcerr.SerializationError, "bfv: poly length prefix mismatch")
	}
	p := newPoly(int(n), modulus)
	for i := range p.coeffs {
		p.coeffs[i] = binary.LittleEndian.Uint64(rest[8*i : 8*i+8])
	}
	return p, nil
}

func randomUint64Below(bound uint64) (uint64, error) {
	x, err := rand.Int(rand.Reader, new(big.Int).SetUint64(bound))
	if err != nil {
		return 0, mpcerr.Wrap(mpcerr.CryptographicError, "bfv: sampling randomness", err)
	}
	return x.Uint64(), nil
}

// sampleUniform draws a polynomial with coefficients uniform in
// [0, modulus).
func sampleUniform(degree int, modulus uint64) (poly, error) {
	p := newPoly(degree, modulus)
	for i := range p.coeffs {
		v, err := randomUint64Below(modulus)
		if err != nil {
			return poly{}, err
		}
		p.coeffs[i] = v
	}
	return p, nil
}

// sampleTernary draws a polynomial with coefficients in {0, 1,
// modulus-1} (i.e. {-1,0,1} reduced mod modulus), the small-coefficient
// distribution secret keys and encryption randomness are sampled
// from.
func sampleTernary(degree int, modulus uint64) (poly, error) {
	p := newPoly(degree, modulus)
	for i := range p.coeffs {
		var b [1]byte
		if _, err := rand.Read(b[:]); err != nil {
			return poly{}, mpcerr.Wrap(mpcerr.CryptographicError, "bfv: sampling ternary", err)
		}
		switch b[0] % 3 {
		case 0:
			p.coeffs[i] = 0
		case 1:
			p.coeffs[i] = 1
		case 2:
			p.coeffs[i] = modulus - 1
		}
	}
	return p, nil
}

// sampleCRS deterministically derives the shared common-reference
// polynomial every party agrees on without a message round, seeded by
// the per-session seed all parties are configured with out of band.
func sampleCRS(degree int, modulus uint64, seed []byte) poly {
	p := newPoly(degree, modulus)
	buf := make([]byte, 8)
	counter := uint64(0)
	for i := range p.coeffs {
		binary.LittleEndian.PutUint64(buf, counter)
		h := crsHash(seed, buf)
		p.coeffs[i] = binary.LittleEndian.Uint64(h[:8]) % modulus
		counter++
	}
	return p
}
