//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bfv

// Ciphertext is a two-component BFV-style ciphertext: c0 + c1*s
// decrypts (up to scaling and noise) to the encoded plaintext.
type Ciphertext struct {
	C0, C1 poly
}

func delta(params Params) uint64 {
	return params.CoeffModulus / params.PlainModulus
}

// Encode lifts a plaintext integer vector into the ciphertext
// modulus's coefficient space, scaled by delta = floor(q/t).
func Encode(params Params, values []uint64) poly {
	p := newPoly(params.Degree, params.CoeffModulus)
	d := delta(params)
	for i, v := range values {
		if i >= len(p.coeffs) {
			break
		}
		p.coeffs[i] = (v % params.PlainModulus) * d % params.CoeffModulus
	}
	return p
}

// Decode rounds a plaintext-space polynomial (post-decryption) back
// to integers mod t.
func Decode(params Params, m poly) []uint64 {
	d := delta(params)
	out := make([]uint64, len(m.coeffs))
	for i, c := range m.coeffs {
		// round(c/delta) mod t
		out[i] = ((c + d/2) / d) % params.PlainModulus
	}
	return out
}

// Encrypt encrypts an already-scaled plaintext polynomial m under pk.
func Encrypt(params Params, pk PublicKey, m poly) (Ciphertext, error) {
	u, err := sampleTernary(params.Degree, params.CoeffModulus)
	if err != nil {
		return Ciphertext{}, err
	}
	e1, err := sampleTernary(params.Degree, params.CoeffModulus)
	if err != nil {
		return Ciphertext{}, err
	}
	e2, err := sampleTernary(params.Degree, params.CoeffModulus)
	if err != nil {
		return Ciphertext{}, err
	}
	c0 := pk.B.mul(u).add(e1).add(m)
	c1 := pk.A.mul(u).add(e2)
	return Ciphertext{C0: c0, C1: c1}, nil
}

// Add computes the ciphertext sum of a and b, corresponding to
// plaintext addition.
func Add(a, b Ciphertext) Ciphertext {
	return Ciphertext{C0: a.C0.add(b.C0), C1: a.C1.add(b.C1)}
}

// Rerandomize adds a fresh encryption of zero under pk to ct,
// flattening its noise distribution before threshold decryption, the
// way step 6 of the protocol recommends.
func Rerandomize(params Params, pk PublicKey, ct Ciphertext) (Ciphertext, error) {
	zero := newPoly(params.Degree, params.CoeffModulus)
	encZero, err := Encrypt(params, pk, zero)
	if err != nil {
		return Ciphertext{}, err
	}
	return Add(ct, encZero), nil
}

// Multiply computes a SIMPLIFIED homomorphic product of two
// ciphertexts. A correct BFV multiplication expands to a
// three-component ciphertext (c0, c1, c2) against s^2 and then
// relinearizes back down to two components using an evaluation key;
// this function instead approximates the result by rescaling the
// cross terms directly into the two-component shape without ever
// forming or consuming an evaluation key. It drops the c1·c1' term and
// rescales products that are already reduced mod q, so its output does
// not in general decrypt to the product of the two plaintexts, which is
// why the generator that calls it is documented as experimental rather
// than production-grade.
func Multiply(params Params, a, b Ciphertext) Ciphertext {
	scale := func(p poly) poly {
		d := delta(params)
		out := newPoly(p.degree(), p.modulus)
		for i, c := range p.coeffs {
			out.coeffs[i] = (c / d) % p.modulus
		}
		return out
	}
	c0 := scale(a.C0.mul(b.C0))
	c1 := scale(a.C0.mul(b.C1).add(a.C1.mul(b.C0)))
	return Ciphertext{C0: c0, C1: c1}
}

// DecryptionShare is party i's partial decryption of a ciphertext:
// sk_i's contribution to removing the secret key's mask.
type DecryptionShare struct {
	PartyID int
	Share   poly
}

// PartialDecrypt computes party i's decryption share of ct using its
// secret-key share.
func PartialDecrypt(ct Ciphertext, sk SecretKeyShare, partyID int) DecryptionShare {
	return DecryptionShare{PartyID: partyID, Share: ct.C1.mul(sk.S)}
}

// CombineDecryption combines every party's decryption share with the
// ciphertext's c0 component and decodes the result.
func CombineDecryption(params Params, ct Ciphertext, shares []DecryptionShare) []uint64 {
	acc := ct.C0
	for _, s := range shares {
		acc = acc.add(s.Share)
	}
	return Decode(params, acc)
}
