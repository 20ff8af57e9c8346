//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package bfv implements the eight-step BFV threshold Beaver triple
// generator. It is EXPERIMENTAL: it implements the protocol's round
// structure, message types, and state machine in full, but its
// ciphertext arithmetic is a simplified ring-LWE-flavored scheme, not
// a relinearization-correct BFV multiplication. The teacher's
// original source has the same limitation (see the commit binding it
// replaces in docs/spdz-mascot); a production deployment MUST replace
// Multiply's (ciphertext.go) noise handling with real RNS-BFV relinearization (e.g.
// fully adopting lattigo's rlwe.Evaluator.Relinearize) before trusting
// the output of generated triples in a live protocol.
package bfv

import (
	"math/bits"

	lattigobfv "github.com/tuneinsight/lattigo/v5/bfv"
	"github.com/tuneinsight/lattigo/v5/rlwe"

	"github.com/markkurossi/mpccore/mpcerr"
)

// Params configures the ring dimensions for the threshold generator:
// a power-of-two ring degree, a single-modulus ciphertext space (the
// toy ring skips lattigo's RNS decomposition), a plaintext modulus
// distinct from the Shamir threshold, and the noise standard
// deviation used when sampling encryption error terms.
type Params struct {
	Degree       int
	PlainModulus uint64
	CoeffModulus uint64
	NoiseStdDev  float64
}

// DefaultParams returns a conservative toy parameter set: N=4096,
// matching lattigo's PN12QP109 plaintext modulus, with a 61-bit
// coefficient modulus chosen independently of field.Prime (the BFV
// ring and the Shamir field are unrelated moduli).
func DefaultParams() Params {
	return Params{
		Degree:       4096,
		PlainModulus: 65537,
		CoeffModulus: (1 << 61) - 1,
		NoiseStdDev:  rlwe.DefaultSigma,
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Validate checks the parameter set for internal consistency and
// cross-checks the ring degree and plaintext modulus against
// lattigo's own BFV parameter validation, so that a degenerate choice
// here (e.g. a plaintext modulus the scheme could never batch
// correctly) is caught even though this package does not route
// ciphertext arithmetic through lattigo itself.
func (p Params) Validate() error {
	if !isPowerOfTwo(p.Degree) {
		return mpcerr.New(mpcerr.InvalidThreshold, "bfv: degree must be a power of two")
	}
	if p.PlainModulus == 0 || p.CoeffModulus == 0 {
		return mpcerr.New(mpcerr.InvalidThreshold, "bfv: moduli must be nonzero")
	}
	if p.CoeffModulus <= p.PlainModulus {
		return mpcerr.New(mpcerr.InvalidThreshold, "bfv: coeff modulus must exceed plaintext modulus")
	}

	lit := lattigobfv.ParametersLiteral{
		LogN:  bits.Len(uint(p.Degree)) - 1,
		T:     p.PlainModulus,
		Q:     []uint64{p.CoeffModulus},
		Sigma: p.NoiseStdDev,
	}
	if _, err := lattigobfv.NewParametersFromLiteral(lit); err != nil {
		return mpcerr.Wrap(mpcerr.InvalidThreshold, "bfv: lattigo parameter validation", err)
	}
	return nil
}
