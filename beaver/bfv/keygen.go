//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bfv

import "github.com/markkurossi/mpccore/mpcerr"

// PublicKey is the jointly generated public key every party holds an
// identical copy of after step 1: b = -(a*sk + e), a, where sk is the
// sum of every party's secret-key share and a is the shared
// common-reference polynomial.
type PublicKey struct {
	A, B poly
}

// SecretKeyShare is one party's additive share of the joint secret
// key; sk = sum of all parties' shares. No party, nor any strict
// subset smaller than all of them, ever holds sk itself.
type SecretKeyShare struct {
	S poly
}

// Scrub overwrites a secret-key share's coefficients, for use when a
// session is cancelled mid-protocol.
func (s *SecretKeyShare) Scrub() {
	for i := range s.S.coeffs {
		s.S.coeffs[i] = 0
	}
}

// KeyGenContribution is party i's public contribution to the joint
// keygen of step 1: b_i = -(a*sk_i + e_i). Combining every party's B_i
// (by summation) yields the shared public key's b component.
type KeyGenContribution struct {
	PartyID int
	B       poly
}

// GenerateKeyShare samples party i's secret-key share and its public
// contribution to the joint key, against the shared common-reference
// polynomial a.
func GenerateKeyShare(params Params, a poly, partyID int) (SecretKeyShare, KeyGenContribution, error) {
	sk, err := sampleTernary(params.Degree, params.CoeffModulus)
	if err != nil {
		return SecretKeyShare{}, KeyGenContribution{}, err
	}
	e, err := sampleTernary(params.Degree, params.CoeffModulus)
	if err != nil {
		return SecretKeyShare{}, KeyGenContribution{}, err
	}
	b := a.mul(sk).add(e).neg()
	return SecretKeyShare{S: sk}, KeyGenContribution{PartyID: partyID, B: b}, nil
}

// CombinePublicKey sums every party's keygen contribution to produce
// the shared public key.
func CombinePublicKey(a poly, contributions []KeyGenContribution) (PublicKey, error) {
	if len(contributions) == 0 {
		return PublicKey{}, mpcerr.New(mpcerr.ProtocolError, "bfv: no keygen contributions")
	}
	b := contributions[0].B
	for _, c := range contributions[1:] {
		b = b.add(c.B)
	}
	return PublicKey{A: a, B: b}, nil
}
