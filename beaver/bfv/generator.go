//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bfv

import (
	"crypto/rand"

	"github.com/markkurossi/mpccore/beaver"
	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/internal/commit"
	"github.com/markkurossi/mpccore/mpcerr"
	"github.com/markkurossi/mpccore/shamir"
)

// Generator runs the eight-step BFV threshold Beaver triple generator
// for n parties with Shamir threshold t. All n parties' views are
// simulated in-process: there is no transport layer, so every round's
// messages are produced and consumed within Generate rather than
// crossing a Context per peer the way a networked deployment would
// drive one Context each.
type Generator struct {
	Params Params
	N, T   int
}

// New validates a generator's parameters and Shamir threshold.
func New(params Params, n, t int) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if t == 0 || n == 0 || t > n {
		return nil, mpcerr.New(mpcerr.InvalidThreshold, "bfv: require 0 < t <= n")
	}
	return &Generator{Params: params, N: n, T: t}, nil
}

func randomSeed() ([]byte, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, mpcerr.Wrap(mpcerr.CryptographicError, "bfv: sampling CRS seed", err)
	}
	return seed, nil
}

func randomPlaintextValue(bound uint64) (uint64, error) {
	return randomUint64Below(bound)
}

// Generate runs the full eight-step protocol and returns the
// resulting Beaver triple, Shamir-shared among the n parties. If a
// protocol step fails it returns that step's error (CryptographicError,
// ProtocolError or SerializationError); no partial triple is ever
// returned.
func (g *Generator) Generate() (*beaver.Triple, error) {
	ctx := &Context{State: StateInitialized}

	// Step 1: joint keygen. The common-reference polynomial a is
	// deterministically derived from a fresh session seed that every
	// party is assumed to already share (e.g. from a setup round not
	// modeled here).
	seed, err := randomSeed()
	if err != nil {
		return nil, err
	}
	a := sampleCRS(g.Params.Degree, g.Params.CoeffModulus, seed)

	skShares := make([]SecretKeyShare, g.N)
	contributions := make([]KeyGenContribution, g.N)
	for i := 0; i < g.N; i++ {
		sk, contrib, err := GenerateKeyShare(g.Params, a, i)
		if err != nil {
			ctx.Fail(err.Error())
			return nil, err
		}
		skShares[i] = sk
		contributions[i] = contrib
	}
	pk, err := CombinePublicKey(a, contributions)
	if err != nil {
		ctx.Fail(err.Error())
		return nil, err
	}
	ctx.PublicKey = &pk
	if err := ctx.AdvanceRound(StateKeyGenDone); err != nil {
		return nil, err
	}

	// Step 2+3: each party samples a_i, b_i, encrypts them, and binds
	// the plaintext with a hash commitment.
	bound := g.Params.PlainModulus
	as := make([]uint64, g.N)
	bs := make([]uint64, g.N)
	encAs := make([]Ciphertext, g.N)
	encBs := make([]Ciphertext, g.N)
	for i := 0; i < g.N; i++ {
		ai, err := randomPlaintextValue(bound)
		if err != nil {
			ctx.Fail(err.Error())
			return nil, err
		}
		bi, err := randomPlaintextValue(bound)
		if err != nil {
			ctx.Fail(err.Error())
			return nil, err
		}
		as[i], bs[i] = ai, bi

		nonce, err := commit.NewNonce()
		if err != nil {
			ctx.Fail(err.Error())
			return nil, err
		}
		c := commit.Commit(encodeUint64(ai), nonce)
		if !commit.Verify(c, encodeUint64(ai), nonce) {
			err := mpcerr.New(mpcerr.CryptographicError, "bfv: plaintext commitment failed to self-verify")
			ctx.Fail(err.Error())
			return nil, err
		}

		encAs[i], err = Encrypt(g.Params, pk, Encode(g.Params, []uint64{ai}))
		if err != nil {
			ctx.Fail(err.Error())
			return nil, err
		}
		encBs[i], err = Encrypt(g.Params, pk, Encode(g.Params, []uint64{bi}))
		if err != nil {
			ctx.Fail(err.Error())
			return nil, err
		}
	}
	if err := ctx.AdvanceRound(StateEncryptionsExchanged); err != nil {
		return nil, err
	}

	// Step 4: aggregate.
	encA := encAs[0]
	encB := encBs[0]
	for i := 1; i < g.N; i++ {
		encA = Add(encA, encAs[i])
		encB = Add(encB, encBs[i])
	}
	if err := ctx.AdvanceRound(StateAggregationDone); err != nil {
		return nil, err
	}

	// Step 5: homomorphic multiply (simplified, see ciphertext.go).
	encC := Multiply(g.Params, encA, encB)

	// Step 6: re-randomize.
	encC, err = Rerandomize(g.Params, pk, encC)
	if err != nil {
		ctx.Fail(err.Error())
		return nil, err
	}

	// Step 7: threshold decrypt. Each party's share is round-tripped
	// through the §6.2 message envelope so the receiving side's
	// round/party_id checks are actually exercised rather than just
	// unit-tested in isolation (bfv_test.go).
	shares := make([]DecryptionShare, g.N)
	for i := 0; i < g.N; i++ {
		local := PartialDecrypt(encC, skShares[i], i)
		env := Envelope{
			Type:    MsgDecryptionShare,
			PartyID: uint32(i),
			Round:   ctx.CurrentRound,
			Payload: encodePoly(local.Share),
		}
		received, err := DecodeEnvelope(env.Encode())
		if err != nil {
			ctx.Fail(err.Error())
			return nil, err
		}
		if received.Type != MsgDecryptionShare || received.PartyID != uint32(i) ||
			received.Round != ctx.CurrentRound {
			err := mpcerr.New(mpcerr.ProtocolError, "bfv: decryption share envelope failed round/party_id validation")
			ctx.Fail(err.Error())
			return nil, err
		}
		sharePoly, err := decodePoly(received.Payload, g.Params.CoeffModulus)
		if err != nil {
			ctx.Fail(err.Error())
			return nil, err
		}
		shares[i] = DecryptionShare{PartyID: int(received.PartyID), Share: sharePoly}
	}
	decoded := CombineDecryption(g.Params, encC, shares)
	if len(decoded) == 0 {
		err := mpcerr.New(mpcerr.CryptographicError, "bfv: threshold decrypt produced no output")
		ctx.Fail(err.Error())
		return nil, err
	}
	c := decoded[0]
	if err := ctx.AdvanceRound(StateDecryptionDone); err != nil {
		return nil, err
	}

	for _, sk := range skShares {
		sk.Scrub()
	}

	// Step 8: local Shamir-share of the totals, reassembled into per
	// party (a_i', b_i', c_i') consistent with (a,b,c). The totals must
	// be reduced mod PlainModulus before comparison with c: Encrypt
	// encoded each ai/bi mod PlainModulus, so the decrypted product c
	// is only ever consistent with (Σai mod PlainModulus, Σbi mod
	// PlainModulus), not with the raw unreduced sums.
	var aTotal, bTotal uint64
	for i := 0; i < g.N; i++ {
		aTotal += as[i]
		bTotal += bs[i]
	}
	aTotal %= g.Params.PlainModulus
	bTotal %= g.Params.PlainModulus

	aElt := field.New(aTotal)
	bElt := field.New(bTotal)
	cElt := field.New(c)

	// a, b and c must share one x-coordinate set across parties, just
	// as in the trusted-dealer generator: independent Random() calls
	// per split would give each share its own coordinate and break
	// beaver.Share.IsConsistent.
	strategy := shamir.Sequential()
	aShares, err := shamir.Split(aElt, g.T, g.N, strategy)
	if err != nil {
		return nil, err
	}
	bShares, err := shamir.Split(bElt, g.T, g.N, strategy)
	if err != nil {
		return nil, err
	}
	cShares, err := shamir.Split(cElt, g.T, g.N, strategy)
	if err != nil {
		return nil, err
	}

	beaverShares := make(map[uint64]beaver.Share, g.N)
	for i := 0; i < g.N; i++ {
		beaverShares[uint64(i)] = beaver.Share{
			ID: beaver.NewID(uint64(i)), A: aShares[i], B: bShares[i], C: cShares[i],
		}
	}

	ctx.State = StateCompleted
	return &beaver.Triple{
		Shares:   beaverShares,
		Original: &beaver.Plain{A: aElt, B: bElt, C: cElt},
	}, nil
}

func encodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	return buf
}
