//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

// Package dealer implements the trusted-dealer Beaver triple generator:
// a single trusted party samples (a,b), computes c=a·b, and Shamir-
// shares all three among the participants.
package dealer

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/markkurossi/mpccore/beaver"
	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
	"github.com/markkurossi/mpccore/shamir"
)

// Config configures the trusted-dealer generator's optional batching
// and verification behavior.
type Config struct {
	PrecomputePool bool
	PoolSize       int
	BatchSize      int
	SecurityChecks bool
}

// DefaultConfig returns a Config with pooling disabled and security
// checks enabled, the conservative default.
func DefaultConfig() Config {
	return Config{SecurityChecks: true, BatchSize: 1}
}

// Generator is the trusted-dealer Beaver triple generator.
type Generator struct {
	n, t   int
	config Config
	pool   []*beaver.Triple
}

// New constructs a trusted-dealer generator for n parties with
// threshold t. Arithmetic in the field is infallible; only the (t, n)
// relation can fail at construction.
func New(n, t int, config Config) (*Generator, error) {
	if t == 0 || n == 0 || t > n {
		return nil, mpcerr.New(mpcerr.InvalidThreshold, "require 0 < t <= n")
	}
	return &Generator{n: n, t: t, config: config}, nil
}

func randomElt() (field.Elt, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return field.New(binary.LittleEndian.Uint64(buf[:])), nil
}

// GenerateSingle samples a, b uniformly, computes c=a·b, and
// Shamir-shares all three among the n parties. If the config requests
// security checks, it verifies the triple before returning and
// regenerates up to maxRegenerateAttempts times on failure.
func (g *Generator) GenerateSingle() (*beaver.Triple, error) {
	const maxRegenerateAttempts = 8

	for attempt := 0; attempt < maxRegenerateAttempts; attempt++ {
		triple, err := g.generateOnce()
		if err != nil {
			return nil, err
		}
		if !g.config.SecurityChecks || triple.Verify(g.t) {
			return triple, nil
		}
	}
	return nil, mpcerr.New(mpcerr.CryptographicError,
		"triple failed verification after repeated regeneration")
}

func (g *Generator) generateOnce() (*beaver.Triple, error) {
	a, err := randomElt()
	if err != nil {
		return nil, err
	}
	b, err := randomElt()
	if err != nil {
		return nil, err
	}
	c := field.Mul(a, b)

	// a, b and c must land on the same x-coordinates so that each
	// party's (a_i, b_i, c_i) shares the x-coordinate invariant
	// beaver.Share.IsConsistent requires; a fresh Random() call per
	// split would give each of a, b, c its own independent coordinates.
	strategy := shamir.Sequential()
	aShares, err := shamir.Split(a, g.t, g.n, strategy)
	if err != nil {
		return nil, err
	}
	bShares, err := shamir.Split(b, g.t, g.n, strategy)
	if err != nil {
		return nil, err
	}
	cShares, err := shamir.Split(c, g.t, g.n, strategy)
	if err != nil {
		return nil, err
	}

	shares := make(map[uint64]beaver.Share, g.n)
	for i := 0; i < g.n; i++ {
		shares[uint64(i)] = beaver.Share{
			ID: beaver.NewID(uint64(i)), A: aShares[i], B: bShares[i], C: cShares[i],
		}
	}

	return &beaver.Triple{
		Shares:   shares,
		Original: &beaver.Plain{A: a, B: b, C: c},
	}, nil
}

// GenerateBatch generates k independent triples.
func (g *Generator) GenerateBatch(k int) ([]*beaver.Triple, error) {
	out := make([]*beaver.Triple, k)
	for i := 0; i < k; i++ {
		triple, err := g.GenerateSingle()
		if err != nil {
			return nil, err
		}
		out[i] = triple
	}
	return out, nil
}
