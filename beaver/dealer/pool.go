//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dealer

import (
	"sync"

	"github.com/markkurossi/mpccore/beaver"
	"github.com/markkurossi/mpccore/mpcerr"
)

// Pool amortizes triple generation by maintaining a FIFO of
// pregenerated triples; it is the only stateful shared object within
// the core and must be locked on extraction and refill.
type Pool struct {
	gen *Generator
	mu  sync.Mutex
	buf []*beaver.Triple
}

// NewPool wraps generator with a precomputed FIFO pool, pre-filling it
// to config.PoolSize.
func NewPool(g *Generator) (*Pool, error) {
	p := &Pool{gen: g}
	if g.config.PrecomputePool && g.config.PoolSize > 0 {
		if err := p.refill(g.config.PoolSize); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Pool) refill(n int) error {
	fresh, err := p.gen.GenerateBatch(n)
	if err != nil {
		return err
	}
	p.buf = append(p.buf, fresh...)
	return nil
}

// Take removes and returns the oldest triple in the pool, refilling it
// from the generator on demand if empty.
func (p *Pool) Take() (*beaver.Triple, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.buf) == 0 {
		batchSize := p.gen.config.BatchSize
		if batchSize <= 0 {
			batchSize = 1
		}
		if err := p.refill(batchSize); err != nil {
			return nil, err
		}
	}
	if len(p.buf) == 0 {
		return nil, mpcerr.New(mpcerr.CryptographicError, "pool empty after refill")
	}

	triple := p.buf[0]
	p.buf = p.buf[1:]
	return triple, nil
}

// Len reports the number of triples currently buffered.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buf)
}
