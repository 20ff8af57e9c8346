//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ole implements the semi-honest two-party Beaver triple
// generator built on a single oblivious linear evaluation primitive
// (see internal/ole), the way the teacher's triplegen_ot.go builds
// Beaver triples out of a batched VOLE exchange, except here the two
// conceptual parties P1 and Pn run in the same process and exchange
// only through the internal/ole black box rather than over a
// p2p.Conn.
package ole

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/internal/ole"
	"github.com/markkurossi/mpccore/mpcerr"
)

// State is a stage in the two-party OLE-based generator's protocol.
type State int

// Protocol states, advancing strictly forward from RandomGen to
// Completed, or to Failed on error.
const (
	StateRandomGen State = iota
	StateFirstOLE
	StateSecondOLE
	StateFinalComputation
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRandomGen:
		return "RandomGen"
	case StateFirstOLE:
		return "FirstOLE"
	case StateSecondOLE:
		return "SecondOLE"
	case StateFinalComputation:
		return "FinalComputation"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// PartyShare is one party's additive-style contribution to a triple
// generated by the two-party protocol: with the other party's share,
// (a1+a2)(b1+b2) = c1+c2 holds exactly.
type PartyShare struct {
	A, B, C field.Elt
}

// Session drives one party's view of the protocol: step 1's local
// sampling, the two OLE exchanges of steps 3 and 5, and step 6's
// final local computation. RunTwoParty wires a P1 and a Pn session
// together to produce both parties' shares.
type Session struct {
	state State
	a, b  field.Elt
	r, s  field.Elt
	fail  string
}

// NewSession constructs a session at the initial RandomGen state.
func NewSession() *Session {
	return &Session{state: StateRandomGen}
}

// State reports the session's current protocol state.
func (sess *Session) State() State {
	return sess.state
}

// FailReason reports the error message that moved the session to
// StateFailed, or the empty string if it never failed.
func (sess *Session) FailReason() string {
	return sess.fail
}

func randomElt() (field.Elt, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, mpcerr.Wrap(mpcerr.CryptographicError, "ole session: sampling randomness", err)
	}
	return field.New(binary.LittleEndian.Uint64(buf[:])), nil
}

// sampleRandomness executes step 1: sample this party's half of a, b
// and the values r, s, which stay buffered until the session is
// scrubbed; the OLE exchanges draw their own masks and do not read them.
func (sess *Session) sampleRandomness() error {
	if sess.state != StateRandomGen {
		return sess.abort(mpcerr.New(mpcerr.ProtocolError,
			"ole session: sampleRandomness called out of order"))
	}
	var err error
	if sess.a, err = randomElt(); err != nil {
		return sess.abort(err)
	}
	if sess.b, err = randomElt(); err != nil {
		return sess.abort(err)
	}
	if sess.r, err = randomElt(); err != nil {
		return sess.abort(err)
	}
	if sess.s, err = randomElt(); err != nil {
		return sess.abort(err)
	}
	sess.state = StateFirstOLE
	return nil
}

func (sess *Session) abort(err error) error {
	sess.state = StateFailed
	sess.fail = err.Error()
	sess.scrub()
	return err
}

func (sess *Session) scrub() {
	sess.a, sess.b, sess.r, sess.s = 0, 0, 0, 0
}

// Reset discards any buffered randomness and returns the session to
// its initial state, as required of any cancelled two-party OLE
// session.
func (sess *Session) Reset() {
	sess.scrub()
	sess.state = StateRandomGen
	sess.fail = ""
}

// oleExecute implements the ole_execute(sender_input, receiver_input)
// -> (sender_output, receiver_output) contract: sender_output +
// receiver_output = alpha*beta, with each output uniform to its
// holder alone.
func oleExecute(alpha, beta field.Elt) (senderOut, receiverOut field.Elt, err error) {
	r, u, err := ole.Evaluate(alpha, beta)
	if err != nil {
		return 0, 0, err
	}
	return field.Neg(r), u, nil
}

// RunTwoParty drives p1 and pn, both freshly constructed at
// StateRandomGen, through the full seven-step protocol and returns
// each party's local share of the generated triple. On any failure,
// both sessions are moved to StateFailed and scrubbed, and no partial
// triple is returned.
func RunTwoParty(p1, pn *Session) (p1Share, pnShare PartyShare, err error) {
	if p1.state != StateRandomGen || pn.state != StateRandomGen {
		return PartyShare{}, PartyShare{}, mpcerr.New(mpcerr.ProtocolError,
			"ole: both sessions must start at RandomGen")
	}

	if err := p1.sampleRandomness(); err != nil {
		pn.abort(err)
		return PartyShare{}, PartyShare{}, err
	}
	if err := pn.sampleRandomness(); err != nil {
		p1.abort(err)
		return PartyShare{}, PartyShare{}, err
	}

	// Step 3: OLE #1 computes shares of a1*bn. P1 is the sender
	// (inputs a1), Pn is the receiver (inputs bn). The mask is sampled
	// inside ole.Evaluate; the sessions' buffered r and s are not fed
	// into either exchange.
	u1, v1, err := oleExecute(p1.a, pn.b)
	if err != nil {
		p1.abort(err)
		pn.abort(err)
		return PartyShare{}, PartyShare{}, err
	}
	p1.state = StateSecondOLE
	pn.state = StateSecondOLE

	// Step 5: OLE #2 computes shares of an*b1 symmetrically, with Pn
	// as sender and P1 as receiver.
	u2, v2, err := oleExecute(pn.a, p1.b)
	if err != nil {
		p1.abort(err)
		pn.abort(err)
		return PartyShare{}, PartyShare{}, err
	}
	p1.state = StateFinalComputation
	pn.state = StateFinalComputation

	// Step 6: local computation of each party's c share. c1 = a1*b1 +
	// u1 + v2, cn = an*bn + v1 + u2, matching the exact decomposition
	// a*b = a1*b1 + an*bn + a1*bn + an*b1.
	c1 := field.Add(field.Mul(p1.a, p1.b), field.Add(u1, v2))
	cn := field.Add(field.Mul(pn.a, pn.b), field.Add(v1, u2))

	p1Share = PartyShare{A: p1.a, B: p1.b, C: c1}
	pnShare = PartyShare{A: pn.a, B: pn.b, C: cn}

	p1.state = StateCompleted
	pn.state = StateCompleted
	p1.scrub()
	pn.scrub()

	return p1Share, pnShare, nil
}
