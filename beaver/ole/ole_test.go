//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ole

import (
	"testing"

	"github.com/markkurossi/mpccore/field"
)

func TestRunTwoPartyProducesCorrectTriple(t *testing.T) {
	p1 := NewSession()
	pn := NewSession()

	p1Share, pnShare, err := RunTwoParty(p1, pn)
	if err != nil {
		t.Fatalf("RunTwoParty: %v", err)
	}

	a := field.Add(p1Share.A, pnShare.A)
	b := field.Add(p1Share.B, pnShare.B)
	c := field.Add(p1Share.C, pnShare.C)

	if got := field.Mul(a, b); got != c {
		t.Errorf("(a1+an)(b1+bn)=%v, c1+cn=%v", got, c)
	}

	if p1.State() != StateCompleted || pn.State() != StateCompleted {
		t.Errorf("sessions did not reach Completed: p1=%v pn=%v", p1.State(), pn.State())
	}
}

func TestRunTwoPartyRejectsNonInitialSessions(t *testing.T) {
	p1 := NewSession()
	pn := NewSession()
	p1.state = StateCompleted

	if _, _, err := RunTwoParty(p1, pn); err == nil {
		t.Fatalf("expected error for non-initial session")
	}
}

func TestResetScrubsAndReturnsToRandomGen(t *testing.T) {
	sess := NewSession()
	if err := sess.sampleRandomness(); err != nil {
		t.Fatalf("sampleRandomness: %v", err)
	}
	sess.Reset()
	if sess.State() != StateRandomGen {
		t.Errorf("state=%v, want RandomGen", sess.State())
	}
	if sess.a != 0 || sess.b != 0 || sess.r != 0 || sess.s != 0 {
		t.Errorf("Reset did not scrub buffered randomness")
	}
}

func TestStateStringCoversAllStates(t *testing.T) {
	states := []State{StateRandomGen, StateFirstOLE, StateSecondOLE,
		StateFinalComputation, StateCompleted, StateFailed}
	for _, s := range states {
		if s.String() == "Unknown" {
			t.Errorf("state %d has no name", s)
		}
	}
}
