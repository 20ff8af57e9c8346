//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package beaver

import (
	"testing"

	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/shamir"
)

func TestEncodeDecodeShareRoundTrip(t *testing.T) {
	s := Share{
		ID: NewID(7),
		A:  shamir.Share{X: field.New(1), Y: field.New(11)},
		B:  shamir.Share{X: field.New(1), Y: field.New(22)},
		C:  shamir.Share{X: field.New(1), Y: field.New(33)},
	}

	buf := EncodeShare(s)
	if len(buf) != shareTransferSize {
		t.Fatalf("EncodeShare length=%d, want %d", len(buf), shareTransferSize)
	}

	got, err := DecodeShare(buf)
	if err != nil {
		t.Fatalf("DecodeShare: %v", err)
	}
	if got != s {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestDecodeShareRejectsBadLength(t *testing.T) {
	if _, err := DecodeShare(make([]byte, shareTransferSize-1)); err == nil {
		t.Fatalf("expected error on short buffer")
	}
}

func TestIDRoundTripsUint64(t *testing.T) {
	id := NewID(0xdeadbeef)
	if id.Uint64() != 0xdeadbeef {
		t.Errorf("ID.Uint64()=%x, want deadbeef", id.Uint64())
	}
}
