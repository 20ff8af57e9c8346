//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bfv

import (
	"encoding/binary"

	"github.com/markkurossi/mpccore/mpcerr"
)

// MessageType tags the payload carried by a protocol message
// envelope, mirroring the tss package's marshalTSSMessage /
// unmarshalTSSMessage envelope pattern generalized to this protocol's
// round structure.
type MessageType byte

// Message type tags for the five round payloads the protocol
// exchanges.
const (
	MsgKeyGenContribution MessageType = iota + 1
	MsgEncryptedShares
	MsgAggregationResult
	MsgDecryptionShare
	MsgFinalShare
)

// Envelope is the wire format for a single protocol message: type_tag
// (1B) || party_id (4B LE u32) || round (1B) || payload_length (4B LE
// u32) || payload.
type Envelope struct {
	Type    MessageType
	PartyID uint32
	Round   uint8
	Payload []byte
}

// Encode serializes the envelope to its wire format.
func (e Envelope) Encode() []byte {
	out := make([]byte, 0, 1+4+1+4+len(e.Payload))
	out = append(out, byte(e.Type))

	var partyID [4]byte
	binary.LittleEndian.PutUint32(partyID[:], e.PartyID)
	out = append(out, partyID[:]...)

	out = append(out, e.Round)

	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(e.Payload)))
	out = append(out, length[:]...)

	out = append(out, e.Payload...)
	return out
}

// DecodeEnvelope parses a wire-format envelope, rejecting any length
// prefix inconsistent with the remaining buffer.
func DecodeEnvelope(data []byte) (Envelope, error) {
	const headerLen = 1 + 4 + 1 + 4
	if len(data) < headerLen {
		return Envelope{}, mpcerr.New(mpcerr.SerializationError, "bfv: envelope shorter than header")
	}
	e := Envelope{
		Type:    MessageType(data[0]),
		PartyID: binary.LittleEndian.Uint32(data[1:5]),
		Round:   data[5],
	}
	length := binary.LittleEndian.Uint32(data[6:10])
	rest := data[10:]
	if uint32(len(rest)) != length {
		return Envelope{}, mpcerr.New(mpcerr.SerializationError, "bfv: envelope payload length mismatch")
	}
	e.Payload = append([]byte(nil), rest...)
	return e, nil
}

// State is a stage of the BFV threshold generator's protocol context.
type State int

// Protocol states. Round order is fixed; AdvanceRound only ever moves
// strictly forward, and Failed is terminal.
const (
	StateInitialized State = iota
	StateKeyGenDone
	StateEncryptionsExchanged
	StateAggregationDone
	StateDecryptionDone
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "Initialized"
	case StateKeyGenDone:
		return "KeyGenDone"
	case StateEncryptionsExchanged:
		return "EncryptionsExchanged"
	case StateAggregationDone:
		return "AggregationDone"
	case StateDecryptionDone:
		return "DecryptionDone"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Context tracks one run of the threshold generator's protocol state,
// the round it is currently in, and (once available) the public key
// and this party's secret-key share.
type Context struct {
	State        State
	CurrentRound uint8
	PublicKey    *PublicKey
	SecretShare  *SecretKeyShare
	FailReason   string
}

// AdvanceRound moves the context to the next state, rejecting any
// attempt to move anywhere but strictly forward.
func (c *Context) AdvanceRound(next State) error {
	if c.State == StateFailed {
		return mpcerr.New(mpcerr.ProtocolError, "bfv: context already failed")
	}
	if next <= c.State {
		return mpcerr.New(mpcerr.ProtocolError, "bfv: round must advance strictly forward")
	}
	c.State = next
	c.CurrentRound++
	return nil
}

// Fail moves the context to the terminal Failed state and scrubs its
// secret-key share.
func (c *Context) Fail(reason string) {
	c.State = StateFailed
	c.FailReason = reason
	if c.SecretShare != nil {
		c.SecretShare.Scrub()
	}
}
