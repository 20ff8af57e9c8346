//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mpcerr defines the closed set of error kinds surfaced by the
// MPC core, mirroring the way kernel/errno.go maps internal faults to a
// small named set of codes instead of ad hoc error strings.
package mpcerr

import "fmt"

// Kind identifies the category of a core error.
type Kind int

// Error kinds.
const (
	// InvalidThreshold reports a bad (t, n) relation at share/reconstruct
	// construction time. Always a caller bug.
	InvalidThreshold Kind = iota

	// InsufficientShares reports a reconstruct call given fewer than t
	// shares. Always a caller bug.
	InsufficientShares

	// InvalidSecretShare reports mismatched x-coordinates or a
	// structurally corrupt share. The enclosing session must abort.
	InvalidSecretShare

	// DuplicateShare reports a repeated x-coordinate in a reconstruction
	// input set.
	DuplicateShare

	// ProtocolError reports a round or state violation in a multi-round
	// protocol. The enclosing session must abort.
	ProtocolError

	// SerializationError reports malformed on-wire bytes. The message
	// must be rejected.
	SerializationError

	// CryptographicError reports a cryptographic failure such as BFV
	// decryption noise overflow or an OLE sub-protocol failure. The
	// enclosing session must abort.
	CryptographicError

	// MacCheckFailure reports a failed SPDZ MAC check. The enclosing
	// computation must abort immediately.
	MacCheckFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidThreshold:
		return "invalid threshold"
	case InsufficientShares:
		return "insufficient shares"
	case InvalidSecretShare:
		return "invalid secret share"
	case DuplicateShare:
		return "duplicate share"
	case ProtocolError:
		return "protocol error"
	case SerializationError:
		return "serialization error"
	case CryptographicError:
		return "cryptographic error"
	case MacCheckFailure:
		return "MAC check failure"
	default:
		return "unknown error"
	}
}

// Error is the core's error type: a Kind plus free-form context.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so callers
// can do errors.Is(err, mpcerr.New(mpcerr.MacCheckFailure, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New creates an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap creates an Error of the given kind wrapping err.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
