// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwitaddr

import "errors"

// ErrUnknownHRP describes an error where the human-readable part of an
// address does not belong to any known network.
var ErrUnknownHRP = errors.New("unknown human-readable part")

// ErrMissingVersion describes an error where the data part of an address
// carries no witness version at all.
var ErrMissingVersion = errors.New("address carries no witness version")

// ErrInvalidVersion describes an error where a witness version is larger
// than the maximum of 16.
var ErrInvalidVersion = errors.New("witness version must be between 0 and 16")

// ErrInvalidProgramLength describes an error where a witness program is
// outside the 2 to 40 byte range permitted by BIP-141.
var ErrInvalidProgramLength = errors.New("witness program must be between 2 " +
	"and 40 bytes")

// ErrInvalidVersionLength describes an error where a version 0 witness
// program is neither 20 bytes (P2WPKH) nor 32 bytes (P2WSH).
var ErrInvalidVersionLength = errors.New("witness program length is not " +
	"valid for version 0")

// ErrScriptTooShort describes an error where a script pubkey is too short to
// contain a version opcode, a push length and a minimal program.
var ErrScriptTooShort = errors.New("script pubkey too short")

// ErrScriptLengthMismatch describes an error where the push length byte of a
// script pubkey does not agree with the script length.
var ErrScriptLengthMismatch = errors.New("script pubkey length does not " +
	"match its push length byte")
