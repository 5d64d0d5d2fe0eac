// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwitaddr

import (
	"fmt"

	"github.com/btcsuite/segwitaddr/bech32"
)

// WitnessProgram pairs a witness version with the raw program bytes of an
// output script for a particular network. Values are immutable once
// constructed and carry the bech32 address computed at construction time, so
// ToAddress cannot fail.
type WitnessProgram struct {
	version byte
	program []byte
	network Network
	address string
}

// NewWitnessProgram returns a validated witness program for the given
// network. The version must be at most 16 and the program between 2 and 40
// bytes. Version 0 programs must be exactly 20 bytes (P2WPKH) or 32 bytes
// (P2WSH) per BIP-141.
func NewWitnessProgram(version byte, program []byte,
	network Network) (*WitnessProgram, error) {

	if err := validateProgram(version, program); err != nil {
		return nil, err
	}
	hrp := network.HRP()
	if hrp == "" {
		return nil, ErrUnknownHRP
	}

	// Regroup the program into 5-bit values and prepend the version, which
	// is transmitted as a single bare 5-bit value rather than packed with
	// the program bits.
	groups, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return nil, fmt.Errorf("encode address: %w", err)
	}
	data := make([]byte, 0, len(groups)+1)
	data = append(data, version)
	data = append(data, groups...)

	addr, err := bech32.Encode(hrp, data)
	if err != nil {
		return nil, fmt.Errorf("encode address: %w", err)
	}

	prog := make([]byte, len(program))
	copy(prog, program)
	return &WitnessProgram{
		version: version,
		program: prog,
		network: network,
		address: addr,
	}, nil
}

// FromAddress decodes a segwit address into a witness program. The
// human-readable part must belong to a known network, and the decoded
// version and program must satisfy the same rules NewWitnessProgram
// enforces.
func FromAddress(addr string) (*WitnessProgram, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	network, ok := NetworkForHRP(hrp)
	if !ok {
		return nil, ErrUnknownHRP
	}
	if len(data) == 0 {
		return nil, ErrMissingVersion
	}

	// One version value plus at most 64 regrouped program values.
	if len(data) > 65 {
		return nil, ErrInvalidProgramLength
	}
	version := data[0]
	if version > 16 {
		return nil, ErrInvalidVersion
	}

	// A decoder must reject addresses whose final incomplete group carries
	// non-zero padding bits, so the conversion runs without padding.
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	if err := validateProgram(version, program); err != nil {
		return nil, err
	}

	return &WitnessProgram{
		version: version,
		program: program,
		network: network,
		address: addr,
	}, nil
}

// validateProgram enforces the BIP-141 version and length rules.
func validateProgram(version byte, program []byte) error {
	if version > 16 {
		return ErrInvalidVersion
	}
	if len(program) < 2 || len(program) > 40 {
		return ErrInvalidProgramLength
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return ErrInvalidVersionLength
	}
	return nil
}

// ToAddress returns the segwit address for the witness program.
func (p *WitnessProgram) ToAddress() string {
	return p.address
}

// Version returns the witness version.
func (p *WitnessProgram) Version() byte {
	return p.version
}

// Program returns a copy of the raw witness program bytes.
func (p *WitnessProgram) Program() []byte {
	program := make([]byte, len(p.program))
	copy(program, p.program)
	return program
}

// Network returns the network the witness program belongs to.
func (p *WitnessProgram) Network() Network {
	return p.network
}

// ToScriptPubKey assembles the script pubkey committing to the witness
// program: the version opcode followed by a data push of the program bytes.
// Versions 1 through 16 are represented by OP_1 through OP_16 (0x51-0x60).
func (p *WitnessProgram) ToScriptPubKey() []byte {
	op := p.version
	if op > 0 {
		op += 0x50
	}
	script := make([]byte, 0, len(p.program)+2)
	script = append(script, op, byte(len(p.program)))
	return append(script, p.program...)
}

// FromScriptPubKey extracts the witness program committed to by a script
// pubkey of the form produced by ToScriptPubKey.
func FromScriptPubKey(script []byte, network Network) (*WitnessProgram, error) {
	// A version opcode, a push length byte and a minimal 2 byte program.
	if len(script) < 4 {
		return nil, ErrScriptTooShort
	}
	if len(script) != int(script[1])+2 {
		return nil, ErrScriptLengthMismatch
	}
	version := script[0]
	if version > 0x50 {
		version -= 0x50
	}
	return NewWitnessProgram(version, script[2:], network)
}
