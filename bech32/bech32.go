// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
)

// charset is the set of characters used in the data section of bech32 strings.
// Note that this is ordered, such that for a given charset[i], i is the binary
// value of the character.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// gen encodes the generator polynomial for the bech32 BCH checksum.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// charsetRev maps a US-ASCII character to its 5-bit value in the charset. A
// value of -1 marks a character that is not part of the charset.
var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i, c := range charset {
		charsetRev[c] = int8(i)
	}
}

// polymod steps a 30-bit accumulator through the values, reducing modulo the
// bech32 generator polynomial over GF(32).
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// hrpExpand returns the checksum input values the human-readable part
// contributes: the high 3 bits of each character, a zero, then the low 5 bits
// of each character. This binds the checksum to the hrp, so a data part that
// checks out under one hrp never checks out under another.
func hrpExpand(hrp string) []byte {
	v := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]>>5)
	}
	v = append(v, 0)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]&31)
	}
	return v
}

// bech32Checksum computes the six 5-bit checksum values for the given hrp and
// data. The hrp must already be lowercase.
func bech32Checksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	pm := polymod(values) ^ 1
	chk := make([]byte, 6)
	for i := 0; i < 6; i++ {
		chk[i] = byte(pm >> uint(5*(5-i)) & 31)
	}
	return chk
}

// toChars maps 5-bit values to their charset characters. The values must all
// be in range, which callers guarantee.
func toChars(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteByte(charset[b])
	}
	return sb.String()
}

// Encode encodes the human-readable part and data into a bech32 string. The
// data must consist of 5-bit values, i.e. each byte must be less than 32.
//
// The hrp must be 1 to 83 printable US-ASCII characters (33-126) of uniform
// case, and the resulting string must not exceed 90 characters. An uppercase
// hrp produces a fully uppercase string, a lowercase hrp a fully lowercase
// one.
func Encode(hrp string, data []byte) (string, error) {
	if len(hrp) < 1 {
		return "", ErrInvalidLength(len(hrp))
	}
	if len(hrp)+len(data)+7 > 90 {
		return "", ErrInvalidLength(len(hrp) + len(data) + 7)
	}
	var hasUpper, hasLower bool
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < 33 || c > 126 {
			return "", ErrInvalidCharacter(rune(c))
		}
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
		hasLower = hasLower || (c >= 'a' && c <= 'z')
	}
	if hasUpper && hasLower {
		return "", ErrMixedCase{}
	}
	for _, b := range data {
		if b >= 32 {
			return "", ErrInvalidDataByte(b)
		}
	}

	// The checksum is always computed over the lowercase form, per BIP-173.
	lower := strings.ToLower(hrp)

	var sb strings.Builder
	sb.Grow(len(hrp) + len(data) + 7)
	sb.WriteString(lower)
	sb.WriteByte('1')
	sb.WriteString(toChars(data))
	sb.WriteString(toChars(bech32Checksum(lower, data)))

	if hasUpper {
		return strings.ToUpper(sb.String()), nil
	}
	return sb.String(), nil
}

// Decode decodes a bech32 encoded string, returning the human-readable part
// (in its original case) and the data part excluding the checksum. The data
// part consists of 5-bit values.
func Decode(bech string) (string, []byte, error) {
	// The string must be between the minimal 8 characters (one character
	// of hrp, the separator and the checksum) and 90 characters.
	if len(bech) < 8 || len(bech) > 90 {
		return "", nil, ErrInvalidLength(len(bech))
	}

	// Only printable US-ASCII is permitted, and the string must not mix
	// upper and lowercase.
	var hasUpper, hasLower bool
	for i := 0; i < len(bech); i++ {
		c := bech[i]
		if c < 33 || c > 126 {
			return "", nil, ErrInvalidCharacter(rune(c))
		}
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
		hasLower = hasLower || (c >= 'a' && c <= 'z')
	}
	if hasUpper && hasLower {
		return "", nil, ErrMixedCase{}
	}

	// The checksum is always computed over the lowercase form.
	lower := bech
	if hasUpper {
		lower = strings.ToLower(bech)
	}

	// The hrp itself may contain '1', so the separator is the last one.
	// There must be at least one hrp character before it and six checksum
	// characters after it.
	one := strings.LastIndexByte(lower, '1')
	if one < 1 || one+7 > len(lower) {
		return "", nil, ErrInvalidSeparatorIndex(one)
	}

	hrp := lower[:one]
	data := make([]byte, 0, len(lower)-one-1)
	for i := one + 1; i < len(lower); i++ {
		v := charsetRev[lower[i]]
		if v < 0 {
			return "", nil, ErrNonCharsetChar(rune(lower[i]))
		}
		data = append(data, byte(v))
	}

	if polymod(append(hrpExpand(hrp), data...)) != 1 {
		expected := toChars(bech32Checksum(hrp, data[:len(data)-6]))
		return "", nil, ErrInvalidChecksum{
			Expected: expected,
			Actual:   lower[len(lower)-6:],
		}
	}

	return bech[:one], data[:len(data)-6], nil
}

// ConvertBits converts a byte slice where each byte encodes fromBits bits into
// a byte slice where each byte encodes toBits bits. fromBits and toBits must
// be between 1 and 8. This is used to regroup 8-bit bytes into the 5-bit
// values bech32 strings are built from, and back.
//
// When pad is true a final incomplete group is emitted zero-padded on its
// low-order bits. When pad is false any leftover bits must be zero and must
// amount to fewer than fromBits, otherwise the input carries padding that a
// well-formed encoder would never have produced and conversion fails.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}

	// Each output group consumes toBits of the input bit stream.
	maxSize := (len(data)*int(fromBits) + int(toBits) - 1) / int(toBits)
	regrouped := make([]byte, 0, maxSize)

	var acc uint32
	var bits uint8
	maxv := byte(1<<toBits - 1)
	for _, b := range data {
		if b>>fromBits != 0 {
			return nil, ErrInvalidDataByte(b)
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits)&maxv)
		}
	}

	if pad {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits))&maxv)
		}
	} else {
		if bits >= fromBits {
			return nil, ErrInvalidIncompleteGroup{}
		}
		if byte(acc<<(toBits-bits))&maxv != 0 {
			return nil, ErrInvalidIncompleteGroup{}
		}
	}

	return regrouped, nil
}
