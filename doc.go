// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package segwitaddr implements encoding and decoding of segregated witness
addresses as defined in BIP 173.

A segwit address combines a coin-specific human-readable part with the
witness version and witness program of an output script, encoded with the
checksummed bech32 format provided by the bech32 subpackage. The set of
recognized human-readable parts follows SLIP-0173.
*/
package segwitaddr
