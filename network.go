// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwitaddr

import (
	"fmt"
	"strings"
)

// Network identifies the coin network an address belongs to. Each network is
// bound to exactly one canonical human-readable part. The authoritative list
// of human-readable parts for bech32 addresses is maintained in SLIP-0173.
type Network int

const (
	// Bitcoin is the Bitcoin main network.
	Bitcoin Network = iota

	// Testnet is the Bitcoin test network.
	Testnet

	// Signet is the Bitcoin signet network.
	Signet

	// Regtest is the Bitcoin regression test network.
	Regtest

	// Bellcoin is the Bellcoin main network.
	Bellcoin
	// BellcoinTestnet is the Bellcoin test network.
	BellcoinTestnet
	// BitZeny is the BitZeny main network.
	BitZeny
	// BitZenyTestnet is the BitZeny test network.
	BitZenyTestnet
	// CranePay is the CranePay main network.
	CranePay
	// CranePayTestnet is the CranePay test network.
	CranePayTestnet
	// CryptoComChain is the Crypto.com Chain main network.
	CryptoComChain
	// CryptoComChainTestnet is the Crypto.com Chain test network.
	CryptoComChainTestnet
	// DigiByte is the DigiByte main network.
	DigiByte
	// DigiByteTestnet is the DigiByte test network.
	DigiByteTestnet
	// FujiCoin is the FujiCoin main network.
	FujiCoin
	// FujiCoinTestnet is the FujiCoin test network.
	FujiCoinTestnet
	// Groestlcoin is the Groestlcoin main network.
	Groestlcoin
	// GroestlcoinTestnet is the Groestlcoin test network.
	GroestlcoinTestnet
	// Handshake is the Handshake main network.
	Handshake
	// HandshakeTestnet is the Handshake test network.
	HandshakeTestnet
	// Litecoin is the Litecoin main network.
	Litecoin
	// LitecoinTestnet is the Litecoin test network.
	LitecoinTestnet
	// Monacoin is the Monacoin main network.
	Monacoin
	// MonacoinTestnet is the Monacoin test network.
	MonacoinTestnet
	// MonacoinRegtest is the Monacoin regression test network.
	MonacoinRegtest
	// Myriad is the Myriad main network.
	Myriad
	// MyriadTestnet is the Myriad test network.
	MyriadTestnet
	// Namecoin is the Namecoin main network.
	Namecoin
	// NamecoinTestnet is the Namecoin test network.
	NamecoinTestnet
	// Peercoin is the Peercoin main network.
	Peercoin
	// PeercoinTestnet is the Peercoin test network.
	PeercoinTestnet
	// PKT is the PKT main network.
	PKT
	// PKTTestnet is the PKT test network.
	PKTTestnet
	// QuantumResistantLedger is the Quantum Resistant Ledger main network.
	QuantumResistantLedger
	// QuantumResistantLedgerTestnet is the Quantum Resistant Ledger test
	// network.
	QuantumResistantLedgerTestnet
	// Ravencoin is the Ravencoin main network.
	Ravencoin
	// RavencoinTestnet is the Ravencoin test network.
	RavencoinTestnet
	// Susucoin is the Susucoin main network.
	Susucoin
	// SusucoinTestnet is the Susucoin test network.
	SusucoinTestnet
	// Unite is the Unit-e main network.
	Unite
	// UniteTestnet is the Unit-e test network.
	UniteTestnet
	// Vertcoin is the Vertcoin main network.
	Vertcoin
	// VertcoinTestnet is the Vertcoin test network.
	VertcoinTestnet
	// Viacoin is the Viacoin main network.
	Viacoin
	// ViacoinTestnet is the Viacoin test network.
	ViacoinTestnet
	// VIPSTARCOIN is the VIPSTARCOIN main network.
	VIPSTARCOIN
	// VIPSTARCOINTestnet is the VIPSTARCOIN test network.
	VIPSTARCOINTestnet
	// ZenProtocol is the Zen Protocol main network.
	ZenProtocol
	// ZenProtocolTestnet is the Zen Protocol test network.
	ZenProtocolTestnet
	// Zilliqa is the Zilliqa main network.
	Zilliqa
	// ZilliqaTestnet is the Zilliqa test network.
	ZilliqaTestnet
)

// networkHRPs maps each network to its canonical human-readable part. The
// table is fixed at init time and read-only afterwards, so lookups are safe
// for concurrent use. Adding a network is a matter of adding a constant above
// and an entry here.
var networkHRPs = map[Network]string{
	Bitcoin:                       "bc",
	Testnet:                       "tb",
	Signet:                        "sb",
	Regtest:                       "bcrt",
	Bellcoin:                      "bm",
	BellcoinTestnet:               "bt",
	BitZeny:                       "bz",
	BitZenyTestnet:                "tz",
	CranePay:                      "cp",
	CranePayTestnet:               "cpt",
	CryptoComChain:                "cro",
	CryptoComChainTestnet:         "tcro",
	DigiByte:                      "dgb",
	DigiByteTestnet:               "dgbt",
	FujiCoin:                      "fc",
	FujiCoinTestnet:               "tf",
	Groestlcoin:                   "grs",
	GroestlcoinTestnet:            "tgrs",
	Handshake:                     "hs",
	HandshakeTestnet:              "ts",
	Litecoin:                      "ltc",
	LitecoinTestnet:               "tltc",
	Monacoin:                      "mona",
	MonacoinTestnet:               "tmona",
	MonacoinRegtest:               "rmona",
	Myriad:                        "my",
	MyriadTestnet:                 "tm",
	Namecoin:                      "nc",
	NamecoinTestnet:               "tn",
	Peercoin:                      "xpc",
	PeercoinTestnet:               "tpc",
	PKT:                           "pkt",
	PKTTestnet:                    "tpk",
	QuantumResistantLedger:        "qrl",
	QuantumResistantLedgerTestnet: "tqrl",
	Ravencoin:                     "rc",
	RavencoinTestnet:              "tr",
	Susucoin:                      "susu",
	SusucoinTestnet:               "tutu",
	Unite:                         "ue",
	UniteTestnet:                  "tue",
	Vertcoin:                      "vtc",
	VertcoinTestnet:               "tvtc",
	Viacoin:                       "via",
	ViacoinTestnet:                "tvia",
	VIPSTARCOIN:                   "vips",
	VIPSTARCOINTestnet:            "tvips",
	ZenProtocol:                   "zen",
	ZenProtocolTestnet:            "tzn",
	Zilliqa:                       "zil",
	ZilliqaTestnet:                "tzil",
}

// hrpNetworks is the reverse of networkHRPs, keyed by lowercase hrp.
var hrpNetworks = make(map[string]Network, len(networkHRPs))

func init() {
	for n, hrp := range networkHRPs {
		hrpNetworks[hrp] = n
	}
}

// HRP returns the canonical human-readable part for the network. It returns
// the empty string for a Network value outside the defined set.
func (n Network) HRP() string {
	return networkHRPs[n]
}

// String returns the canonical human-readable part for the network, which
// uniquely identifies it.
func (n Network) String() string {
	if hrp, ok := networkHRPs[n]; ok {
		return hrp
	}
	return fmt.Sprintf("Network(%d)", int(n))
}

// NetworkForHRP returns the network bound to the given human-readable part.
// Matching is case-insensitive, mirroring the bech32 case rules. The second
// return value reports whether the hrp is known.
func NetworkForHRP(hrp string) (Network, bool) {
	n, ok := hrpNetworks[strings.ToLower(hrp)]
	return n, ok
}
