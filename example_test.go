// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwitaddr_test

import (
	"fmt"

	"github.com/btcsuite/segwitaddr"
)

// This example demonstrates encoding a witness program as a testnet address.
func ExampleNewWitnessProgram() {
	program := []byte{
		0x00, 0x00, 0x00, 0xc4, 0xa5, 0xca, 0xd4, 0x62,
		0x21, 0xb2, 0xa1, 0x87, 0x90, 0x5e, 0x52, 0x66,
		0x36, 0x2b, 0x99, 0xd5, 0xe9, 0x1c, 0x6c, 0xe2,
		0x4d, 0x16, 0x5d, 0xab, 0x93, 0xe8, 0x64, 0x33,
	}

	prog, err := segwitaddr.NewWitnessProgram(
		0, program, segwitaddr.Testnet,
	)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Address:", prog.ToAddress())

	// Output:
	// Address: tb1qqqqqp399et2xygdj5xreqhjjvcmzhxw4aywxecjdzew6hylgvsesrxh6hy
}

// This example demonstrates decoding an address back into its witness
// program.
func ExampleFromAddress() {
	prog, err := segwitaddr.FromAddress(
		"bc1zw508d6qejxtdg4y5r3zarvaryvg6kdaj",
	)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Network:", prog.Network())
	fmt.Println("Version:", prog.Version())
	fmt.Printf("Program: %x\n", prog.Program())

	// Output:
	// Network: bc
	// Version: 2
	// Program: 751e76e8199196d454941c45d1b3a323
}
