// SPDX-License-Identifier: MIT

// Command cld analyses causal-loop descriptions: it lists feedback loops,
// groups nodes by source document, reformats descriptions, generates
// synthetic ones and runs the numeric simulation.
//
// Usage:
//
//	cld loops model.cld other.cld
//	cld simulate model.cld --config sim.yaml --steps 50 --bins 10
//	cld groups model.cld other.cld
//	cat model.cld | cld fmt
//	cld generate ring 4 --opposite-prob 0.5 | cld loops
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error:"), err)
		os.Exit(1)
	}
}
