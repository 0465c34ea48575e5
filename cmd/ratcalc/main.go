// SPDX-License-Identifier: MIT

// Command ratcalc is a calculator for exact and approximate rationals,
// matrices over them and weighted random draws.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ratla/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
