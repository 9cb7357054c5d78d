// SPDX-License-Identifier: MIT

// Command lvkey compiles a legend config file into its "set key" line.
//
//	lvkey legend.toml >> figure.gp
//	lvkey --hide
//	lvkey --title 'Series' --box legend.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvkey:", err)
		os.Exit(1)
	}
}
