// SPDX-License-Identifier: MIT

// Command array2d is a small demonstration tool for the array2d container
// library. It constructs, fills, transposes and resizes containers and prints
// the results; it defines no behavior of its own.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
