// Package main provides the delimio CLI for inspecting and converting
// delimited, optionally compressed files.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
