// Package main provides the seqlab command-line tool.
package main

import (
	"fmt"
	"os"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd.Version = fmt.Sprintf("%s (%s) built %s", version, commit, date)
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
