// Package main provides the CLI for the lintrc configuration toolkit.
package main

import (
	"os"

	"github.com/lintrc/lintrc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
