// Package main is the entry point for the reviewnorm CLI.
package main

import (
	"os"

	"github.com/jmylchreest/reviewnorm/cmd/reviewnorm/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
