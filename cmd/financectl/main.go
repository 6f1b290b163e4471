// Package main is the entry point for the financectl operator CLI.
package main

import (
	"os"

	"github.com/SscSPs/pos_finance_manager/cmd/financectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
