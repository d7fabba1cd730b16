// Package main provides the entry point for the trailbook journal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/trailbookapp/trailbook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
