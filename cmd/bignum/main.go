// Command bignum evaluates arbitrary-precision integer operations and
// aggregates over arrays of integers.
//
// Usage:
//
//	bignum calc pow 2 100
//	bignum --precision 5 calc div 1 7
//	bignum round 12.345 2
//	bignum array --aggregate sum --query 0:2 --query 1:3 4 8 15 16
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
)

var errorColor = color.New(color.FgRed, color.Bold)

// run executes the command line and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		//nolint:errcheck
		errorColor.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
