// Package main is the entrypoint for the students roster CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/students/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
