// Package main provides the gamma CLI for evaluating Gamma distributions.
package main

import (
	"os"

	"github.com/born-ml/probability/cmd/gamma/commands"
)

const version = "v0.1.0"

func main() {
	os.Exit(commands.Execute(version, os.Args[1:]))
}
