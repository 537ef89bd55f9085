// Command ferrovm runs the built-in demo programs against the bytecode
// interpreter. See the package comment on internal/engine for the
// execution model.
package main

import (
	"fmt"
	"os"

	"github.com/ferrovm/ferrovm/cmd/ferrovm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
