// Tokenscope - token savings measurement for browser page snapshots
package main

import (
	"os"

	"github.com/tokenscope/tokenscope/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
