package main

import (
	"fmt"
	"os"

	"github.com/eng-elias-owis/mcp-setup-guide/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
