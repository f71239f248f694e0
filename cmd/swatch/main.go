package main

import (
	"os"

	"github.com/opencode-ai/swatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
