package main

import (
	"os"

	"github.com/forgekit/forge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
