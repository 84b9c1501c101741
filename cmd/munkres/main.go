package main

import (
	"os"

	"github.com/katalvlaran/munkres/cmd/munkres/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
