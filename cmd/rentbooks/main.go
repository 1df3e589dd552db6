package main

import (
	"os"

	"github.com/rentbooks-dev/rentbooks/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
