package main

import (
	"os"

	"github.com/clearpay-dev/clearpay/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
