package main

import (
	"os"

	"github.com/asn2qif/asn2qif/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
