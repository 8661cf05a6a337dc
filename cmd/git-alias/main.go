// Package main is the entry point for the git-alias CLI.
package main

import (
	"os"

	"github.com/thoreinstein/git-alias/cmd/git-alias/commands"
)

func main() {
	os.Exit(commands.Execute())
}
