package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/pathlib/cmd/pathlib/commands"
	"github.com/macropower/pathlib/pkg/log"
)

func init() {
	log.SetLogFormat("text")
	log.SetLogLevel("warn")
}

const (
	cmdName = "pathlib"

	shortDesc = "The pathlib Command Line Interface (CLI)."
	longDesc  = `The pathlib Command Line Interface (CLI).

Pathlib provides structured path values with a pure path algebra and thin
filesystem pass-throughs. The CLI exposes the same operations for scripting:
inspecting path components, deriving new paths, resolving symlinks, and
performing simple filesystem actions.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
