// Package pathtui provides a terminal user interface for bulk path commands.
//
// This package implements a TUI layer for [github.com/macropower/pathlib/pkg/pathcmd],
// offering interactive visual feedback for long-running path operations. It
// uses the Bubble Tea framework to provide progress indicators, spinners, and
// formatted output.
package pathtui
