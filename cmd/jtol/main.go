package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kzachmann/VSJumpToLine/internal/engine"
	"github.com/kzachmann/VSJumpToLine/internal/version"
)

// Exit codes, stable for callers that script around the tool.
const (
	exitFailOption   = 1
	exitFailNotExist = 2
	exitFailDecode   = 3
)

var rootCmd = &cobra.Command{
	Use:   "jtol",
	Short: "Convert build tool output into Visual Studio jump-to-line notation",
	Long: `jtol converts the output of tools such as GCC and Doxygen into a Visual
Studio readable output format. The converted lines can be used in the
output window of Visual Studio to jump to the corresponding line in the
editor.`,
}

// main registers the subcommands and persistent flags, then executes
// the root command, mapping failures onto the documented exit codes.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, engine.ErrDecode):
		return exitFailDecode
	case errors.Is(err, fs.ErrNotExist):
		return exitFailNotExist
	}
	return exitFailOption
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
