// Command stitchc links the shader stages of unlinked SPIR-V modules.
//
// Usage:
//
//	stitchc link [options] <input.spv>...
//	stitchc dis <input.spv>
//	stitchc version
//
// Examples:
//
//	stitchc link effect.spv                     # Writes effect.linked.spv
//	stitchc link -o out.spv effect.spv          # Explicit output path
//	stitchc link --config stitch.toml *.spv     # Options from a config file
//	stitchc link --manifest effect.spv          # Also writes effect.linked.spv.manifest
//	stitchc dis effect.linked.spv               # Print the module as text
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:          "stitchc",
	Short:        "Shader stage linker",
	Long:         `stitchc stitches the stages of unlinked SPIR-V modules into valid entry points`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(disCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log processing details")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
