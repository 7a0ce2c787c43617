package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Version components, overridable at build time via -ldflags.
var (
	versionMajor = "0"
	versionMinor = "1"
	versionPatch = "0"
	version      = versionMajor + "." + versionMinor + "." + versionPatch + "-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stitchc version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupOutput(cmd); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "stitchc %s.%s.%s-dev\n",
			versionMajorColor.Sprint(versionMajor),
			versionMinorColor.Sprint(versionMinor),
			versionPatchColor.Sprint(versionPatch))
		return err
	},
}
