package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/stitch"
)

var disCmd = &cobra.Command{
	Use:   "dis <input.spv>",
	Short: "Disassemble a SPIR-V module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupOutput(cmd); err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		text, err := stitch.Disassemble(data)
		if err != nil {
			printError(cmd.ErrOrStderr(), args[0], err)
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	},
}
