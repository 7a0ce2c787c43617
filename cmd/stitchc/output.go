package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/stitch/iface"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	stageColor   = color.New(color.FgCyan)
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func useColor(mode colorMode) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// setupOutput applies the persistent --color and --verbose flags.
func setupOutput(cmd *cobra.Command) error {
	value, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	mode, err := readColorMode(value)
	if err != nil {
		return err
	}
	color.NoColor = !useColor(mode)

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		iface.SetLogger(logger)
	}
	return nil
}

func printError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s %s: %v\n", errorColor.Sprint("error:"), path, err)
}

func printLinked(w io.Writer, input, output string, result *iface.Result) {
	stages := make([]string, len(result.EntryPoints))
	for i, ep := range result.EntryPoints {
		stages[i] = stageColor.Sprint(ep.Stage.String())
	}
	fmt.Fprintf(w, "%s %s -> %s [%s]\n", successColor.Sprint("linked"), input, output, strings.Join(stages, " "))
}
