package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/stitch"
	"github.com/gogpu/stitch/iface"
)

var (
	linkOutput     string
	linkConfigPath string
	linkStripNames bool
	linkManifest   bool
	linkJobs       int
	linkVersion    string
)

func init() {
	linkCmd.Flags().StringVarP(&linkOutput, "output", "o", "", "output file (single input only)")
	linkCmd.Flags().StringVar(&linkConfigPath, "config", "", "TOML configuration file")
	linkCmd.Flags().BoolVar(&linkStripNames, "strip-names", false, "remove debug names")
	linkCmd.Flags().BoolVar(&linkManifest, "manifest", false, "write a msgpack manifest next to each output")
	linkCmd.Flags().IntVarP(&linkJobs, "jobs", "j", 0, "modules linked in parallel (0 = GOMAXPROCS)")
	linkCmd.Flags().StringVar(&linkVersion, "spirv-version", "", "output SPIR-V version (e.g. 1.4)")
}

var linkCmd = &cobra.Command{
	Use:   "link [options] <input.spv>...",
	Short: "Link the stages of unlinked modules",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLink,
}

// linkSettings is the merged configuration of one link invocation.
type linkSettings struct {
	opts     stitch.Options
	manifest bool
	jobs     int
	output   string
}

func resolveLinkSettings(cmd *cobra.Command, inputs int) (linkSettings, error) {
	var cfg linkConfig
	if linkConfigPath != "" {
		var err error
		if cfg, err = loadConfig(linkConfigPath); err != nil {
			return linkSettings{}, err
		}
	}

	// Flags override the file.
	flags := cmd.Flags()
	if flags.Changed("strip-names") {
		cfg.Link.StripNames = linkStripNames
	}
	if flags.Changed("manifest") {
		cfg.Link.Manifest = linkManifest
	}
	if flags.Changed("jobs") {
		cfg.Link.Jobs = linkJobs
	}
	if flags.Changed("spirv-version") {
		cfg.Link.Version = linkVersion
	}

	opts, err := cfg.options()
	if err != nil {
		return linkSettings{}, err
	}
	if linkOutput != "" && inputs != 1 {
		return linkSettings{}, fmt.Errorf("--output requires exactly one input, got %d", inputs)
	}
	return linkSettings{opts: opts, manifest: cfg.Link.Manifest, jobs: cfg.Link.Jobs, output: linkOutput}, nil
}

func runLink(cmd *cobra.Command, args []string) error {
	if err := setupOutput(cmd); err != nil {
		return err
	}
	settings, err := resolveLinkSettings(cmd, len(args))
	if err != nil {
		return err
	}

	jobs := settings.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))

	var (
		mu     sync.Mutex
		failed int
	)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, input := range args {
		input := input
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			output := settings.output
			if output == "" {
				output = defaultOutputPath(input)
			}
			result, err := linkFile(input, output, settings)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				printError(stderr, input, err)
				return nil
			}
			printLinked(stdout, input, output, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d modules failed to link", failed, len(args))
	}
	return nil
}

// linkFile links one module. Each call owns its module, so calls run in
// parallel without sharing state.
func linkFile(input, output string, settings linkSettings) (*iface.Result, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	linked, result, err := stitch.Link(data, settings.opts)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(output, linked, 0o644); err != nil {
		return nil, err
	}
	if settings.manifest {
		if err := writeManifest(output+".manifest", newManifest(input, result)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// defaultOutputPath turns effect.spv into effect.linked.spv.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".linked" + ext
}
