package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/stitch"
	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// linkConfig is the optional TOML configuration of the link command:
//
//	[link]
//	strip_names = true
//	manifest = true
//	jobs = 4
//	version = "1.4"
//
//	[entry_points]
//	vertex = "MainVS"
//	pixel = "MainPS"
type linkConfig struct {
	Link struct {
		StripNames bool   `toml:"strip_names"`
		Manifest   bool   `toml:"manifest"`
		Jobs       int    `toml:"jobs"`
		Version    string `toml:"version"`
	} `toml:"link"`
	EntryPoints map[string]string `toml:"entry_points"`
}

func loadConfig(path string) (linkConfig, error) {
	var cfg linkConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return linkConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Link.Jobs < 0 {
		return linkConfig{}, fmt.Errorf("%s: [link].jobs must not be negative", path)
	}
	return cfg, nil
}

// options converts the configuration into linker options.
func (c linkConfig) options() (stitch.Options, error) {
	opts := stitch.DefaultOptions()
	opts.StripNames = c.Link.StripNames
	if c.Link.Version != "" {
		v, err := parseVersion(c.Link.Version)
		if err != nil {
			return stitch.Options{}, err
		}
		opts.Version = v
	}
	for key, name := range c.EntryPoints {
		stage, ok := parseStage(key)
		if !ok {
			return stitch.Options{}, fmt.Errorf("[entry_points]: unknown stage %q", key)
		}
		opts.Processor.EntryPointNames[stage] = name
	}
	return opts, nil
}

func parseStage(s string) (ir.ShaderStage, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, stage := range []ir.ShaderStage{
		ir.StageVertex, ir.StageHull, ir.StageDomain, ir.StageGeometry, ir.StagePixel, ir.StageCompute,
	} {
		if key == strings.ToLower(stage.String()) || key == strings.ToLower(stage.Prefix()) {
			return stage, true
		}
	}
	return 0, false
}

func parseVersion(s string) (spirv.Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return spirv.Version{}, fmt.Errorf("invalid SPIR-V version %q (expected MAJOR.MINOR)", s)
	}
	ma, err := strconv.ParseUint(major, 10, 8)
	if err != nil {
		return spirv.Version{}, fmt.Errorf("invalid SPIR-V version %q: %w", s, err)
	}
	mi, err := strconv.ParseUint(minor, 10, 8)
	if err != nil {
		return spirv.Version{}, fmt.Errorf("invalid SPIR-V version %q: %w", s, err)
	}
	v := spirv.Version{Major: uint8(ma), Minor: uint8(mi)}
	if v.Major != 1 || v.Minor > 6 {
		return spirv.Version{}, fmt.Errorf("unsupported SPIR-V version %s", s)
	}
	return v, nil
}
