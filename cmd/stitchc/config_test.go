package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stitch.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[link]
strip_names = true
manifest = true
jobs = 3
version = "1.4"

[entry_points]
vertex = "MainVS"
PS = "MainPS"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Link.Manifest || cfg.Link.Jobs != 3 {
		t.Errorf("link section = %+v", cfg.Link)
	}

	opts, err := cfg.options()
	if err != nil {
		t.Fatal(err)
	}
	if !opts.StripNames {
		t.Error("StripNames not applied")
	}
	if opts.Version != spirv.Version1_4 {
		t.Errorf("Version = %v, want 1.4", opts.Version)
	}
	if got := opts.Processor.EntryPointNames[ir.StageVertex]; got != "MainVS" {
		t.Errorf("vertex entry point = %q", got)
	}
	if got := opts.Processor.EntryPointNames[ir.StagePixel]; got != "MainPS" {
		t.Errorf("pixel entry point = %q", got)
	}
	if got := opts.Processor.EntryPointNames[ir.StageHull]; got != "HSMain" {
		t.Errorf("hull entry point = %q, want the default", got)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[link\n", "failed to parse TOML"},
		{"negative jobs", "[link]\njobs = -1\n", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestConfigOptions_Errors(t *testing.T) {
	var badStage linkConfig
	badStage.EntryPoints = map[string]string{"mesh": "MeshMain"}
	if _, err := badStage.options(); err == nil || !strings.Contains(err.Error(), "unknown stage") {
		t.Errorf("unknown stage error = %v", err)
	}

	var badVersion linkConfig
	badVersion.Link.Version = "2.0"
	if _, err := badVersion.options(); err == nil {
		t.Error("expected error for SPIR-V 2.0")
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		in   string
		want ir.ShaderStage
		ok   bool
	}{
		{"vertex", ir.StageVertex, true},
		{"VS", ir.StageVertex, true},
		{" Pixel ", ir.StagePixel, true},
		{"ps", ir.StagePixel, true},
		{"hull", ir.StageHull, true},
		{"ds", ir.StageDomain, true},
		{"geometry", ir.StageGeometry, true},
		{"cs", ir.StageCompute, true},
		{"fragment", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseStage(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseStage(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    spirv.Version
		wantErr bool
	}{
		{"1.0", spirv.Version1_0, false},
		{"1.3", spirv.Version1_3, false},
		{" 1.6 ", spirv.Version1_6, false},
		{"1.7", spirv.Version{}, true},
		{"2.0", spirv.Version{}, true},
		{"1", spirv.Version{}, true},
		{"1.x", spirv.Version{}, true},
		{"1.300", spirv.Version{}, true},
	}
	for _, tt := range tests {
		got, err := parseVersion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
