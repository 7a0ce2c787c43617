package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/stitch"
	"github.com/gogpu/stitch/iface"
	"github.com/gogpu/stitch/ir"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"effect.spv", "effect.linked.spv"},
		{"dir/effect.spv", "dir/effect.linked.spv"},
		{"effect", "effect.linked"},
		{"a.b.spv", "a.b.linked.spv"},
	}
	for _, tt := range tests {
		if got := defaultOutputPath(tt.in); got != tt.want {
			t.Errorf("defaultOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    colorMode
		wantErr bool
	}{
		{"", colorAuto, false},
		{"auto", colorAuto, false},
		{"ON", colorOn, false},
		{" off ", colorOff, false},
		{"always", "", true},
	}
	for _, tt := range tests {
		got, err := readColorMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("readColorMode(%q) = %q, %v", tt.in, got, err)
		}
	}
	if !useColor(colorOn) || useColor(colorOff) {
		t.Error("explicit color modes should not consult the terminal")
	}
}

func TestLinkFile_RejectsInvalidModule(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.spv")
	if err := os.WriteFile(input, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0o644); err != nil {
		t.Fatal(err)
	}
	output := defaultOutputPath(input)

	_, err := linkFile(input, output, linkSettings{opts: stitch.DefaultOptions()})
	if err == nil || !strings.Contains(err.Error(), "decode error") {
		t.Fatalf("error = %v, want a decode error", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no output should be written for a failed link")
	}
}

func TestManifest(t *testing.T) {
	result := &iface.Result{
		EntryPoints: []iface.EntryPoint{
			{Name: "PSMain", ID: 12, Stage: ir.StagePixel},
			{Name: "VSMain", ID: 30, Stage: ir.StageVertex},
		},
		InputAttributes: []iface.InputAttribute{{Location: 0, SemanticName: "POSITION", SemanticIndex: 0}},
		DCE:             iface.DCEReport{Functions: 1, Variables: 2},
	}
	path := filepath.Join(t.TempDir(), "effect.linked.spv.manifest")
	if err := writeManifest(path, newManifest("effect.spv", result)); err != nil {
		t.Fatal(err)
	}
	m, err := readManifest(path)
	if err != nil {
		t.Fatal(err)
	}

	if m.Source != "effect.spv" {
		t.Errorf("Source = %q", m.Source)
	}
	if len(m.EntryPoints) != 2 || m.EntryPoints[0].Stage != "Pixel" || m.EntryPoints[1].ID != 30 {
		t.Errorf("EntryPoints = %+v", m.EntryPoints)
	}
	if len(m.InputAttributes) != 1 || m.InputAttributes[0].SemanticName != "POSITION" {
		t.Errorf("InputAttributes = %+v", m.InputAttributes)
	}
	if m.Removed.Functions != 1 || m.Removed.Variables != 2 {
		t.Errorf("Removed = %+v", m.Removed)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}
}

func TestPrintLinked(t *testing.T) {
	var out bytes.Buffer
	printLinked(&out, "in.spv", "out.spv", &iface.Result{
		EntryPoints: []iface.EntryPoint{{Stage: ir.StagePixel}, {Stage: ir.StageVertex}},
	})
	for _, want := range []string{"in.spv -> out.spv", "Pixel", "Vertex"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q missing %q", out.String(), want)
		}
	}
}
