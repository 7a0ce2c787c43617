package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/stitch/iface"
)

// manifest records what linking produced, for engines that bind vertex
// buffers and pick entry points without parsing SPIR-V.
type manifest struct {
	Source          string              `msgpack:"source"`
	EntryPoints     []manifestEntry     `msgpack:"entry_points"`
	InputAttributes []manifestAttribute `msgpack:"input_attributes"`
	Removed         manifestRemoved     `msgpack:"removed"`
}

type manifestEntry struct {
	Name  string `msgpack:"name"`
	Stage string `msgpack:"stage"`
	ID    uint32 `msgpack:"id"`
}

type manifestAttribute struct {
	Location      int    `msgpack:"location"`
	SemanticName  string `msgpack:"semantic_name"`
	SemanticIndex int    `msgpack:"semantic_index"`
}

type manifestRemoved struct {
	Functions int `msgpack:"functions"`
	Variables int `msgpack:"variables"`
	Types     int `msgpack:"types"`
	Constants int `msgpack:"constants"`
}

func newManifest(source string, r *iface.Result) manifest {
	m := manifest{
		Source: source,
		Removed: manifestRemoved{
			Functions: r.DCE.Functions,
			Variables: r.DCE.Variables,
			Types:     r.DCE.Types,
			Constants: r.DCE.Constants,
		},
	}
	for _, ep := range r.EntryPoints {
		m.EntryPoints = append(m.EntryPoints, manifestEntry{Name: ep.Name, Stage: ep.Stage.String(), ID: ep.ID})
	}
	for _, a := range r.InputAttributes {
		m.InputAttributes = append(m.InputAttributes, manifestAttribute(a))
	}
	return m
}

// writeManifest writes m next to the linked module through a temporary
// file, replacing any previous manifest atomically.
func writeManifest(path string, m manifest) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "manifest-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(m); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

func readManifest(path string) (manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return manifest{}, err
	}
	defer f.Close()

	var m manifest
	if err := msgpack.NewDecoder(f).Decode(&m); err != nil {
		return manifest{}, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return m, nil
}
