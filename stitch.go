// Package stitch links the shader stages of an unlinked SPIR-V module.
//
// The front end emits every stage of an effect into one module: stage
// entry points are plain functions, and the values stages hand each other
// are module-scope "stream" variables tagged with a vendor decoration.
// stitch turns that module into valid SPIR-V: it decides per stage which
// streams are inputs, outputs or internal state, declares the Input and
// Output interface variables, generates one wrapper entry point per stage,
// duplicates helpers shared between stages and removes everything no entry
// point reaches.
//
// Example usage:
//
//	linked, result, err := stitch.Link(unlinked, stitch.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ep := range result.EntryPoints {
//	    fmt.Println(ep.Stage, ep.Name)
//	}
//
// For finer control, decode the module and drive the iface package
// directly:
//
//	buf, _ := spirv.Decode(unlinked)
//	ctx := spirv.NewContext(buf)
//	result, err := iface.NewProcessor(iface.DefaultOptions()).Process(spirv.ScanSymbols(ctx), ctx)
package stitch

import (
	"fmt"

	"github.com/gogpu/stitch/iface"
	"github.com/gogpu/stitch/spirv"
)

// Options configures linking.
type Options struct {
	// Processor configures stage discovery.
	Processor iface.Options

	// StripNames removes OpName and OpMemberName debug names from the
	// linked module.
	StripNames bool

	// Version overrides the SPIR-V version of the output header. The zero
	// value keeps the input version.
	Version spirv.Version
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{Processor: iface.DefaultOptions()}
}

// Link stitches the stages of an unlinked module and returns the linked
// binary together with the per-stage layouts.
//
// The pipeline is:
//  1. Decode the binary into an editable buffer
//  2. Scan the module context and its symbols
//  3. Process the stage interfaces
//  4. Finalize (strip names, override the version)
//  5. Encode
func Link(binary []byte, opts Options) ([]byte, *iface.Result, error) {
	ctx, err := Load(binary)
	if err != nil {
		return nil, nil, err
	}
	result, err := LinkContext(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	out, err := ctx.Buffer().Encode()
	if err != nil {
		return nil, nil, fmt.Errorf("encode error: %w", err)
	}
	return out, result, nil
}

// Load decodes a binary module into a module context.
func Load(binary []byte) (*spirv.Context, error) {
	buf, err := spirv.Decode(binary)
	if err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return spirv.NewContext(buf), nil
}

// LinkContext stitches the module held by ctx in place. ctx is left
// untouched when linking fails.
func LinkContext(ctx *spirv.Context, opts Options) (*iface.Result, error) {
	buf := ctx.Buffer()
	version := buf.Version
	if opts.Version != (spirv.Version{}) {
		// The entry point interface lists depend on the target version.
		buf.Version = opts.Version
	}

	p := iface.NewProcessor(opts.Processor)
	result, err := p.Process(spirv.ScanSymbols(ctx), ctx)
	if err != nil {
		buf.Version = version
		return nil, fmt.Errorf("interface error: %w", err)
	}

	if opts.StripNames {
		stripNames(ctx.Buffer())
	}
	return result, nil
}

func stripNames(buf *spirv.Buffer) {
	for i := 0; i < buf.Len(); i++ {
		switch buf.At(i).Opcode {
		case spirv.OpName, spirv.OpMemberName:
			buf.Remove(i)
		}
	}
	buf.Compact()
}

// Disassemble renders a binary module as text.
func Disassemble(binary []byte) (string, error) {
	buf, err := spirv.Decode(binary)
	if err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	return spirv.Disassemble(buf), nil
}
