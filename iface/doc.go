// Package iface stitches the stage interfaces of an unlinked SPIR-V module.
//
// The input module describes one shader program whose stages communicate
// through implicit stream fields: Private variables tagged with the vendor
// StreamField decoration. Processing turns that module into one concrete
// entry point per active stage:
//
//   - the analyzer discovers stream fields, resources and constant buffers
//     and merges fields that share a semantic;
//   - stages are visited consumer-first (Pixel or Compute, then Geometry,
//     Domain, Hull and Vertex), each one computing which fields it reads,
//     writes and forwards;
//   - for every stage the wrapper generator synthesizes the INPUT, OUTPUT,
//     STREAMS and CONSTANTS structs, interface variables and a wrapper
//     function, duplicating shared helpers whose stream accesses differ per
//     stage;
//   - finally dead code elimination keeps only what the wrappers reach.
//
// Basic usage:
//
//	ctx := spirv.NewContext(buf)
//	p := iface.NewProcessor(iface.DefaultOptions())
//	result, err := p.Process(spirv.ScanSymbols(ctx), ctx)
//
// Processing is transactional: on error the context is left untouched.
package iface
