// spvdis - SPIR-V disassembler
// Prints a binary module as text, with the vendor stream decorations of
// unlinked modules spelled out.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/stitch/spirv"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: spvdis <file.spv>")
		return
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	buf, err := spirv.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(spirv.Disassemble(buf))
}
