package spirv

import "github.com/gogpu/stitch/ir"

// ScanSymbols builds a symbol table from the functions and module-scope
// variables of the context's buffer, named by their OpName. Functions that
// share a name form a method group resolving to the last definition.
func ScanSymbols(c *Context) *ir.SymbolTable {
	table := ir.NewSymbolTable()
	depth := 0
	for _, inst := range c.buf.insts {
		switch inst.Opcode {
		case OpFunction:
			depth++
			id := inst.ResultID()
			name := c.Name(id)
			if name == "" {
				continue
			}
			sym := ir.Symbol{Name: name, ID: id, Kind: ir.SymbolFunction}
			if t, ok := c.TypeOf(inst.Operand(3)); ok {
				sym.Type = t
			}
			table.Add(sym)
		case OpFunctionEnd:
			depth--
		case OpVariable:
			if depth > 0 || StorageClass(inst.Operand(2)) == StorageClassFunction {
				continue
			}
			id := inst.ResultID()
			name := c.Name(id)
			if name == "" {
				continue
			}
			sym := ir.Symbol{Name: name, ID: id, Kind: ir.SymbolVariable}
			if t, ok := c.TypeOf(inst.ResultType()); ok {
				sym.Type = t
			}
			table.Add(sym)
		}
	}
	return table
}
