package ir

import (
	"errors"
	"fmt"
)

// ErrSymbolNotFound is returned by SymbolTable.Resolve for unknown names.
var ErrSymbolNotFound = errors.New("symbol not found")

// SymbolKind distinguishes functions from variables.
type SymbolKind uint8

const (
	SymbolFunction SymbolKind = iota
	SymbolVariable
)

// Symbol is a named module entity. A symbol with a non-empty Group is a
// method group (overrides across mixins); it resolves to its last member.
type Symbol struct {
	Name  string
	ID    uint32
	Kind  SymbolKind
	Type  Type
	Group []Symbol
}

// FunctionType returns the symbol signature when it is a function.
func (s Symbol) FunctionType() (FunctionType, bool) {
	ft, ok := s.Type.(FunctionType)
	return ft, ok
}

// SymbolTable maps names to module symbols.
type SymbolTable struct {
	symbols map[string]Symbol
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol)}
}

// Add registers a symbol. Adding a function under an existing function
// name turns the entry into a method group whose newest member wins.
func (t *SymbolTable) Add(s Symbol) {
	existing, ok := t.symbols[s.Name]
	if !ok || existing.Kind != SymbolFunction || s.Kind != SymbolFunction {
		t.symbols[s.Name] = s
		return
	}
	members := existing.Group
	if len(members) == 0 {
		members = []Symbol{existing}
	}
	members = append(members, s)
	t.symbols[s.Name] = Symbol{Name: s.Name, Kind: SymbolFunction, Group: members}
}

// Resolve returns the symbol called name.
func (t *SymbolTable) Resolve(name string) (Symbol, error) {
	s, ok := t.TryResolve(name)
	if !ok {
		return Symbol{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return s, nil
}

// TryResolve returns the symbol called name, if present.
func (t *SymbolTable) TryResolve(name string) (Symbol, bool) {
	s, ok := t.symbols[name]
	if !ok {
		return Symbol{}, false
	}
	if n := len(s.Group); n > 0 {
		return s.Group[n-1], true
	}
	return s, true
}

// Len returns the number of distinct names.
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}
