// Package translate implements the AST→pattern translator (component G):
// a recursive descent over package ast's node types that dispatches on node
// shape and operator identity, calling into package peg's combinators to
// build the resulting Pattern.
package translate

import (
	"github.com/dolthub/swiss"
	"github.com/mna/pegc/lang/peg"
)

// SymbolTable maps rule names to already-compiled patterns. It is built up
// by whoever is compiling a whole grammar (one rule at a time, in
// dependency order) and handed to Translate read-only: the translator only
// ever looks a name up, never mutates the table it was given. Backed by
// swiss.Map for the same open-addressing performance profile as the
// embedding VM's own global/local variable maps.
type SymbolTable struct {
	m *swiss.Map[string, peg.Pattern]
}

// NewSymbolTable returns a table with initial capacity for at least size
// rules.
func NewSymbolTable(size int) *SymbolTable {
	return &SymbolTable{m: swiss.NewMap[string, peg.Pattern](uint32(size))}
}

// Define records the compiled pattern for rule name. Callers build a table
// incrementally, one rule at a time, typically in the order a grammar's
// rules can be resolved (non-recursive rules first); Translate itself never
// calls Define.
func (st *SymbolTable) Define(name string, p peg.Pattern) {
	st.m.Put(name, p)
}

// Lookup returns the compiled pattern for name, if any.
func (st *SymbolTable) Lookup(name string) (peg.Pattern, bool) {
	return st.m.Get(name)
}

// Len returns the number of rules currently defined.
func (st *SymbolTable) Len() int {
	return int(st.m.Count())
}
