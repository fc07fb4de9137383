package symbols

// Table is an ordered symbol table with an optional parent link. Tables form
// a tree rooted at a module's global scope; a code object's local table
// points at the local table of its enclosing code object.
//
// Invariants: slot indices are contiguous from zero; each name maps to one
// symbol per table (Define overwrites a redefined name, DefineUnique
// rejects it); iteration follows insertion order, which export and
// glob-import handling depend on.
type Table struct {
	parent  *Table
	order   []string
	symbols map[string]Symbol
	nextIdx int
}

// NewTable creates a table with the given parent (nil for a root table, such
// as a module's global scope).
func NewTable(parent *Table) *Table {
	return &Table{parent: parent, symbols: make(map[string]Symbol)}
}

// Parent returns the enclosing table, or nil at the root.
func (t *Table) Parent() *Table {
	return t.parent
}

// Define adds a symbol to the table. The slot index comes from a counter
// that advances on every call, regardless of whether the name is new, so
// indices stay contiguous and unique even across shadowing redefinitions.
// Redefining a name overwrites the name->symbol mapping (shadowing within
// one scope is permitted); the overwritten symbol remains
// reachable only through a reference taken before the redefinition.
func (t *Table) Define(name string, typ any, mutable bool) Symbol {
	sym := Symbol{Name: name, Type: typ, Index: t.nextIdx, Mutable: mutable}
	t.nextIdx++
	if _, exists := t.symbols[name]; !exists {
		t.order = append(t.order, name)
	}
	t.symbols[name] = sym
	return sym
}

// DefineUnique is like Define but reports whether name already existed in
// this table, for callers (such as global declaration collection) that must
// reject duplicates rather than silently shadow.
func (t *Table) DefineUnique(name string, typ any, mutable bool) (Symbol, bool) {
	if _, exists := t.symbols[name]; exists {
		return t.symbols[name], false
	}
	return t.Define(name, typ, mutable), true
}

// Lookup resolves name in this table only, returning the null sentinel if
// absent.
func (t *Table) Lookup(name string) Symbol {
	if sym, ok := t.symbols[name]; ok {
		return sym
	}
	return NullSymbol(name)
}

// LookupWithParent resolves name starting at this table and walking parent
// links. depth is -1 when found in the current table, 0 when found in the
// immediate parent, and one more for each further parent. A failed lookup
// returns depth -1 and
// the null symbol, so callers can test Symbol.IsNull without inspecting
// depth separately.
func (t *Table) LookupWithParent(name string) (int, Symbol) {
	depth := -1
	for table := t; table != nil; table = table.parent {
		if sym, ok := table.symbols[name]; ok {
			return depth, sym
		}
		depth++
	}
	return -1, NullSymbol(name)
}

// LookupInRoot walks only to the outermost table (the one with no parent)
// and resolves name there.
func (t *Table) LookupInRoot(name string) (int, Symbol) {
	depth := -1
	table := t
	for table.parent != nil {
		table = table.parent
		depth++
	}
	if sym, ok := table.symbols[name]; ok {
		return depth, sym
	}
	return -1, NullSymbol(name)
}

// Names returns every defined name in insertion order, used for exports and
// glob imports.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of symbols defined directly in this table.
func (t *Table) Len() int {
	return len(t.order)
}
