// Package symbols implements the compiler's lexically nested symbol tables:
// ordered name-to-symbol maps with parent links, contiguous slot indices,
// and a null-symbol sentinel for lookup failure.
package symbols

// Symbol is a named binding: a local, argument, attribute, or global, with
// a type and a zero-based slot index within the table that defines it.
type Symbol struct {
	Name     string
	Type     any // concrete type is types.Type; kept as any to avoid an import cycle
	Index    int
	Mutable  bool
}

// Null is the distinguished sentinel returned by a failed lookup. Callers
// test for it with IsNull rather than branching on a nil/ok pair.
var Null = Symbol{Name: "", Index: -1}

// IsNull reports whether s is the null-symbol sentinel.
func (s Symbol) IsNull() bool {
	return s.Index < 0
}

// NullSymbol builds a null sentinel that still remembers the name that
// failed to resolve, for diagnostics that want to mention it.
func NullSymbol(name string) Symbol {
	return Symbol{Name: name, Index: -1}
}
