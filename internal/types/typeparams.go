package types

// TypeParameterTable is an ordered name->bound-type map. Generic prototypes
// and block signatures declare only their parameter names; a fresh table is
// seeded per call site in a MessageContext.
type TypeParameterTable struct {
	order  []string
	bounds map[string]Type
}

// NewTypeParameterTable creates an empty table.
func NewTypeParameterTable() *TypeParameterTable {
	return &TypeParameterTable{bounds: make(map[string]Type)}
}

// Set binds name to typ, appending name to the iteration order the first
// time it is bound.
func (t *TypeParameterTable) Set(name string, typ Type) {
	if _, exists := t.bounds[name]; !exists {
		t.order = append(t.order, name)
	}
	t.bounds[name] = typ
}

// Lookup returns the bound type for name, or nil and false if unbound.
func (t *TypeParameterTable) Lookup(name string) (Type, bool) {
	typ, ok := t.bounds[name]
	return typ, ok
}

// Merge imports every binding from parent that this table does not already
// define, without overwriting bindings this table has set itself. This is
// how a block's own type parameters stack on top of its receiver's already
// -bound ones in MessageContext.
func (t *TypeParameterTable) Merge(parent *TypeParameterTable) {
	if parent == nil {
		return
	}
	for _, name := range parent.order {
		if _, exists := t.bounds[name]; !exists {
			t.Set(name, parent.bounds[name])
		}
	}
}

// Names returns the bound parameter names in binding order.
func (t *TypeParameterTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
