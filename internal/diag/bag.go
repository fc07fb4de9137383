package diag

// Bag is an append-only collection of diagnostics produced during a single
// compile. It is shared by reference across every pass; nothing is ever
// removed from it.
type Bag struct {
	entries []Diagnostic
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d Diagnostic) {
	b.entries = append(b.entries, d)
}

// Error records an error-severity diagnostic built from a wrapped sentinel.
func (b *Bag) Error(err error, loc Location) {
	b.Add(NewDiagnostic(err, loc))
}

// Warn records a warning at the given location.
func (b *Bag) Warn(message string, loc Location) {
	b.Add(Diagnostic{Severity: SeverityWarning, Message: message, Location: loc})
}

// HasErrors reports whether any diagnostic in the bag has error severity.
// The driver consults this after every pass and aborts TIR emission if true.
func (b *Bag) HasErrors() bool {
	for _, d := range b.entries {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns every diagnostic recorded so far, in the order they were added
// (source order, since passes run front-to-back over the AST).
func (b *Bag) All() []Diagnostic {
	return b.entries
}

// Len returns the number of diagnostics recorded so far.
func (b *Bag) Len() int {
	return len(b.entries)
}
