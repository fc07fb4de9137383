package ast

// DefineVariable defines `let x = e` (optionally `let mut x = e`).
type DefineVariable struct {
	Base
	Name    string
	Mutable bool
	Value   Node
}

func (*DefineVariable) Tag() Tag { return TagDefineVariable }

// ReassignVariable assigns to an already-defined local, parent-scope local,
// or attribute.
type ReassignVariable struct {
	Base
	Name  string
	Value Node
}

func (*ReassignVariable) Tag() Tag { return TagReassignVariable }

// TypeCast narrows or widens a value's static type without changing its
// runtime representation.
type TypeCast struct {
	Base
	Value      Node
	TargetType *TypeRef
}

func (*TypeCast) Tag() Tag { return TagTypeCast }
