package ast

// IntegerLit is an integer literal.
type IntegerLit struct {
	Base
	Value int64
}

func (*IntegerLit) Tag() Tag { return TagIntegerLit }

// FloatLit is a floating-point literal.
type FloatLit struct {
	Base
	Value float64
}

func (*FloatLit) Tag() Tag { return TagFloatLit }

// StringLit is a string literal.
type StringLit struct {
	Base
	Value string
}

func (*StringLit) Tag() Tag { return TagStringLit }

// SelfExpr is the `self` expression.
type SelfExpr struct {
	Base
}

func (*SelfExpr) Tag() Tag { return TagSelfExpr }

// ArrayLit is an array literal, e.g. [10, 20, 30].
type ArrayLit struct {
	Base
	Elements []Node
}

func (*ArrayLit) Tag() Tag { return TagArrayLit }

// HashMapEntry is one key/value pair of a hash-map literal.
type HashMapEntry struct {
	Key   Node
	Value Node
}

// HashMapLit is a hash-map literal, e.g. %['a': 10, 'b': 20]. The TIR
// generator desugars it to HashMap.new followed by one []= send per entry,
// rather than lowering it as an ordinary Send.
type HashMapLit struct {
	Base
	Entries []HashMapEntry
}

func (*HashMapLit) Tag() Tag { return TagHashMapLit }
