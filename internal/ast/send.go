package ast

import "github.com/inko-lang/corec/internal/types"

// KwArg is one keyword argument of a send, e.g. `name: value`.
type KwArg struct {
	Name  string
	Value Node
}

// Send is a method-call expression: `receiver.message(args, name: value)`.
// Receiver is nil when the call has no explicit receiver (it defaults to
// self, or to the enclosing module global when the static receiver type
// equals the module type).
type Send struct {
	Base
	Receiver Node
	Message  string
	Args     []Node
	KwArgs   []KwArg

	// Block holds the resolved callee signature once the type-inference
	// pass has run; nil beforehand.
	Block *types.BlockSignature
}

func (*Send) Tag() Tag { return TagSend }
