package diag

import "errors"

// Sentinel errors for the compiler's distinct error kinds. Passes
// wrap these with fmt.Errorf("%w: ...", ErrX, ...) at each raise site and
// translate the wrapped error into a Diagnostic with the matching Code via
// NewDiagnostic.
var (
	ErrUnknownModule         = errors.New("unknown module")
	ErrImportCycle           = errors.New("import cycle")
	ErrUndefinedGlobal       = errors.New("undefined global")
	ErrUndefinedMethod       = errors.New("undefined method")
	ErrArityMismatch         = errors.New("arity mismatch")
	ErrUnknownKeyword        = errors.New("unknown keyword argument")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrMissingImplementation = errors.New("missing trait implementation")
	ErrUnknownIntrinsic      = errors.New("unknown intrinsic")
	ErrDuplicateSymbol       = errors.New("duplicate symbol")
)

var codeForError = map[error]Code{
	ErrUnknownModule:         CodeUnknownModule,
	ErrImportCycle:           CodeImportCycle,
	ErrUndefinedGlobal:       CodeUndefinedGlobal,
	ErrUndefinedMethod:       CodeUndefinedMethod,
	ErrArityMismatch:         CodeArityMismatch,
	ErrUnknownKeyword:        CodeUnknownKeyword,
	ErrTypeMismatch:          CodeTypeMismatch,
	ErrMissingImplementation: CodeMissingImplementation,
	ErrUnknownIntrinsic:      CodeUnknownIntrinsic,
	ErrDuplicateSymbol:       CodeDuplicateSymbol,
}

// NewDiagnostic builds an error-severity Diagnostic from a wrapped sentinel
// error. It walks the well-known sentinels with errors.Is so call sites can
// wrap freely (fmt.Errorf("%w: field %q", ErrTypeMismatch, name)) without
// hand-maintaining the Code themselves.
func NewDiagnostic(err error, loc Location) Diagnostic {
	code := Code("")
	for sentinel, c := range codeForError {
		if errors.Is(err, sentinel) {
			code = c
			break
		}
	}
	return Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  err.Error(),
		Location: loc,
	}
}
