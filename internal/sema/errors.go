package sema

import (
	"fmt"

	"github.com/inko-lang/corec/internal/diag"
)

func errImportCycle(qname string) error {
	return fmt.Errorf("%w: %s", diag.ErrImportCycle, qname)
}

func errUnknownModule(qname string) error {
	return fmt.Errorf("%w: %s", diag.ErrUnknownModule, qname)
}

func errUndefinedGlobal(name string) error {
	return fmt.Errorf("%w: %s", diag.ErrUndefinedGlobal, name)
}

func errDuplicateSymbol(name string) error {
	return fmt.Errorf("%w: %s", diag.ErrDuplicateSymbol, name)
}

func errUndefinedMethod(receiver, name string) error {
	return fmt.Errorf("%w: %s.%s", diag.ErrUndefinedMethod, receiver, name)
}

func errArityMismatch(name string, got, min, max int) error {
	return fmt.Errorf("%w: %s expects %d-%d arguments, got %d", diag.ErrArityMismatch, name, min, max, got)
}

func errUnknownKeyword(name, kw string) error {
	return fmt.Errorf("%w: %s has no keyword argument %q", diag.ErrUnknownKeyword, name, kw)
}

func errMissingImplementation(trait, obj, method string) error {
	return fmt.Errorf("%w: %s does not implement %s.%s", diag.ErrMissingImplementation, obj, trait, method)
}
