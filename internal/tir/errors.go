package tir

import (
	"fmt"

	"github.com/inko-lang/corec/internal/diag"
)

func errUndefinedGlobal(name string) error {
	return fmt.Errorf("%w: %s", diag.ErrUndefinedGlobal, name)
}

func errUndefinedMethod(receiver, name string) error {
	return fmt.Errorf("%w: %s.%s", diag.ErrUndefinedMethod, receiver, name)
}

func errUnknownIntrinsic(name string) error {
	return fmt.Errorf("%w: %s", diag.ErrUnknownIntrinsic, name)
}
