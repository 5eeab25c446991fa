// Package internalerr provides the error-wrapping helpers shared by the
// sidh751 packages.
package internalerr

import (
	"errors"
	"fmt"
)

const (
	errParams = "parameter error"
	errState  = "precondition error"
)

// ParameterError wraps err to indicate a malformed or out-of-range input,
// e.g. a byte slice of the wrong length.
func ParameterError(err string) error {
	return NewError(errParams, err)
}

// StateError wraps err to indicate that an internal invariant the caller
// is responsible for (e.g. scalar range, key reuse) was violated.
func StateError(err string) error {
	return NewError(errState, err)
}

// NewError returns an error reading "prefix : err". The message err is
// wrapped as its own error value, which errors.Unwrap returns; that value is
// created fresh on each call, so no exported error matches it via errors.Is.
func NewError(prefix, err string) error {
	return fmt.Errorf("%s : %w", prefix, errors.New(err))
}
