// Package check provides eager precondition assertions over tensors.
//
// Every assertion runs synchronously and returns a typed error describing the
// first violation it finds. Callers surface these errors unchanged.
package check

import (
	"errors"
	"fmt"

	"github.com/born-ml/probability/internal/tensor"
)

// Sentinel errors for errors.Is matching.
var (
	ErrDomain       = errors.New("value outside domain")
	ErrTypeMismatch = errors.New("dtype mismatch")
	ErrShape        = errors.New("incompatible shapes")
)

// DomainError reports an element that is required to be strictly positive but is not.
type DomainError struct {
	Op    string  // Operation that performed the check, e.g. "Gamma.LogPDF".
	Name  string  // Operand name, e.g. "x".
	Index int     // Flat row-major index of the first offending element.
	Value float64 // Offending value widened to float64.
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s must be positive, got %v at index %d", e.Op, e.Name, e.Value, e.Index)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// TypeMismatchError reports an operand whose dtype is not the one required.
type TypeMismatchError struct {
	Op   string
	Name string
	Got  tensor.DataType
	Want tensor.DataType // Equal to Got when the operand is simply not floating point.
}

func (e *TypeMismatchError) Error() string {
	if e.Got == e.Want {
		return fmt.Sprintf("%s: %s must be a floating-point tensor, got %s", e.Op, e.Name, e.Got)
	}
	return fmt.Sprintf("%s: %s has dtype %s, want %s", e.Op, e.Name, e.Got, e.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ShapeError reports two shapes that cannot be broadcast together.
type ShapeError struct {
	Op   string
	A, B tensor.Shape
	Err  error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Is reports whether target is ErrShape.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// Unwrap returns the underlying broadcasting error.
func (e *ShapeError) Unwrap() error {
	return e.Err
}
