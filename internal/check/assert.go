package check

import (
	"github.com/born-ml/probability/internal/tensor"
)

// Operand pairs a tensor with the name used in error messages.
type Operand struct {
	Name   string
	Tensor *tensor.RawTensor
}

// Named builds an Operand.
func Named(name string, t *tensor.RawTensor) Operand {
	return Operand{Name: name, Tensor: t}
}

// AssertPositive returns a *DomainError for the first element of t that is
// not strictly positive. NaN counts as a violation.
func AssertPositive(op string, x Operand) error {
	n := x.Tensor.NumElements()
	for i := 0; i < n; i++ {
		v := x.Tensor.At(i)
		if v > 0 {
			continue
		}
		return &DomainError{Op: op, Name: x.Name, Index: i, Value: v}
	}
	return nil
}

// AssertSameFloatDType checks that every operand is floating point and that all
// share one dtype.
//
// When want is nil the first operand fixes the expected dtype. The returned
// dtype is the common one.
func AssertSameFloatDType(op string, want *tensor.DataType, operands ...Operand) (tensor.DataType, error) {
	var expected tensor.DataType
	haveExpected := false
	if want != nil {
		expected, haveExpected = *want, true
	}

	for _, o := range operands {
		got := o.Tensor.DType()
		if !got.IsFloat() {
			return got, &TypeMismatchError{Op: op, Name: o.Name, Got: got, Want: got}
		}
		if !haveExpected {
			expected, haveExpected = got, true
			continue
		}
		if got != expected {
			return expected, &TypeMismatchError{Op: op, Name: o.Name, Got: got, Want: expected}
		}
	}
	return expected, nil
}

// AssertBroadcastable returns the broadcast shape of a and b, or a *ShapeError.
func AssertBroadcastable(op string, a, b tensor.Shape) (tensor.Shape, error) {
	out, _, err := tensor.BroadcastShapes(a, b)
	if err != nil {
		return nil, &ShapeError{Op: op, A: a.Clone(), B: b.Clone(), Err: err}
	}
	return out, nil
}
