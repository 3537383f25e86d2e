// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/probability/internal/tensor"
)

// Type aliases for public API

// Float is a constraint for element types accepted by typed constructors.
// Supported types: float32, float64.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only device eager tensors live on.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2×3 matrix; Shape{} is a scalar.
type Shape = tensor.Shape

// StaticShape is a best-effort shape whose rank or dimensions may be unknown.
type StaticShape = tensor.StaticShape

// UnknownDim marks an unknown dimension inside a StaticShape.
const UnknownDim = tensor.UnknownDim

// RawTensor is the runtime-typed tensor every distribution operation consumes and returns.
type RawTensor = tensor.RawTensor

// Creation functions

// NewRaw creates a zero-filled tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T Float](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Scalar creates a zero-dimensional tensor.
//
// Example:
//
//	alpha := tensor.Scalar(3.0)          // float64
//	beta := tensor.Scalar(float32(2.0)) // float32
func Scalar[T Float](v T) *RawTensor {
	return tensor.Scalar(v)
}

// Vector creates a one-dimensional tensor.
func Vector[T Float](values ...T) *RawTensor {
	return tensor.Vector(values...)
}

// FromInt32s creates an Int32 tensor.
func FromInt32s(data []int32, shape Shape) (*RawTensor, error) {
	return tensor.FromInt32s(data, shape)
}

// ParseDataType maps "float32", "float64" or "int32" to a DataType.
func ParseDataType(name string) (DataType, bool) {
	return tensor.ParseDataType(name)
}

// Shape functions

// BroadcastShapes returns the NumPy-style broadcast of two shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// BroadcastStatic broadcasts two partially known shapes.
func BroadcastStatic(a, b StaticShape) (StaticShape, error) {
	return tensor.BroadcastStatic(a, b)
}

// KnownShape returns a fully defined StaticShape.
func KnownShape(s Shape) StaticShape {
	return tensor.KnownShape(s)
}

// PartialShape returns a StaticShape of known rank with possibly unknown dimensions.
func PartialShape(dims ...int) StaticShape {
	return tensor.PartialShape(dims...)
}

// UnknownShape returns a StaticShape of unknown rank.
func UnknownShape() StaticShape {
	return tensor.UnknownShape()
}
