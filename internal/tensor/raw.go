package tensor

import (
	"fmt"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level tensor representation.
// Exactly one of the typed storage slices is populated, selected by dtype.
//
// Backends write into a RawTensor only while producing it; once returned
// from an operation it is treated as immutable.
type RawTensor struct {
	shape  Shape    // Tensor dimensions
	stride []int    // Memory strides (row-major)
	dtype  DataType // Runtime type information
	device Device   // Compute device

	f32 []float32
	f64 []float64
	i32 []int32
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	r := &RawTensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}

	n := shape.NumElements()
	switch dtype {
	case Float32:
		r.f32 = make([]float32, n)
	case Float64:
		r.f64 = make([]float64, n)
	case Int32:
		r.i32 = make([]int32, n)
	default:
		return nil, fmt.Errorf("unsupported dtype %s", dtype)
	}
	return r, nil
}

// FromSlice creates a CPU tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), CPU)
	if err != nil {
		return nil, err
	}

	switch dst := raw.storage().(type) {
	case []float32:
		for i, v := range data {
			dst[i] = float32(v)
		}
	case []float64:
		for i, v := range data {
			dst[i] = float64(v)
		}
	}
	return raw, nil
}

// Scalar creates a zero-dimensional CPU tensor holding v.
func Scalar[T Float](v T) *RawTensor {
	raw, err := FromSlice([]T{v}, Shape{})
	if err != nil {
		panic(fmt.Sprintf("scalar: %v", err))
	}
	return raw
}

// Vector creates a one-dimensional CPU tensor from values.
func Vector[T Float](values ...T) *RawTensor {
	raw, err := FromSlice(values, Shape{len(values)})
	if err != nil {
		panic(fmt.Sprintf("vector: %v", err))
	}
	return raw
}

// FromInt32s creates an Int32 CPU tensor; used for shape vectors.
func FromInt32s(data []int32, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, Int32, CPU)
	if err != nil {
		return nil, err
	}
	copy(raw.i32, data)
	return raw, nil
}

// Shape returns a copy of the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape.Clone()
}

// StaticShape returns the shape as a fully defined StaticShape.
// Eagerly evaluated tensors always know their shape.
func (r *RawTensor) StaticShape() StaticShape {
	return KnownShape(r.shape)
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return append([]int(nil), r.stride...)
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// AsFloat32 returns the backing []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	return r.f32
}

// AsFloat64 returns the backing []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	return r.f64
}

// AsInt32 returns the backing []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	return r.i32
}

// At returns element i (row-major) widened to float64.
func (r *RawTensor) At(i int) float64 {
	switch r.dtype {
	case Float32:
		return float64(r.f32[i])
	case Float64:
		return r.f64[i]
	case Int32:
		return float64(r.i32[i])
	default:
		panic(fmt.Sprintf("at: unsupported dtype %s", r.dtype))
	}
}

// Float64s returns a freshly allocated copy of the elements as float64.
func (r *RawTensor) Float64s() []float64 {
	out := make([]float64, r.NumElements())
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// Clone returns a deep copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		f32:    append([]float32(nil), r.f32...),
		f64:    append([]float64(nil), r.f64...),
		i32:    append([]int32(nil), r.i32...),
	}
}

// String renders dtype, shape and values, e.g. "float64(2)[1.5 1.3333333333333333]".
func (r *RawTensor) String() string {
	return fmt.Sprintf("%s%v%v", r.dtype, r.shape, r.storage())
}

func (r *RawTensor) storage() any {
	switch r.dtype {
	case Float32:
		return r.f32
	case Float64:
		return r.f64
	default:
		return r.i32
	}
}
