// Package cpu implements an eager CPU backend for distribution formulas.
package cpu

import (
	"fmt"

	"github.com/born-ml/probability/internal/parallel"
	"github.com/born-ml/probability/internal/tensor"
)

// CPUBackend evaluates tensor operations eagerly on the CPU.
// It holds no mutable state and is safe for concurrent use.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithParallel sets how elementwise kernels are split across goroutines.
func WithParallel(cfg parallel.Config) Option {
	return func(cpu *CPUBackend) {
		cpu.parallel = cfg
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		device:   tensor.CPU,
		parallel: parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// ShapeOf returns the dimensions of x as a 1-D Int32 tensor.
// A scalar yields an empty vector.
func (cpu *CPUBackend) ShapeOf(x *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	dims := make([]int32, len(shape))
	for i, d := range shape {
		dims[i] = int32(d) //nolint:gosec // dimensions are validated non-negative and small
	}
	result, err := tensor.FromInt32s(dims, tensor.Shape{len(dims)})
	if err != nil {
		panic(fmt.Sprintf("shapeOf: %v", err))
	}
	return result
}

// newResult allocates the output tensor for op.
func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
