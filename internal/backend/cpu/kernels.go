package cpu

import (
	"fmt"

	"github.com/born-ml/probability/internal/parallel"
	"github.com/born-ml/probability/internal/tensor"
)

// Float32 kernels compute in float64 and round once on store.

// unary applies f elementwise to a float tensor.
func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := cpu.newResult(op, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		mapUnary(result.AsFloat32(), x.AsFloat32(), f, cpu.parallel)
	case tensor.Float64:
		mapUnary(result.AsFloat64(), x.AsFloat64(), f, cpu.parallel)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}

// binary applies f elementwise to two float tensors with NumPy-style broadcasting.
func (cpu *CPUBackend) binary(op string, a, b *tensor.RawTensor, f func(x, y float64) float64) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	result := cpu.newResult(op, outShape, a.DType())

	var idx indexer
	if needsBroadcast {
		idx = indexer{
			broadcast: true,
			out:       outShape.ComputeStrides(),
			a:         broadcastStrides(a.Shape(), outShape),
			b:         broadcastStrides(b.Shape(), outShape),
		}
	}

	switch a.DType() {
	case tensor.Float32:
		mapBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), idx, f, cpu.parallel)
	case tensor.Float64:
		mapBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), idx, f, cpu.parallel)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, a.DType()))
	}

	return result
}

// indexer resolves operand positions for an output index.
type indexer struct {
	broadcast bool
	out, a, b []int
}

func (ix indexer) at(i int) (int, int) {
	if !ix.broadcast {
		return i, i
	}
	return flatIndex(i, ix.out, ix.a), flatIndex(i, ix.out, ix.b)
}

func mapUnary[T tensor.Float](dst, src []T, f func(float64) float64, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = T(f(float64(src[i])))
		}
	}, cfg)
}

func mapBinary[T tensor.Float](dst, a, b []T, idx indexer, f func(x, y float64) float64, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := idx.at(i)
			dst[i] = T(f(float64(a[ai]), float64(b[bi])))
		}
	}, cfg)
}
