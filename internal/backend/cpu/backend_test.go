package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/probability/internal/parallel"
	"github.com/born-ml/probability/internal/tensor"
)

const epsilon = 1e-9

func mustFromSlice(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice(data, shape)
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	return raw
}

func assertClose(t *testing.T, expected, actual []float64, tol float64) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("Expected %d elements, got %d", len(expected), len(actual))
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > tol {
			t.Errorf("element %d: expected %v, got %v", i, expected[i], actual[i])
		}
	}
}

func TestBackendMetadata(t *testing.T) {
	backend := New()
	if backend.Name() != "CPU" {
		t.Errorf("Name() = %q, want CPU", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", backend.Device())
	}
}

func TestBinaryOps(t *testing.T) {
	backend := New()

	tests := []struct {
		name     string
		op       func(a, b *tensor.RawTensor) *tensor.RawTensor
		a, b     []float64
		aShape   tensor.Shape
		bShape   tensor.Shape
		expected []float64
		outShape tensor.Shape
	}{
		{"add same shape", backend.Add, []float64{1, 2}, []float64{3, 4}, tensor.Shape{2}, tensor.Shape{2}, []float64{4, 6}, tensor.Shape{2}},
		{"sub scalar rhs", backend.Sub, []float64{5, 7}, []float64{2}, tensor.Shape{2}, tensor.Shape{}, []float64{3, 5}, tensor.Shape{2}},
		{"mul scalar lhs", backend.Mul, []float64{3}, []float64{1, 2, 3}, tensor.Shape{}, tensor.Shape{3}, []float64{3, 6, 9}, tensor.Shape{3}},
		{"div scalars", backend.Div, []float64{3}, []float64{2}, tensor.Shape{}, tensor.Shape{}, []float64{1.5}, tensor.Shape{}},
		{
			"add column row", backend.Add,
			[]float64{10, 20}, []float64{1, 2, 3},
			tensor.Shape{2, 1}, tensor.Shape{3},
			[]float64{11, 12, 13, 21, 22, 23}, tensor.Shape{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustFromSlice(t, tt.a, tt.aShape)
			b := mustFromSlice(t, tt.b, tt.bShape)

			result := tt.op(a, b)

			if !result.Shape().Equal(tt.outShape) {
				t.Errorf("Expected shape %v, got %v", tt.outShape, result.Shape())
			}
			assertClose(t, tt.expected, result.AsFloat64(), epsilon)
		})
	}
}

func TestBinaryOpsDoNotMutateInputs(t *testing.T) {
	backend := New()
	a := tensor.Vector(1.0, 2.0)
	b := tensor.Vector(3.0, 4.0)

	_ = backend.Add(a, b)

	assertClose(t, []float64{1, 2}, a.AsFloat64(), 0)
	assertClose(t, []float64{3, 4}, b.AsFloat64(), 0)
}

func TestBinaryPanicsOnMismatch(t *testing.T) {
	backend := New()

	t.Run("dtype", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for dtype mismatch")
			}
		}()
		backend.Add(tensor.Scalar(1.0), tensor.Scalar(float32(1)))
	})

	t.Run("shape", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for incompatible shapes")
			}
		}()
		backend.Add(tensor.Vector(1.0, 2.0), tensor.Vector(1.0, 2.0, 3.0))
	})
}

func TestScalarOps(t *testing.T) {
	backend := New()
	x := tensor.Vector(1.0, 2.0, 4.0)

	assertClose(t, []float64{3, 4, 6}, backend.AddScalar(x, 2).AsFloat64(), epsilon)
	assertClose(t, []float64{0, 1, 3}, backend.SubScalar(x, 1).AsFloat64(), epsilon)
	assertClose(t, []float64{0.5, 1, 2}, backend.MulScalar(x, 0.5).AsFloat64(), epsilon)
	assertClose(t, []float64{0, -1, -3}, backend.RSubScalar(x, 1).AsFloat64(), epsilon)
}

func TestFloat32Kernels(t *testing.T) {
	backend := New()
	a := tensor.Vector[float32](3, 4)
	b := tensor.Vector[float32](2, 3)

	result := backend.Div(a, b)
	if result.DType() != tensor.Float32 {
		t.Fatalf("Expected float32 result, got %s", result.DType())
	}
	got := result.AsFloat32()
	if math.Abs(float64(got[0])-1.5) > 1e-6 || math.Abs(float64(got[1])-4.0/3.0) > 1e-6 {
		t.Errorf("div = %v", got)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	n := 10000
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = 0.5 + float64(i)/100
		b[i] = 1 + float64(i%7)
	}
	at := mustFromSlice(t, a, tensor.Shape{n})
	bt := mustFromSlice(t, b, tensor.Shape{n})

	par := New(WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}))
	seq := New(WithParallel(parallel.Sequential()))

	assertClose(t, seq.Igamma(at, bt).AsFloat64(), par.Igamma(at, bt).AsFloat64(), 0)
	assertClose(t, seq.Mul(at, tensor.Scalar(2.0)).AsFloat64(), par.Mul(at, tensor.Scalar(2.0)).AsFloat64(), 0)
}

func TestShapeOf(t *testing.T) {
	backend := New()

	tests := []struct {
		shape    tensor.Shape
		expected []int32
	}{
		{tensor.Shape{}, []int32{}},
		{tensor.Shape{2}, []int32{2}},
		{tensor.Shape{2, 3}, []int32{2, 3}},
	}

	for _, tt := range tests {
		x, err := tensor.NewRaw(tt.shape, tensor.Float64, tensor.CPU)
		if err != nil {
			t.Fatalf("NewRaw failed: %v", err)
		}
		got := backend.ShapeOf(x)
		if got.DType() != tensor.Int32 {
			t.Errorf("ShapeOf dtype = %s, want int32", got.DType())
		}
		if !got.Shape().Equal(tensor.Shape{len(tt.expected)}) {
			t.Errorf("ShapeOf(%v) has shape %v", tt.shape, got.Shape())
		}
		for i, d := range got.AsInt32() {
			if d != tt.expected[i] {
				t.Errorf("ShapeOf(%v) = %v, want %v", tt.shape, got.AsInt32(), tt.expected)
			}
		}
	}
}
