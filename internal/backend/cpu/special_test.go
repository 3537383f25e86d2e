package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/probability/internal/tensor"
)

func TestLgamma(t *testing.T) {
	backend := New()
	x := tensor.Vector(1.0, 2.0, 3.0, 0.5, 10.0)

	expected := []float64{
		0,
		0,
		math.Ln2,
		0.5 * math.Log(math.Pi),
		math.Log(362880), // 9!
	}
	assertClose(t, expected, backend.Lgamma(x).AsFloat64(), 1e-12)
}

func TestDigamma(t *testing.T) {
	backend := New()
	x := tensor.Vector(1.0, 2.0, 3.0, 0.5)

	const eulerGamma = 0.5772156649015329
	expected := []float64{
		-eulerGamma,
		1 - eulerGamma,
		1.5 - eulerGamma,
		-eulerGamma - 2*math.Ln2,
	}
	assertClose(t, expected, backend.Digamma(x).AsFloat64(), 1e-10)
}

func TestIgamma(t *testing.T) {
	backend := New()

	tests := []struct {
		name     string
		a, x     float64
		expected float64
	}{
		// P(1, x) = 1 - exp(-x)
		{"exponential", 1, 2, 1 - math.Exp(-2)},
		// P(2, x) = 1 - exp(-x)(1 + x)
		{"shape two", 2, 1.5, 1 - math.Exp(-1.5)*2.5},
		// P(3, 2) = 1 - exp(-2)(1 + 2 + 2)
		{"shape three", 3, 2, 1 - 5*math.Exp(-2)},
		// P(1/2, x) = erf(sqrt(x))
		{"half", 0.5, 0.7, math.Erf(math.Sqrt(0.7))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := backend.Igamma(tensor.Scalar(tt.a), tensor.Scalar(tt.x)).AsFloat64()[0]
			if math.Abs(got-tt.expected) > 1e-10 {
				t.Errorf("igamma(%v, %v) = %v, expected %v", tt.a, tt.x, got, tt.expected)
			}
		})
	}
}

func TestIgammaBroadcast(t *testing.T) {
	backend := New()
	a := tensor.Vector(1.0, 2.0)
	x := tensor.Scalar(1.0)

	result := backend.Igamma(a, x)
	if !result.Shape().Equal(tensor.Shape{2}) {
		t.Fatalf("Expected shape (2), got %v", result.Shape())
	}
	expected := []float64{1 - math.Exp(-1), 1 - 2*math.Exp(-1)}
	assertClose(t, expected, result.AsFloat64(), 1e-10)
}

func TestIgammaUnderflowIsZero(t *testing.T) {
	backend := New()
	got := backend.Igamma(tensor.Scalar(200.0), tensor.Scalar(1e-3)).AsFloat64()[0]
	if got != 0 {
		t.Errorf("igamma(200, 1e-3) = %v, want exact 0", got)
	}
}
