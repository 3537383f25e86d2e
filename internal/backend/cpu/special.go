package cpu

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/born-ml/probability/internal/tensor"
)

// Lgamma computes element-wise log |Γ(x)|.
func (cpu *CPUBackend) Lgamma(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("lgamma", x, lgamma)
}

// Digamma computes element-wise ψ(x), the derivative of log Γ(x).
func (cpu *CPUBackend) Digamma(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("digamma", x, mathext.Digamma)
}

// Igamma computes the regularized lower incomplete gamma function P(a, x)
// element-wise with NumPy-style broadcasting. Results lie in [0, 1].
func (cpu *CPUBackend) Igamma(a, x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("igamma", a, x, mathext.GammaIncReg)
}

func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}
