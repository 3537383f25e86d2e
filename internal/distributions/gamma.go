package distributions

import (
	"errors"
	"fmt"

	"github.com/born-ml/probability/internal/check"
	"github.com/born-ml/probability/internal/tensor"
)

// Gamma is a batch of Gamma distributions with shape alpha and rate beta.
//
// The density and distribution function are
//
//	pdf(x) = beta^alpha * x^(alpha-1) * exp(-beta*x) / Γ(alpha),  x > 0
//	cdf(x) = P(alpha, beta*x)
//
// where P is the regularized lower incomplete gamma function. The batch
// shape is the broadcast of alpha's and beta's shapes; every draw is a scalar.
//
// A Gamma is immutable and safe for concurrent use.
type Gamma struct {
	name    string
	backend tensor.Backend
	dtype   tensor.DataType

	alpha *tensor.RawTensor
	beta  *tensor.RawTensor

	mean     *tensor.RawTensor
	variance *tensor.RawTensor

	batchShape       tensor.Shape
	staticBatchShape tensor.StaticShape
}

// Compile-time check that Gamma implements Distribution.
var _ Distribution = (*Gamma)(nil)

// NewGamma validates alpha and beta and builds the distribution.
//
// alpha and beta must share one floating-point dtype (*check.TypeMismatchError),
// be strictly positive (*check.DomainError) and broadcast together
// (*check.ShapeError). The parameters are copied; later changes to the
// caller's tensors do not affect the distribution.
//
// Example:
//
//	g, err := NewGamma(tensor.Vector(3.0, 4.0), tensor.Vector(2.0, 3.0), backend)
func NewGamma(alpha, beta *tensor.RawTensor, backend tensor.Backend, opts ...Option) (*Gamma, error) {
	o := buildOptions("Gamma", opts)
	op := o.name

	if alpha == nil || beta == nil {
		return nil, fmt.Errorf("%s: alpha and beta are required", op)
	}
	if backend == nil {
		return nil, errors.New(op + ": backend is required")
	}

	dtype, err := check.AssertSameFloatDType(op, nil, check.Named("alpha", alpha), check.Named("beta", beta))
	if err != nil {
		return nil, err
	}
	if err := check.AssertPositive(op, check.Named("alpha", alpha)); err != nil {
		return nil, err
	}
	if err := check.AssertPositive(op, check.Named("beta", beta)); err != nil {
		return nil, err
	}
	batchShape, err := check.AssertBroadcastable(op, alpha.Shape(), beta.Shape())
	if err != nil {
		return nil, err
	}
	staticBatchShape, err := tensor.BroadcastStatic(alpha.StaticShape(), beta.StaticShape())
	if err != nil {
		return nil, &check.ShapeError{Op: op, A: alpha.Shape(), B: beta.Shape(), Err: err}
	}

	g := &Gamma{
		name:             o.name,
		backend:          backend,
		dtype:            dtype,
		alpha:            alpha.Clone(),
		beta:             beta.Clone(),
		batchShape:       batchShape,
		staticBatchShape: staticBatchShape,
	}
	g.mean = backend.Div(g.alpha, g.beta)
	g.variance = backend.Div(g.alpha, backend.Square(g.beta))

	return g, nil
}

// NewGammaFromScalars builds a scalar-batch Gamma from plain values.
func NewGammaFromScalars[T tensor.Float](alpha, beta T, backend tensor.Backend, opts ...Option) (*Gamma, error) {
	return NewGamma(tensor.Scalar(alpha), tensor.Scalar(beta), backend, opts...)
}

// Name returns the distribution's name.
func (g *Gamma) Name() string {
	return g.name
}

// DType returns the floating-point type of the parameters.
func (g *Gamma) DType() tensor.DataType {
	return g.dtype
}

// Alpha returns a copy of the shape parameter.
func (g *Gamma) Alpha() *tensor.RawTensor {
	return g.alpha.Clone()
}

// Beta returns a copy of the rate parameter.
func (g *Gamma) Beta() *tensor.RawTensor {
	return g.beta.Clone()
}

// Mean returns a copy of alpha / beta.
func (g *Gamma) Mean() *tensor.RawTensor {
	return g.mean.Clone()
}

// Variance returns a copy of alpha / beta^2.
func (g *Gamma) Variance() *tensor.RawTensor {
	return g.variance.Clone()
}

// BatchShape returns the broadcast shape of alpha and beta as an Int32 vector.
func (g *Gamma) BatchShape() *tensor.RawTensor {
	return g.backend.ShapeOf(g.mean)
}

// StaticBatchShape returns the batch shape known without evaluation.
func (g *Gamma) StaticBatchShape() tensor.StaticShape {
	return g.staticBatchShape
}

// EventShape returns the Int32 scalar 1: each draw is a single value.
func (g *Gamma) EventShape() *tensor.RawTensor {
	one, err := tensor.FromInt32s([]int32{1}, tensor.Shape{})
	if err != nil {
		panic(fmt.Sprintf("eventShape: %v", err))
	}
	return one
}

// StaticEventShape returns the empty (scalar) shape.
func (g *Gamma) StaticEventShape() tensor.StaticShape {
	return tensor.KnownShape(tensor.Shape{})
}

// IsReparameterized is false: Gamma samples are not a differentiable
// transform of parameter-free noise.
func (g *Gamma) IsReparameterized() bool {
	return false
}

// LogPDF returns alpha*log(beta) + (alpha-1)*log(x) - beta*x - lgamma(alpha).
//
// x must have the distribution's dtype, be strictly positive and broadcast
// against the batch shape.
func (g *Gamma) LogPDF(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := g.validate("LogPDF", x); err != nil {
		return nil, err
	}

	b := g.backend
	normalizer := b.Sub(b.Mul(g.alpha, b.Log(g.beta)), b.Lgamma(g.alpha))
	kernel := b.Sub(b.Mul(b.SubScalar(g.alpha, 1), b.Log(x)), b.Mul(g.beta, x))
	return b.Add(normalizer, kernel), nil
}

// PDF returns exp(LogPDF(x)).
func (g *Gamma) PDF(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	logPDF, err := g.LogPDF(x)
	if err != nil {
		return nil, err
	}
	return g.backend.Exp(logPDF), nil
}

// LogCDF returns log(P(alpha, beta*x)).
//
// When P underflows to exactly zero the result is -Inf.
func (g *Gamma) LogCDF(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := g.validate("LogCDF", x); err != nil {
		return nil, err
	}
	return g.backend.Log(g.cdf(x)), nil
}

// CDF returns P(alpha, beta*x), the regularized lower incomplete gamma
// function. Results lie in [0, 1].
func (g *Gamma) CDF(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := g.validate("CDF", x); err != nil {
		return nil, err
	}
	return g.cdf(x), nil
}

// Entropy returns alpha - log(beta) + lgamma(alpha) + (1-alpha)*digamma(alpha).
func (g *Gamma) Entropy() *tensor.RawTensor {
	b := g.backend
	h := b.Sub(g.alpha, b.Log(g.beta))
	h = b.Add(h, b.Lgamma(g.alpha))
	return b.Add(h, b.Mul(b.RSubScalar(g.alpha, 1), b.Digamma(g.alpha)))
}

// String describes the distribution, e.g. "Gamma(alpha=float64()[3], beta=float64()[2])".
func (g *Gamma) String() string {
	return fmt.Sprintf("%s(alpha=%v, beta=%v)", g.name, g.alpha, g.beta)
}

func (g *Gamma) cdf(x *tensor.RawTensor) *tensor.RawTensor {
	return g.backend.Igamma(g.alpha, g.backend.Mul(g.beta, x))
}

// validate checks x's dtype, positivity and broadcast compatibility, in that order.
func (g *Gamma) validate(method string, x *tensor.RawTensor) error {
	op := g.name + "." + method
	if x == nil {
		return fmt.Errorf("%s: x is required", op)
	}
	if _, err := check.AssertSameFloatDType(op, &g.dtype, check.Named("x", x)); err != nil {
		return err
	}
	if err := check.AssertPositive(op, check.Named("x", x)); err != nil {
		return err
	}
	if _, err := check.AssertBroadcastable(op, g.batchShape, x.Shape()); err != nil {
		return err
	}
	return nil
}
