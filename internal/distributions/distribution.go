// Package distributions implements batched probability distributions whose
// formulas are composed from tensor.Backend operations.
package distributions

import (
	"github.com/born-ml/probability/internal/tensor"
)

// Distribution is a batch of independent univariate or multivariate distributions.
//
// All methods are pure. Methods taking x validate it eagerly and return an
// error instead of a partial result.
type Distribution interface {
	// Name is the label used in error messages.
	Name() string

	// DType is the floating-point type shared by parameters and results.
	DType() tensor.DataType

	// BatchShape materializes the batch shape as a 1-D Int32 tensor.
	BatchShape() *tensor.RawTensor

	// StaticBatchShape is the batch shape known without evaluation.
	StaticBatchShape() tensor.StaticShape

	// EventShape materializes the shape of a single draw.
	EventShape() *tensor.RawTensor

	// StaticEventShape is the event shape known without evaluation.
	StaticEventShape() tensor.StaticShape

	Mean() *tensor.RawTensor
	Variance() *tensor.RawTensor

	LogPDF(x *tensor.RawTensor) (*tensor.RawTensor, error)
	PDF(x *tensor.RawTensor) (*tensor.RawTensor, error)
	LogCDF(x *tensor.RawTensor) (*tensor.RawTensor, error)
	CDF(x *tensor.RawTensor) (*tensor.RawTensor, error)
	Entropy() *tensor.RawTensor

	// IsReparameterized reports whether samples are a differentiable
	// deterministic transform of parameter-free noise.
	IsReparameterized() bool
}

// Option configures a distribution at construction.
type Option func(*options)

type options struct {
	name string
}

// WithName overrides the distribution's name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func buildOptions(defaultName string, opts []Option) options {
	o := options{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = defaultName
	}
	return o
}
