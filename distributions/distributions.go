// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package distributions

import (
	"github.com/born-ml/probability/internal/check"
	"github.com/born-ml/probability/internal/distributions"
	"github.com/born-ml/probability/tensor"
)

// Distribution is a batch of independent probability distributions.
type Distribution = distributions.Distribution

// Gamma is a batch of Gamma distributions with shape alpha and rate beta.
type Gamma = distributions.Gamma

// Option configures a distribution at construction.
type Option = distributions.Option

// Error types returned by constructors and methods.
type (
	// DomainError reports a value that must be strictly positive but is not.
	DomainError = check.DomainError

	// TypeMismatchError reports operands whose floating-point dtypes disagree.
	TypeMismatchError = check.TypeMismatchError

	// ShapeError reports operands that cannot be broadcast together.
	ShapeError = check.ShapeError
)

// Sentinel errors for errors.Is.
var (
	ErrDomain       = check.ErrDomain
	ErrTypeMismatch = check.ErrTypeMismatch
	ErrShape        = check.ErrShape
)

// WithName sets the name used in error messages.
func WithName(name string) Option {
	return distributions.WithName(name)
}

// NewGamma creates Gamma distributions with shape alpha and rate beta.
//
// alpha and beta must be strictly positive, share a floating-point dtype
// and broadcast together. Validation happens here, not on first use.
//
// Example:
//
//	backend := cpu.New()
//	g, err := distributions.NewGamma(tensor.Vector(3.0, 4.0), tensor.Vector(2.0, 3.0), backend)
//	if err != nil {
//	    return err
//	}
//	mean := g.Mean() // [1.5 1.333...]
func NewGamma(alpha, beta *tensor.RawTensor, backend tensor.Backend, opts ...Option) (*Gamma, error) {
	return distributions.NewGamma(alpha, beta, backend, opts...)
}

// NewGammaFromScalars creates a single Gamma distribution from plain values.
//
// Example:
//
//	g, err := distributions.NewGammaFromScalars(3.0, 2.0, cpu.New())
func NewGammaFromScalars[T tensor.Float](alpha, beta T, backend tensor.Backend, opts ...Option) (*Gamma, error) {
	return distributions.NewGammaFromScalars(alpha, beta, backend, opts...)
}
