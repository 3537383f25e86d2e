// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/probability/internal/backend/cpu"
	"github.com/born-ml/probability/internal/parallel"
	"github.com/born-ml/probability/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend evaluates every operation eagerly in pure Go, splitting large
// elementwise kernels across goroutines.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// ParallelConfig controls how elementwise kernels are split across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/probability/backend/cpu"
//	    "github.com/born-ml/probability/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    p := backend.Igamma(tensor.Scalar(3.0), tensor.Scalar(2.0))
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithParallel sets the goroutine split used by elementwise kernels.
func WithParallel(cfg ParallelConfig) Option {
	return internalcpu.WithParallel(cfg)
}

// DefaultParallelConfig returns the split used when no option is given.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a config that keeps every kernel on the calling goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
