// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package distributions provides batched probability distributions evaluated
// on a tensor backend.
//
// # Overview
//
// A distribution object holds validated parameter tensors and exposes
// pointwise densities, distribution functions and summary statistics. Its
// batch shape is the broadcast of the parameter shapes, so one object can
// describe many independent distributions.
//
// # Gamma
//
//	import (
//	    "github.com/born-ml/probability/backend/cpu"
//	    "github.com/born-ml/probability/distributions"
//	    "github.com/born-ml/probability/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    g, err := distributions.NewGamma(tensor.Scalar(3.0), tensor.Scalar(2.0), backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    g.Mean()                          // 1.5
//	    g.Variance()                      // 0.75
//	    lp, _ := g.LogPDF(tensor.Scalar(1.0)) // -0.613706...
//	    c, _ := g.CDF(tensor.Scalar(1.0))     // 0.323324...
//	}
//
// # Errors
//
// Invalid input is rejected eagerly with one of three error types:
//   - *TypeMismatchError: dtypes disagree or are not floating point
//   - *DomainError: a parameter or x is zero, negative or NaN
//   - *ShapeError: shapes do not broadcast
//
// Use errors.Is with ErrTypeMismatch, ErrDomain or ErrShape to classify them.
//
// # Concurrency
//
// Distributions are immutable after construction; every method may be called
// from multiple goroutines without coordination.
package distributions
