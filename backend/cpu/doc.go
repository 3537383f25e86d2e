// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support (float32 computed in float64, rounded once)
//   - NumPy-compatible broadcasting
//   - Special functions from gonum: digamma and the regularized incomplete gamma
//
// # Basic Usage
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
//	        panic(err)
//	    }
//	    p, _ := g.PDF(tensor.Scalar(1.0))
//	}
//
// # Parallelism
//
// Elementwise kernels above a size threshold are split across goroutines:
//
//	backend := cpu.New(cpu.WithParallel(cpu.SequentialConfig()))
//
// # Numerical Conventions
//
// Log follows math.Log: log(0) is -Inf and negative inputs give NaN. Callers
// that need a positive domain validate their inputs first.
package cpu
