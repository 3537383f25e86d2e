// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/probability/internal/tensor"

// Backend defines the elementwise operations distributions are composed from.
//
// Implementations:
//   - backend/cpu: eager pure Go evaluation with gonum special functions
//
// Example:
//
//	import (
//	    "github.com/born-ml/probability/backend/cpu"
//	    "github.com/born-ml/probability/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Vector(1.0, 2.0)
//	y := backend.Lgamma(x) // [0, 0]
type Backend = tensor.Backend
