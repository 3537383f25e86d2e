// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the array types probability distributions are evaluated on.
//
// # Overview
//
// Tensors here are small, eager and CPU resident. This package provides:
//   - RawTensor: a runtime-typed array (float32, float64, int32)
//   - NumPy-style broadcasting over Shape
//   - StaticShape for shapes that are only partially known
//   - The Backend interface distributions compose their formulas from
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/probability/backend/cpu"
//	    "github.com/born-ml/probability/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    alpha := tensor.Vector(3.0, 4.0)
//	    beta := tensor.Vector(2.0, 3.0)
//
//	    mean := backend.Div(alpha, beta) // [1.5 1.333...]
//	}
//
// # Supported Data Types
//
//   - float32, float64 (distribution parameters and results)
//   - int32 (shape vectors returned by Backend.ShapeOf)
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	a := tensor.Vector(1.0, 2.0, 3.0) // (3)
//	b := tensor.Scalar(2.0)           // ()
//	c := backend.Mul(a, b)            // (3)
//
// # Static Shapes
//
// A StaticShape describes what is known about a shape without evaluation.
// Eager tensors always report a fully defined StaticShape; partially known
// shapes come from callers describing inputs that do not exist yet:
//
//	s := tensor.PartialShape(tensor.UnknownDim, 3) // (?, 3)
//	b, _ := tensor.BroadcastStatic(s, tensor.KnownShape(tensor.Shape{1})) // (?, 3)
package tensor
