package tensor

// Backend defines the elementwise capability set distributions are written against.
// Backends handle the actual computation; every method returns a new tensor.
//
// Binary operations broadcast their operands with BroadcastShapes rules.
// Operands are expected to share one floating-point dtype; callers validate
// inputs beforehand, so backends panic on violations instead of returning errors.
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar float64) *RawTensor  // x + s
	SubScalar(x *RawTensor, scalar float64) *RawTensor  // x - s
	MulScalar(x *RawTensor, scalar float64) *RawTensor  // x * s
	RSubScalar(x *RawTensor, scalar float64) *RawTensor // s - x

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor    // exponential
	Log(x *RawTensor) *RawTensor    // natural logarithm, log(0) = -Inf
	Square(x *RawTensor) *RawTensor // x * x

	// Special functions (element-wise)
	Lgamma(x *RawTensor) *RawTensor    // log |Γ(x)|
	Digamma(x *RawTensor) *RawTensor   // d/dx log Γ(x)
	Igamma(a, x *RawTensor) *RawTensor // regularized lower incomplete gamma P(a, x)

	// ShapeOf materializes the shape of x as a 1-D Int32 tensor.
	ShapeOf(x *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
