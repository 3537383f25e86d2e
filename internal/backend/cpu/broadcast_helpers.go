package cpu

import (
	"github.com/born-ml/probability/internal/tensor"
)

// broadcastStrides returns strides that read inShape as if it had outShape.
// Padded and size-1 dimensions get stride 0 so the same element is reused.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	offset := outDim - len(inShape)
	origStrides := inShape.ComputeStrides()

	strides := make([]int, outDim)
	for i := offset; i < outDim; i++ {
		if inShape[i-offset] != 1 {
			strides[i] = origStrides[i-offset]
		}
	}
	return strides
}

// flatIndex maps a row-major output index to the input index given
// broadcast-adjusted input strides.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i, stride := range outStrides {
		coord := outIdx / stride
		outIdx %= stride
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
