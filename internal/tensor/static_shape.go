package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownDim marks a dimension whose size is not known statically.
const UnknownDim = -1

// StaticShape is the best-effort shape of a value known without evaluating it.
// The rank itself may be unknown, and so may any individual dimension.
//
// The zero value has unknown rank.
type StaticShape struct {
	dims      []int
	rankKnown bool
}

// KnownShape returns a fully defined StaticShape.
func KnownShape(s Shape) StaticShape {
	return StaticShape{dims: s.Clone(), rankKnown: true}
}

// PartialShape returns a StaticShape of known rank; UnknownDim entries are unknown.
func PartialShape(dims ...int) StaticShape {
	clone := make([]int, len(dims))
	for i, d := range dims {
		if d < 0 {
			d = UnknownDim
		}
		clone[i] = d
	}
	return StaticShape{dims: clone, rankKnown: true}
}

// UnknownShape returns a StaticShape with unknown rank.
func UnknownShape() StaticShape {
	return StaticShape{}
}

// Rank returns the number of dimensions and whether it is known.
func (s StaticShape) Rank() (int, bool) {
	if !s.rankKnown {
		return 0, false
	}
	return len(s.dims), true
}

// Dims returns a copy of the dimensions, or nil when the rank is unknown.
func (s StaticShape) Dims() []int {
	if !s.rankKnown {
		return nil
	}
	return append([]int{}, s.dims...)
}

// IsFullyDefined reports whether rank and every dimension are known.
func (s StaticShape) IsFullyDefined() bool {
	if !s.rankKnown {
		return false
	}
	for _, d := range s.dims {
		if d == UnknownDim {
			return false
		}
	}
	return true
}

// AsShape converts a fully defined StaticShape into a Shape.
func (s StaticShape) AsShape() (Shape, error) {
	if !s.IsFullyDefined() {
		return nil, fmt.Errorf("static shape %v is not fully defined", s)
	}
	return Shape(s.dims).Clone(), nil
}

// IsCompatibleWith reports whether a concrete shape could be a realization of s.
func (s StaticShape) IsCompatibleWith(shape Shape) bool {
	if !s.rankKnown {
		return true
	}
	if len(s.dims) != len(shape) {
		return false
	}
	for i, d := range s.dims {
		if d != UnknownDim && d != shape[i] {
			return false
		}
	}
	return true
}

// String formats the shape as "(2, ?)"; unknown rank prints as "<unknown>".
func (s StaticShape) String() string {
	if !s.rankKnown {
		return "<unknown>"
	}
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		if d == UnknownDim {
			parts[i] = "?"
			continue
		}
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// BroadcastStatic applies BroadcastShapes rules to partially known shapes.
//
// An unknown dimension paired with 1 stays unknown; paired with any other
// known size it resolves to that size. Unknown rank on either side yields
// unknown rank.
func BroadcastStatic(a, b StaticShape) (StaticShape, error) {
	if !a.rankKnown || !b.rankKnown {
		return UnknownShape(), nil
	}

	maxLen := max(len(a.dims), len(b.dims))
	result := make([]int, maxLen)
	for i := 0; i < maxLen; i++ {
		aDim := dimFromRight(a.dims, i)
		bDim := dimFromRight(b.dims, i)
		out := maxLen - 1 - i

		switch {
		case aDim == UnknownDim && bDim == UnknownDim:
			result[out] = UnknownDim
		case aDim == UnknownDim:
			result[out] = resolveUnknown(bDim)
		case bDim == UnknownDim:
			result[out] = resolveUnknown(aDim)
		case aDim == bDim, bDim == 1:
			result[out] = aDim
		case aDim == 1:
			result[out] = bDim
		default:
			return StaticShape{}, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, out, aDim, bDim)
		}
	}
	return StaticShape{dims: result, rankKnown: true}, nil
}

func resolveUnknown(known int) int {
	if known == 1 {
		return UnknownDim
	}
	return known
}
