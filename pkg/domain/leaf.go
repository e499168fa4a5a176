package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Leaf is the terminal payload of a decision-tree path: a score in [0, 1].
type Leaf struct {
	Value float64
}

// NewLeaf validates the value range at construction time. Out-of-range values are
// rejected, never clamped.
func NewLeaf(value float64) (Leaf, error) {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return Leaf{}, fmt.Errorf("%w: %v, must be in [0, 1]", ErrInvalidLeafValue, value)
	}
	return Leaf{Value: value}, nil
}

// String renders the value in its natural decimal form: "0.1", not "0.10000".
// Integral values keep a trailing ".0" ("1.0", "0.0") to stay recognizable as scores.
func (l Leaf) String() string {
	s := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
