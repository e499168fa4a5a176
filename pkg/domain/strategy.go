package domain

import (
	"fmt"
	"math"
	"strings"
)

// Strategy pairs the conjunction of conditions accumulated along one root-to-leaf
// path with the leaf value reached when all of them hold.
type Strategy struct {
	Conditions []Condition
	Value      Leaf
}

// String renders the strategy in its human-readable form:
// "device_type=pc & os=linux : 0.1".
func (s Strategy) String() string {
	parts := make([]string, len(s.Conditions))
	for i, c := range s.Conditions {
		parts[i] = c.String()
	}
	return strings.Join(parts, " & ") + " : " + s.Value.String()
}

// Fingerprint returns a structural identity key: two strategies collide iff their
// condition sequences and leaf values are equal. The leaf is compared bit-exact, no
// epsilon tolerance.
func (s Strategy) Fingerprint() string {
	var b strings.Builder
	for _, c := range s.Conditions {
		b.WriteString(c.String())
		b.WriteByte(0)
	}
	fmt.Fprintf(&b, "%016x", math.Float64bits(s.Value.Value))
	return b.String()
}
