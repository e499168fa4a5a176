package domain

import (
	"fmt"
	"strings"
)

// Condition is a single feature equality or inequality test.
// It is an immutable value type: two conditions with identical fields are
// interchangeable and the zero-cost struct comparison makes it usable as a map key.
type Condition struct {
	Feature string
	Value   string
	IsEqual bool
}

// ParseCondition parses a raw token such as "device_type=pc" or "os!=linux".
// Inequality detection takes precedence: a token containing "!=" is an inequality
// even though it also contains "=".
func ParseCondition(raw string) (Condition, error) {
	op := "="
	isEqual := true
	if strings.Contains(raw, "!=") {
		op = "!="
		isEqual = false
	}

	feature, value, found := strings.Cut(raw, op)
	if !found || feature == "" || value == "" {
		return Condition{}, fmt.Errorf("%w: condition %q", ErrUnparsableLine, raw)
	}
	// Feature and value are plain tokens; a stray operator means a malformed line,
	// not a nested expression.
	if strings.ContainsAny(feature, "=!") || strings.ContainsAny(value, "=!") {
		return Condition{}, fmt.Errorf("%w: condition %q", ErrUnparsableLine, raw)
	}

	return Condition{Feature: feature, Value: value, IsEqual: isEqual}, nil
}

// Negate returns the logical complement of the condition: the same feature/value test
// with the equality flipped.
func (c Condition) Negate() Condition {
	c.IsEqual = !c.IsEqual
	return c
}

// String renders the condition in strategy format: "feature=value" or "feature!=value".
func (c Condition) String() string {
	op := "="
	if !c.IsEqual {
		op = "!="
	}
	return c.Feature + op + c.Value
}
