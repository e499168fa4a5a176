// Package validator decides whether a strategy's condition conjunction is satisfiable.
package validator

import "github.com/aretw0/stratify/pkg/domain"

// Conflict names a pair of conditions that can never hold simultaneously.
type Conflict struct {
	First  domain.Condition
	Second domain.Condition
}

// Contradiction reports whether the conjunction is unsatisfiable and, if so, returns
// the first conflicting pair in accumulation order.
//
// A pair conflicts when both assert equality on different values of the same feature,
// or when one asserts equality and the other inequality on the same value. Two
// inequalities on different values of one feature are jointly satisfiable and never
// conflict. The pairwise scan is quadratic but only covers features tested more than
// once, which real trees keep small.
func Contradiction(conditions []domain.Condition) (Conflict, bool) {
	byFeature := make(map[string][]domain.Condition)
	var features []string
	for _, condition := range conditions {
		if _, seen := byFeature[condition.Feature]; !seen {
			features = append(features, condition.Feature)
		}
		byFeature[condition.Feature] = append(byFeature[condition.Feature], condition)
	}

	for _, feature := range features {
		group := byFeature[feature]
		if len(group) == 1 {
			continue
		}

		for i, first := range group {
			for _, second := range group[i+1:] {
				equalityOnDifferentValues := first.IsEqual && second.IsEqual &&
					first.Value != second.Value

				oppositeOnSameValue := first.Value == second.Value &&
					first.IsEqual != second.IsEqual

				if equalityOnDifferentValues || oppositeOnSameValue {
					return Conflict{First: first, Second: second}, true
				}
			}
		}
	}

	return Conflict{}, false
}
