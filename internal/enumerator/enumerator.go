// Package enumerator walks the binary condition-tree and collects strategies.
package enumerator

import (
	"log/slog"

	"github.com/aretw0/stratify/internal/compiler"
	"github.com/aretw0/stratify/internal/logging"
	"github.com/aretw0/stratify/internal/validator"
	"github.com/aretw0/stratify/pkg/domain"
)

// Enumerator performs a depth-first traversal of a BranchTree, accumulating the
// conditions (or their negations) taken along the way and emitting one Strategy per
// leaf reached. Structurally identical strategies collapse to one.
type Enumerator struct {
	logger          *slog.Logger
	keepAlwaysFalse bool
}

// New creates an enumerator. When keepAlwaysFalse is false (the default behavior),
// strategies whose condition conjunction can never hold are discarded with a debug
// diagnostic naming the conflicting pair.
func New(logger *slog.Logger, keepAlwaysFalse bool) *Enumerator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Enumerator{logger: logger, keepAlwaysFalse: keepAlwaysFalse}
}

// Enumerate returns every surviving strategy in traversal order. Traversal is
// deterministic for a given tree; callers sort the rendered lines for output.
func (e *Enumerator) Enumerate(tree compiler.BranchTree) []domain.Strategy {
	seen := make(map[string]struct{})
	var strategies []domain.Strategy

	var crawl func(subtree compiler.BranchTree, conditions []domain.Condition)
	crawl = func(subtree compiler.BranchTree, conditions []domain.Condition) {
		switch branch := subtree.(type) {
		case compiler.Terminal:
			strategy := domain.Strategy{
				Conditions: append([]domain.Condition(nil), conditions...),
				Value:      branch.Leaf,
			}
			if !e.keepAlwaysFalse {
				if conflict, contradictory := validator.Contradiction(strategy.Conditions); contradictory {
					e.logger.Debug("discarding always-false strategy",
						"strategy", strategy.String(),
						"first", conflict.First.String(),
						"second", conflict.Second.String())
					return
				}
			}
			key := strategy.Fingerprint()
			if _, duplicate := seen[key]; duplicate {
				return
			}
			seen[key] = struct{}{}
			strategies = append(strategies, strategy)

		case compiler.Sentinel:
			// Redundant path, a shorter conjunction already reaches this leaf.

		case compiler.SplitSet:
			for _, split := range branch {
				crawl(split.True, append(conditions, split.Condition))
				crawl(split.False, append(conditions, split.Condition.Negate()))
			}
		}
	}

	crawl(tree, nil)
	return strategies
}
