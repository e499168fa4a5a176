package compiler

import "github.com/aretw0/stratify/pkg/domain"

// BranchTree is the OR-free binary condition-tree produced by the normalizer.
// It is a sealed variant type: SplitSet, Terminal or Sentinel. The enumerator
// switches over the concrete types exhaustively.
type BranchTree interface {
	branchTree()
}

// SplitSet is an internal node holding one Split per OR operand: a single split for
// plain nodes, two for OR nodes. Splits are visited in declaration order, which keeps
// traversal deterministic.
type SplitSet []Split

// Split tests one condition: True is the branch taken when the condition holds,
// False the branch taken when it does not.
type Split struct {
	Condition domain.Condition
	True      BranchTree
	False     BranchTree
}

// Terminal wraps the leaf reached once every condition on the path holds.
type Terminal struct {
	Leaf domain.Leaf
}

// Sentinel marks a branch that would only duplicate a strategy reachable via a
// shorter path; the enumerator drops it without emitting anything.
type Sentinel struct{}

func (SplitSet) branchTree() {}
func (Terminal) branchTree() {}
func (Sentinel) branchTree() {}
