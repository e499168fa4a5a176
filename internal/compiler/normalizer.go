package compiler

import (
	"fmt"

	"github.com/aretw0/stratify/pkg/domain"
)

// Normalizer rewrites a parsed tree into a BranchTree, eliminating the OR combinator.
//
// An OR node routes to its yes branch when either operand holds and to its no branch
// only when both fail: NOT(A OR B) = NOT(A) AND NOT(B) (De Morgan). The expansion
// therefore emits two top-level splits, one per operand, so each operand leads to the
// yes subtree on its own; the overlapping (A, B both true) and mirrored paths are
// capped with Sentinel so no leaf is reached twice through a redundant conjunction.
type Normalizer struct{}

// NewNormalizer creates a new normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize expands the tree starting from its root. A tree whose root resolves to a
// bare leaf has no decision point and is rejected with ErrNodelessTree.
func (n *Normalizer) Normalize(tree domain.Tree) (BranchTree, error) {
	root, ok := tree.Root()
	if !ok {
		return nil, fmt.Errorf("%w: empty tree", domain.ErrNodelessTree)
	}

	expanded, err := n.expand(tree, root)
	if err != nil {
		return nil, err
	}
	if _, bare := expanded.(Terminal); bare {
		return nil, fmt.Errorf("%w: expected a tree with at least one node", domain.ErrNodelessTree)
	}

	return expanded, nil
}

func (n *Normalizer) expand(tree domain.Tree, entry domain.Entry) (BranchTree, error) {
	switch e := entry.(type) {
	case domain.Leaf:
		return Terminal{Leaf: e}, nil
	case domain.Node:
		return n.expandNode(tree, e)
	default:
		return nil, fmt.Errorf("unknown tree entry %T", entry)
	}
}

func (n *Normalizer) expandNode(tree domain.Tree, node domain.Node) (BranchTree, error) {
	switch len(node.EligibleConditions) {
	case 1:
		yes, err := n.expandBranch(tree, node.Yes)
		if err != nil {
			return nil, err
		}
		no, err := n.expandBranch(tree, node.No)
		if err != nil {
			return nil, err
		}
		return SplitSet{
			{Condition: node.EligibleConditions[0], True: yes, False: no},
		}, nil

	case 2:
		first, second := node.EligibleConditions[0], node.EligibleConditions[1]
		yesViaFirst, err := n.expandBranch(tree, node.Yes)
		if err != nil {
			return nil, err
		}
		yesViaSecond, err := n.expandBranch(tree, node.Yes)
		if err != nil {
			return nil, err
		}
		no, err := n.expandBranch(tree, node.No)
		if err != nil {
			return nil, err
		}
		// first=false && second=true duplicates the second-rooted split below, and
		// second=true under the second-rooted split duplicates the first one; both
		// collapse to Sentinel so every leaf keeps a minimal reaching conjunction.
		return SplitSet{
			{
				Condition: first,
				True:      yesViaFirst,
				False: SplitSet{
					{Condition: second, True: Sentinel{}, False: no},
				},
			},
			{Condition: second, True: yesViaSecond, False: Sentinel{}},
		}, nil

	default:
		return nil, fmt.Errorf("%w: node with %d conditions",
			domain.ErrUnsupportedCombinator, len(node.EligibleConditions))
	}
}

// expandBranch dereferences a yes/no identifier and expands the target. Dangling
// references surface here, at the point of dereference.
func (n *Normalizer) expandBranch(tree domain.Tree, id string) (BranchTree, error) {
	entry, ok := tree.Entry(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrDanglingReference, id)
	}
	return n.expand(tree, entry)
}
