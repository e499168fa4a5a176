/*
Package domain contains the core domain models for the stratify converter.

It defines the fundamental entities of the conversion pipeline: Conditions, Leaves,
Nodes, Trees and Strategies. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Condition: A single feature equality or inequality test.
  - Leaf: The terminal score of a decision-tree path, bounded to [0, 1].
  - Node: A decision point with one test (or an OR of two) and yes/no branches.
  - Tree: The parsed input, keyed by identifier with an explicit root.
  - Strategy: A conjunction of conditions paired with the leaf value they reach.
*/
package domain
