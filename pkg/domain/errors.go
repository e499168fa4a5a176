package domain

import "errors"

// ErrUnparsableLine is returned when a non-blank input line matches neither the leaf
// nor the node grammar.
var ErrUnparsableLine = errors.New("unparsable line")

// ErrDuplicateIdentifier is returned when two input lines declare the same identifier.
var ErrDuplicateIdentifier = errors.New("duplicate identifier")

// ErrInvalidLeafValue is returned when a leaf value falls outside [0, 1].
var ErrInvalidLeafValue = errors.New("invalid leaf value")

// ErrUnsupportedCombinator is returned when a condition expression combines more than
// two operands.
var ErrUnsupportedCombinator = errors.New("unsupported condition combinator")

// ErrNodelessTree is returned when the input resolves to a bare leaf with no decision
// node at all.
var ErrNodelessTree = errors.New("tree has no decision node")

// ErrDanglingReference is returned when a node's yes/no branch names an identifier
// that was never declared.
var ErrDanglingReference = errors.New("dangling branch reference")
