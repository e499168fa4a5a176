package domain

// Entry is the sealed union of the two things a tree line can declare: a branching
// Node or a terminal Leaf. Consumers switch over the concrete types; the unexported
// marker keeps the variant set closed so a new variant is a compile-time event at
// every consumption site.
type Entry interface {
	entry()
}

func (Leaf) entry() {}
func (Node) entry() {}

// Node is a decision point in the parsed tree.
//
// EligibleConditions holds exactly one condition for a plain split, or exactly two
// for an OR-combination of two tests. Yes and No name the entries taken when the
// test passes or fails; they are resolved lazily by the normalizer.
type Node struct {
	EligibleConditions []Condition
	Yes                string
	No                 string
}
