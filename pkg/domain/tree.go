package domain

// Tree is the parser's output: every declared entry keyed by identifier, plus an
// explicit root. The root is the first entry declared in the input; line order is a
// contract of the tree format, so it is recorded here rather than inferred from map
// iteration order.
type Tree struct {
	RootID  string
	Entries map[string]Entry
}

// Root returns the root entry, or false when the tree is empty.
func (t Tree) Root() (Entry, bool) {
	return t.Entry(t.RootID)
}

// Entry looks up an entry by identifier.
func (t Tree) Entry(id string) (Entry, bool) {
	e, ok := t.Entries[id]
	return e, ok
}
