package art

// Minimum returns the value of the lexicographically smallest key
// currently in the tree, and false if the tree is empty (spec.md §4.5).
func (t *Tree) Minimum() (uint64, bool) {
	if t.root.isEmpty() {
		return 0, false
	}
	return minimum(t.root).leaf, true
}

// Maximum returns the value of the lexicographically largest key
// currently in the tree, and false if the tree is empty.
func (t *Tree) Maximum() (uint64, bool) {
	if t.root.isEmpty() {
		return 0, false
	}
	return maximum(t.root).leaf, true
}
