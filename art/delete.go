package art

// erase implements spec.md §4.7. slot aliases the parent's reference to
// the subtree rooted at *slot, exactly as in insert. Returns true iff a
// key was actually removed.
func (t *Tree) erase(slot *child, key []byte, depth int) bool {
	n := *slot

	switch {
	case n.isEmpty():
		return false
	case n.isLeaf():
		if !t.leafMatches(n, key) {
			return false
		}
		*slot = emptyChild()
		return true
	}

	h := n.hdr()
	if h.prefixLen > 0 {
		m := checkPrefix(n, key, depth, t.loadKey)
		if m != int(h.prefixLen) {
			return false
		}
		depth += int(h.prefixLen)
	}
	if depth >= len(key) {
		return false
	}

	childSlot := findChild(n, key[depth])
	if childSlot == nil {
		return false
	}

	if childSlot.isLeaf() && t.leafMatches(*childSlot, key) {
		before := n.kind
		shrunk := removeChild(n, key[depth])
		*slot = shrunk
		if shrunk.kind != before {
			t.metrics.observeShrink(shrunk.kind.String())
		}
		return true
	}

	return t.erase(childSlot, key, depth+1)
}

func (t *Tree) leafMatches(c child, key []byte) bool {
	existing := make([]byte, len(key))
	t.loadKey(c.leaf, existing)
	return string(existing) == string(key)
}
