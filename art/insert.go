package art

// insert implements spec.md §4.6. slot is a pointer to the child field
// that holds (or should come to hold) the subtree rooted at *slot;
// redirecting *slot is how growth, splitting, and leaf creation get
// threaded back up to the parent without passing Node** pointers
// (spec.md's Design Notes, "Mutable child-slot references").
//
// Returns true if this call inserted a previously-absent key, false if
// it updated an existing key's value.
func (t *Tree) insert(slot *child, key []byte, depth int, value uint64) bool {
	n := *slot

	switch {
	case n.isEmpty():
		*slot = leafChild(value)
		return true

	case n.isLeaf():
		existing := make([]byte, len(key))
		t.loadKey(n.leaf, existing)
		if string(existing) == string(key) {
			*slot = leafChild(value)
			return false
		}

		newPrefixLen := 0
		for depth+newPrefixLen < len(key) && existing[depth+newPrefixLen] == key[depth+newPrefixLen] {
			newPrefixLen++
		}

		n4 := newNode4()
		copyPrefix(&n4.header, key, depth, newPrefixLen)

		existingByte := existing[depth+newPrefixLen]
		newByte := key[depth+newPrefixLen]
		addChildNode4(n4, existingByte, n)
		addChildNode4(n4, newByte, leafChild(value))
		*slot = innerChild4(n4)
		return true
	}

	h := n.hdr()
	if h.prefixLen > 0 {
		m := checkPrefix(n, key, depth, t.loadKey)
		if m < int(h.prefixLen) {
			t.splitPrefix(slot, n, key, depth, m, value)
			return true
		}
		depth += int(h.prefixLen)
	}

	childSlot := findChild(n, key[depth])
	if childSlot != nil {
		return t.insert(childSlot, key, depth+1, value)
	}

	before := n.kind
	grown := addChild(n, key[depth], leafChild(value))
	*slot = grown
	if grown.kind != before {
		t.metrics.observeGrow(grown.kind.String())
	}
	return true
}

// splitPrefix handles spec.md §4.6 step 3's "m < n.prefixLength" case:
// the mismatch falls inside n's compressed path, so a new N4 is spliced
// in above n to carry the shared portion, and n keeps only what follows
// the mismatch byte.
func (t *Tree) splitPrefix(slot *child, n child, key []byte, depth, m int, value uint64) {
	h := n.hdr()

	n4 := newNode4()
	copyPrefix(&n4.header, key, depth, m)

	var existingByte byte
	if int(h.prefixLen) <= prefixBudget {
		existingByte = h.prefix[m]
		remaining := int(h.prefixLen) - (m + 1)
		var tmp [prefixBudget]byte
		copy(tmp[:], h.prefix[m+1:h.prefixLen])
		h.prefix = tmp
		h.prefixLen = uint32(remaining)
	} else {
		minLeaf := minimum(n)
		minKey := make([]byte, len(key))
		t.loadKey(minLeaf.leaf, minKey)
		existingByte = minKey[depth+m]

		remaining := int(h.prefixLen) - (m + 1)
		h.prefixLen = uint32(remaining)
		inline := remaining
		if inline > prefixBudget {
			inline = prefixBudget
		}
		var tmp [prefixBudget]byte
		copy(tmp[:inline], minKey[depth+m+1:depth+m+1+inline])
		h.prefix = tmp
	}

	addChildNode4(n4, existingByte, n)
	addChildNode4(n4, key[depth+m], leafChild(value))
	*slot = innerChild4(n4)
}
