package art

// LoadKeyFunc reconstructs the full K-byte key of the leaf carrying
// value into dst. It is how lazy leaf expansion works: leaves never
// store their key, so any comparison that needs bytes beyond a node's
// inline prefix budget calls back into the embedder to get them.
type LoadKeyFunc func(value uint64, dst []byte)

// copyPrefix writes min(n.prefixLen, prefixBudget) bytes of key starting
// at depth into n's inline prefix array and records the full logical
// length, which may exceed what's stored inline.
func copyPrefix(h *header, key []byte, depth int, length int) {
	h.prefixLen = uint32(length)
	n := length
	if n > prefixBudget {
		n = prefixBudget
	}
	copy(h.prefix[:n], key[depth:depth+n])
}

// checkPrefix compares the node's prefix against key starting at depth
// and returns the number of matching bytes, up to the full logical
// prefix length. When the logical length exceeds prefixBudget, bytes
// beyond the inline budget are recovered from a descendant leaf via
// loadKey (spec.md §4.4, S6): this is the expensive, always-correct
// path used during pessimistic lookup and during insertion/deletion,
// where a wrong answer would corrupt the tree.
func checkPrefix(c child, key []byte, depth int, loadKey LoadKeyFunc) int {
	h := c.hdr()
	total := int(h.prefixLen)
	inline := total
	if inline > prefixBudget {
		inline = prefixBudget
	}

	matched := 0
	for matched < inline && depth+matched < len(key) && h.prefix[matched] == key[depth+matched] {
		matched++
	}
	if matched < inline {
		return matched
	}
	if total <= prefixBudget {
		return matched
	}

	leaf := minimum(c)
	full := make([]byte, len(key))
	loadKey(leaf.leaf, full)

	for matched < total && depth+matched < len(key) && full[depth+matched] == key[depth+matched] {
		matched++
	}
	return matched
}

// checkPrefixOptimistic is the cheap, inline-only variant used by
// optimistic lookup (spec.md §4.3): it never calls loadKey, trusting
// that a full prefix beyond the inline budget still starts with the
// inline bytes actually stored. A false "match" here is caught later by
// the final leaf-key comparison; it can never cause a false negative.
func checkPrefixOptimistic(c child, key []byte, depth int) int {
	h := c.hdr()
	inline := int(h.prefixLen)
	if inline > prefixBudget {
		inline = prefixBudget
	}
	matched := 0
	for matched < inline && depth+matched < len(key) && h.prefix[matched] == key[depth+matched] {
		matched++
	}
	return matched
}
