package art

// lookupOptimistic implements spec.md §4.3. It advances depth past each
// node's full logical prefix length without verifying the overlong
// portion inline, recording skippedPrefix so the final leaf comparison
// knows how much of the key still needs checking.
func lookupOptimistic(root child, key []byte, loadKey LoadKeyFunc) (uint64, bool) {
	c := root
	depth := 0
	skipped := false

	for {
		switch {
		case c.isEmpty():
			return 0, false
		case c.isLeaf():
			if skipped {
				return verifyLeaf(c.leaf, key, 0, loadKey)
			}
			if depth == len(key) {
				return c.leaf, true
			}
			return verifyLeaf(c.leaf, key, depth, loadKey)
		}

		h := c.hdr()
		if h.prefixLen > 0 {
			if h.prefixLen <= prefixBudget {
				matched := checkPrefixOptimistic(c, key, depth)
				if matched != int(h.prefixLen) {
					return 0, false
				}
			} else {
				skipped = true
			}
			depth += int(h.prefixLen)
		}

		if depth >= len(key) {
			return 0, false
		}
		next := findChild(c, key[depth])
		if next == nil {
			return 0, false
		}
		c = *next
		depth++
	}
}

// lookupPessimistic implements spec.md §4.4: every prefix is fully
// verified via checkPrefix (which may call loadKey for overlong
// prefixes), and the leaf is always fully verified at the end.
func lookupPessimistic(root child, key []byte, loadKey LoadKeyFunc) (uint64, bool) {
	c := root
	depth := 0

	for {
		switch {
		case c.isEmpty():
			return 0, false
		case c.isLeaf():
			return verifyLeaf(c.leaf, key, depth, loadKey)
		}

		h := c.hdr()
		if h.prefixLen > 0 {
			matched := checkPrefix(c, key, depth, loadKey)
			if matched != int(h.prefixLen) {
				return 0, false
			}
			depth += int(h.prefixLen)
		}

		if depth >= len(key) {
			return 0, false
		}
		next := findChild(c, key[depth])
		if next == nil {
			return 0, false
		}
		c = *next
		depth++
	}
}

// verifyLeaf reconstructs the leaf's key via loadKey and compares bytes
// from index from through the end of key.
func verifyLeaf(value uint64, key []byte, from int, loadKey LoadKeyFunc) (uint64, bool) {
	full := make([]byte, len(key))
	loadKey(value, full)
	for i := from; i < len(key); i++ {
		if full[i] != key[i] {
			return 0, false
		}
	}
	return value, true
}
