package art

import "github.com/BU-DiSC/art-go/internal/logutil"

// Tree is an Adaptive Radix Tree mapping fixed-width K-byte keys to
// opaque 63-bit values. The zero value is not usable; construct one with
// NewTree.
//
// A Tree is not safe for concurrent use; callers needing concurrent
// access must serialize it externally.
type Tree struct {
	root    child
	keyLen  int
	loadKey LoadKeyFunc
	count   int
	metrics *metricsSet
}

// NewTree constructs an empty Tree over keys of length keyLen bytes.
// loadKey must reconstruct the full key of any previously-inserted
// value into a keyLen-byte destination buffer; it is called whenever a
// compressed prefix exceeds the inline budget and must be verified
// against a descendant leaf.
func NewTree(keyLen int, loadKey LoadKeyFunc) *Tree {
	if keyLen <= 0 {
		panic("art: keyLen must be positive")
	}
	if loadKey == nil {
		panic("art: loadKey must not be nil")
	}
	return &Tree{root: emptyChild(), keyLen: keyLen, loadKey: loadKey}
}

// NewTreeWithMetrics is NewTree plus prometheus instrumentation; see
// NewMetrics.
func NewTreeWithMetrics(keyLen int, loadKey LoadKeyFunc, metrics *metricsSet) *Tree {
	t := NewTree(keyLen, loadKey)
	t.metrics = metrics
	return t
}

// Len returns the number of keys currently held in the tree.
func (t *Tree) Len() int { return t.count }

func (t *Tree) checkKey(key []byte) {
	if len(key) != t.keyLen {
		panic("art: key length mismatch")
	}
}

// Insert inserts key with the given value, or updates the existing
// value if key is already present (spec.md §9, duplicate-key Open
// Question resolved as update-in-place). Panics if len(key) != the
// tree's configured key length. Returns ErrValueOutOfRange if value
// does not fit in 63 bits.
func (t *Tree) Insert(key []byte, value uint64) error {
	t.checkKey(key)
	if value > maxValue {
		return ErrValueOutOfRange
	}
	t.metrics.observeInsert()

	grew := t.insert(&t.root, key, 0, value)
	if grew {
		t.count++
	}
	return nil
}

// Lookup performs an optimistic lookup (spec.md §4.3): cheaper than
// LookupPessimistic, and always correct, but the implementation trusts
// that a prefix match beyond the inline budget is real until the final
// leaf-key comparison catches a false positive.
func (t *Tree) Lookup(key []byte) (uint64, bool) {
	t.checkKey(key)
	t.metrics.observeLookup()
	return lookupOptimistic(t.root, key, t.loadKey)
}

// LookupPessimistic performs a fully-verified lookup (spec.md §4.4): the
// reference oracle, never trusting a skipped prefix comparison. Always
// agrees with Lookup (spec.md §8, P5); exists for testing and for
// callers that cannot tolerate the theoretical risk of a optimistic
// false-positive surviving a buggy loadKey implementation.
func (t *Tree) LookupPessimistic(key []byte) (uint64, bool) {
	t.checkKey(key)
	t.metrics.observeLookup()
	return lookupPessimistic(t.root, key, t.loadKey)
}

// Erase removes key from the tree. No-op if key is absent.
func (t *Tree) Erase(key []byte) {
	t.checkKey(key)
	t.metrics.observeErase()

	removed := t.erase(&t.root, key, 0)
	if removed {
		t.count--
	}
}

// Destroy frees every inner node reachable from the root and resets the
// tree to empty. Not present in spec.md's source material but required
// for any real deployment (spec.md §5); a no-op in a garbage-collected
// runtime beyond dropping references, but shaped as a post-order
// traversal so the logic stays correct if this package is ever ported
// to carry manually-managed nodes.
func (t *Tree) Destroy() {
	destroy(t.root)
	t.root = emptyChild()
	t.count = 0
}

func destroy(c child) {
	switch c.kind {
	case kindEmpty, kindLeaf:
		return
	case kindNode4:
		for i := uint16(0); i < c.n4.count; i++ {
			destroy(c.n4.children[i])
		}
	case kindNode16:
		for i := uint16(0); i < c.n16.count; i++ {
			destroy(c.n16.children[i])
		}
	case kindNode48:
		for i := uint16(0); i < node48Cap; i++ {
			destroy(c.n48.children[i])
		}
	case kindNode256:
		for b := 0; b < 256; b++ {
			destroy(c.n256.children[b])
		}
	default:
		logutil.BgLogger().Warn("art: Destroy encountered unrecognized child kind")
	}
}
