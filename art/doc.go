// Package art implements an Adaptive Radix Tree (Leis et al., ICDE 2013):
// an in-memory ordered index mapping fixed-width byte-string keys to
// opaque 63-bit values.
//
// The tree is a trie over the bytes of the key whose inner nodes morph
// between four representations — Node4, Node16, Node48, Node256 — sized
// for their fanout, with compressed paths (prefixes) folded onto the
// nodes that own them. A leaf stores only its value; its key is
// reconstructed on demand via the LoadKeyFunc supplied to NewTree, which
// lets compressed-path comparisons that exceed the inline prefix budget
// still be verified without storing the full key at every leaf.
//
// The tree is not safe for concurrent use. A caller that needs concurrent
// access must serialize it externally.
package art
