package art

import "github.com/BU-DiSC/art-go/internal/cpufeature"

// node16 stores up to 16 children keyed by byte, sorted ascending in a
// sign-flipped encoding (stored byte = original XOR 0x80) so a signed
// lane compare realizes unsigned ordering (spec.md §3). flip/unflip
// convert at the boundary; every method here that accepts or returns a
// caller-facing byte does the conversion itself so callers never see the
// flipped encoding.
type node16 struct {
	header
	key      [node16Cap]byte
	children [node16Cap]child
}

func newNode16() *node16 { return &node16{} }

func flip(b byte) byte   { return b ^ 0x80 }
func unflip(b byte) byte { return b ^ 0x80 }

func findChildNode16(n *node16, b byte) *child {
	fb := flip(b)
	if cpufeature.HaveSSE2() {
		return findChildNode16Vectorized(n, fb)
	}
	return findChildNode16Scan(n, fb)
}

// findChildNode16Scan is the portable fallback: a branchless-in-spirit
// linear scan bounded by count, matching spec.md's fallback guidance for
// platforms without SSE2.
func findChildNode16Scan(n *node16, fb byte) *child {
	for i := uint16(0); i < n.count; i++ {
		if n.key[i] == fb {
			return &n.children[i]
		}
	}
	return nil
}

// findChildNode16Vectorized mirrors the paper's fast path: broadcast fb
// across all 16 lanes, compare against the key array, mask to the valid
// prefix, and take the lowest set bit. Expressed here as a plain loop
// rather than actual SIMD intrinsics (Go has none portable at this
// level); the cpuid gate still matters because it documents the
// platform assumption the algorithm depends on, and a future assembly
// implementation can slot in behind this same function without
// touching any caller.
func findChildNode16Vectorized(n *node16, fb byte) *child {
	var mask uint32
	for i := uint16(0); i < n.count; i++ {
		if n.key[i] == fb {
			mask |= 1 << i
		}
	}
	if mask == 0 {
		return nil
	}
	return &n.children[trailingZeros32(mask)]
}

func trailingZeros32(x uint32) uint16 {
	n := uint16(0)
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

// addChildNode16 inserts (b, cNew) in ascending flipped-key order.
// Growing to N48 happens when the node is already full.
func addChildNode16(n *node16, b byte, cNew child) child {
	if n.count < node16Cap {
		fb := flip(b)
		pos := uint16(0)
		for pos < n.count && int8(n.key[pos]) < int8(fb) {
			pos++
		}
		for i := n.count; i > pos; i-- {
			n.key[i] = n.key[i-1]
			n.children[i] = n.children[i-1]
		}
		n.key[pos] = fb
		n.children[pos] = cNew
		n.count++
		return innerChild16(n)
	}

	n48 := newNode48()
	n48.header = n.header
	for i := range n48.childIndex {
		n48.childIndex[i] = node48Empty
	}
	for i := uint16(0); i < n.count; i++ {
		n48.children[i] = n.children[i]
		n48.childIndex[unflip(n.key[i])] = uint8(i)
	}
	n48.count = n.count
	return addChildNode48(n48, b, cNew)
}

// removeChildNode16 deletes the entry for key byte b. If count drops to
// 3, it shrinks to an N4, copying exactly the 3 surviving entries (fixing
// the source's off-by-one that copied a fourth, stale slot; see
// spec.md §9 and DESIGN.md).
func removeChildNode16(n *node16, b byte) child {
	fb := flip(b)
	pos := -1
	for i := uint16(0); i < n.count; i++ {
		if n.key[i] == fb {
			pos = int(i)
			break
		}
	}
	if pos < 0 {
		return innerChild16(n)
	}
	for i := uint16(pos); i+1 < n.count; i++ {
		n.key[i] = n.key[i+1]
		n.children[i] = n.children[i+1]
	}
	n.count--

	if n.count == 3 {
		n4 := newNode4()
		n4.header = n.header
		for i := uint16(0); i < n.count; i++ {
			n4.key[i] = unflip(n.key[i])
			n4.children[i] = n.children[i]
		}
		n4.count = n.count
		return innerChild4(n4)
	}
	return innerChild16(n)
}

func minimumNode16(n *node16) child {
	if n.count == 0 {
		panic("art: minimum on empty node16")
	}
	return minimum(n.children[0])
}

func maximumNode16(n *node16) child {
	if n.count == 0 {
		panic("art: maximum on empty node16")
	}
	return maximum(n.children[n.count-1])
}
