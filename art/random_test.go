package art

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRandomizedRoundTrip is spec.md §8's headline round-trip property:
// insert a shuffled set of distinct keys, query all of them, then erase
// in a different shuffled order and re-verify as we go. By default (not
// -test.short) it uses the full 10^6 keys spec.md names; -test.short
// shrinks it to keep quick local runs fast. Exercises P1 (every
// inserted-and-not-erased key looks up correctly), P2 (erased keys stop
// looking up), and P5 (Lookup and LookupPessimistic agree throughout).
func TestRandomizedRoundTrip(t *testing.T) {
	n := 2000
	if !testing.Short() {
		n = 1_000_000
	}
	rng := rand.New(rand.NewSource(1))

	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(i)
	}
	insertOrder := rng.Perm(n)
	eraseOrder := rng.Perm(n)

	tree := newUint64Tree()
	for _, idx := range insertOrder {
		v := values[idx]
		require.Nil(t, tree.Insert(keyOf(v), v))
	}
	require.Equal(t, n, tree.Len())

	for _, idx := range insertOrder {
		v := values[idx]

		got, ok := tree.Lookup(keyOf(v))
		require.True(t, ok, v)
		require.Equal(t, v, got, v)

		got, ok = tree.LookupPessimistic(keyOf(v))
		require.True(t, ok, v)
		require.Equal(t, v, got, v)
	}

	for _, idx := range eraseOrder {
		v := values[idx]
		tree.Erase(keyOf(v))

		_, ok := tree.Lookup(keyOf(v))
		require.False(t, ok, v)
		_, ok = tree.LookupPessimistic(keyOf(v))
		require.False(t, ok, v)
	}
	require.Equal(t, 0, tree.Len())
}

// TestRandomizedPartialErase checks P1/P2 at a point strictly between
// "everything inserted" and "everything erased": after erasing a random
// half of a randomly-ordered insert set, every erased key must be gone
// and every surviving key must still resolve to its original value,
// under both Lookup and LookupPessimistic.
func TestRandomizedPartialErase(t *testing.T) {
	const n = 6000
	rng := rand.New(rand.NewSource(2))

	values := make([]uint64, n)
	for i := range values {
		values[i] = (uint64(i) * 0x9E3779B97F4A7C15) & maxValue // scatter across the 63-bit value space
	}
	insertOrder := rng.Perm(n)
	eraseOrder := rng.Perm(n)

	tree := newUint64Tree()
	for _, idx := range insertOrder {
		require.Nil(t, tree.Insert(keyOf(values[idx]), values[idx]))
	}

	erased := make([]bool, n)
	for _, idx := range eraseOrder[:n/2] {
		tree.Erase(keyOf(values[idx]))
		erased[idx] = true
	}
	require.Equal(t, n-n/2, tree.Len())

	for i, v := range values {
		gotOpt, okOpt := tree.Lookup(keyOf(v))
		gotPess, okPess := tree.LookupPessimistic(keyOf(v))
		require.Equal(t, okOpt, okPess, v)

		if erased[i] {
			require.False(t, okOpt, v)
			continue
		}
		require.True(t, okOpt, v)
		require.Equal(t, v, gotOpt, v)
		require.Equal(t, v, gotPess, v)
	}
}

// TestInsertOrderCommutativity is spec.md §8's P6: the lookup function
// produced by inserting a key set is the same regardless of insertion
// order, even though the physical tree shape may differ.
func TestInsertOrderCommutativity(t *testing.T) {
	const n = 4000
	values := make([]uint64, n)
	for i := range values {
		values[i] = (uint64(i) * 0x2545F4914F6CDD1D) & maxValue
	}

	rngA := rand.New(rand.NewSource(3))
	rngB := rand.New(rand.NewSource(4))
	orderA := rngA.Perm(n)
	orderB := rngB.Perm(n)

	treeA := newUint64Tree()
	treeB := newUint64Tree()
	for _, idx := range orderA {
		require.Nil(t, treeA.Insert(keyOf(values[idx]), values[idx]))
	}
	for _, idx := range orderB {
		require.Nil(t, treeB.Insert(keyOf(values[idx]), values[idx]))
	}

	for _, v := range values {
		gotA, okA := treeA.Lookup(keyOf(v))
		gotB, okB := treeB.Lookup(keyOf(v))
		require.Equal(t, okA, okB, v)
		require.Equal(t, gotA, gotB, v)
	}

	// A handful of never-inserted keys must also agree (both absent).
	for _, v := range []uint64{1, 3, 5, 7, 0xDEADBEEF} {
		_, okA := treeA.Lookup(keyOf(v))
		_, okB := treeB.Lookup(keyOf(v))
		require.Equal(t, okA, okB, v)
	}
}
