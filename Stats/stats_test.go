package Stats

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-avl/Trees"
)

func TestCountersRotationCases(t *testing.T) {
	for _, c := range []struct {
		name string
		keys []int
		kind Trees.Rotation
	}{
		{"RR", []int{10, 20, 30}, Trees.RotationRR},
		{"LL", []int{30, 20, 10}, Trees.RotationLL},
		{"LR", []int{30, 10, 20}, Trees.RotationLR},
		{"RL", []int{10, 30, 20}, Trees.RotationRL},
	} {
		t.Run(c.name, func(t *testing.T) {
			var cnt Counters[int]
			tree := Trees.NewAVLTraced[int](&cnt)
			for _, k := range c.keys {
				tree.Insert(k)
			}
			assert.EqualValues(t, 1, cnt.ByKind[c.kind])
			assert.EqualValues(t, 1, cnt.Rotations())
			assert.Positive(t, cnt.Comparisons)
		})
	}
}

func TestCountersSinglesDoubles(t *testing.T) {
	var cnt Counters[int]
	tree := Trees.NewAVLTraced[int](&cnt)
	for _, k := range []int{10, 20, 30, 25} { // RR, then inserting 25 is clean
		tree.Insert(k)
	}
	assert.EqualValues(t, 1, cnt.Singles())
	assert.EqualValues(t, 0, cnt.Doubles())
	cnt.Reset()
	assert.EqualValues(t, 0, cnt.Rotations())
	assert.EqualValues(t, 0, cnt.Comparisons)
}

func TestCountersString(t *testing.T) {
	var cnt Counters[int]
	tree := Trees.NewAVLTraced[int](&cnt)
	for k := range 10 {
		tree.Insert(k)
	}
	assert.Regexp(t, `^comparisons=\d+ rotations=\d+ \(LL=\d+ RR=\d+ LR=\d+ RL=\d+\)$`, cnt.String())
}

// Ascending insertion of n keys performs exactly n-floor(log2(n))-1
// rotations, every one of them an RR case.
func TestCountersSortedInsertRotations(t *testing.T) {
	var cnt Counters[int]
	tree := Trees.NewAVLTraced[int](&cnt)
	const n = 1024
	for k := range n {
		tree.Insert(k)
	}
	require.False(t, tree.Corrupt())
	assert.EqualValues(t, n-bits.Len(uint(n)), cnt.Rotations())
	assert.EqualValues(t, cnt.Rotations(), cnt.ByKind[Trees.RotationRR])
}

func TestLogRecordsPivots(t *testing.T) {
	var log Log[int]
	tree := Trees.NewAVLTraced[int](&log)
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k)
	}
	require.Len(t, log.Events, 1)
	assert.Equal(t, Trees.RotationRR, log.Events[0].Kind)
	assert.Equal(t, 10, log.Events[0].Pivot)
	assert.EqualValues(t, 1, log.Rotations())
	log.Reset()
	assert.Empty(t, log.Events)
}

func TestInstrumented(t *testing.T) {
	wrapped := Instrument[int](Trees.NewAVL[int]())
	var _ Trees.Tree[int] = wrapped
	wrapped.Insert(1)
	wrapped.Insert(1) // duplicate
	wrapped.Remove(2) // absent
	wrapped.Remove(1)
	wrapped.Has(1)
	assert.EqualValues(t, 2, wrapped.Inserts)
	assert.EqualValues(t, 2, wrapped.Removes)
	assert.EqualValues(t, 1, wrapped.Searches)
	assert.EqualValues(t, 2, wrapped.Misses)
	assert.EqualValues(t, 1, wrapped.MaxHeight)
}

// The BST makes strictly more comparisons than the AVL on sorted input.
func TestComparisonsBSTvsAVL(t *testing.T) {
	var ac, bc Counters[int]
	at := Trees.NewAVLTraced[int](&ac)
	bt := Trees.NewBSTTraced[int](&bc)
	for k := range 2000 {
		at.Insert(k)
		bt.Insert(k)
	}
	assert.Greater(t, bc.Comparisons, ac.Comparisons)
}
