// Package comparisons pits the trees against the established ordered
// containers of the ecosystem, both to cross-validate semantics and to keep
// an eye on relative performance.
package comparisons

import (
	"math/rand"
	"slices"
	"testing"

	avl "github.com/emirpasic/gods/trees/avltree"
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-avl/Trees"
)

const benchmarkItemCount = 1 << 15

var rg = rand.New(rand.NewSource(0))

// cross-check against the gods AVL tree: the same random workload must
// leave both structures with the same sorted content.
func TestAgainstGodsAVL(t *testing.T) {
	mine := Trees.NewAVL[int]()
	theirs := avl.NewWithIntComparator()
	for range 20000 {
		k := rg.Intn(8000)
		if rg.Intn(3) == 0 {
			mine.Remove(k)
			theirs.Remove(k)
		} else {
			mine.Insert(k)
			theirs.Put(k, struct{}{})
		}
	}
	if mine.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	if int(mine.Size()) != theirs.Size() {
		t.Errorf("size is %d, want %d", mine.Size(), theirs.Size())
	}
	got := Trees.Collect(mine.InOrder())
	want := make([]int, 0, theirs.Size())
	for _, k := range theirs.Keys() {
		want = append(want, k.(int))
	}
	if !slices.Equal(got, want) {
		t.Error("sorted contents diverge from gods avltree")
	}
}

// the red-black tree tolerates a sloppier balance, so only contents are
// compared, not heights.
func TestAgainstGodsRedBlack(t *testing.T) {
	mine := Trees.NewAVL[int]()
	theirs := rbt.NewWithIntComparator()
	for range 20000 {
		k := rg.Intn(8000)
		if rg.Intn(3) == 0 {
			mine.Remove(k)
			theirs.Remove(k)
		} else {
			mine.Insert(k)
			theirs.Put(k, struct{}{})
		}
	}
	got := Trees.Collect(mine.InOrder())
	want := make([]int, 0, theirs.Size())
	for _, k := range theirs.Keys() {
		want = append(want, k.(int))
	}
	if !slices.Equal(got, want) {
		t.Error("sorted contents diverge from gods redblacktree")
	}
}

func TestAgainstBTree(t *testing.T) {
	mine := Trees.NewAVL[int]()
	theirs := btree.NewOrderedG[int](32)
	for range 20000 {
		k := rg.Intn(8000)
		if rg.Intn(3) == 0 {
			mine.Remove(k)
			theirs.Delete(k)
		} else {
			mine.Insert(k)
			theirs.ReplaceOrInsert(k)
		}
	}
	if int(mine.Size()) != theirs.Len() {
		t.Errorf("size is %d, want %d", mine.Size(), theirs.Len())
	}
	want := make([]int, 0, theirs.Len())
	theirs.Ascend(func(k int) bool {
		want = append(want, k)
		return true
	})
	if got := Trees.Collect(mine.InOrder()); !slices.Equal(got, want) {
		t.Error("sorted contents diverge from google btree")
	}
}

func TestAgainstLLRB(t *testing.T) {
	mine := Trees.NewAVL[int]()
	theirs := llrb.New()
	for range 20000 {
		k := rg.Intn(8000)
		if rg.Intn(3) == 0 {
			mine.Remove(k)
			theirs.Delete(llrb.Int(k))
		} else {
			mine.Insert(k)
			theirs.ReplaceOrInsert(llrb.Int(k))
		}
	}
	if int(mine.Size()) != theirs.Len() {
		t.Errorf("size is %d, want %d", mine.Size(), theirs.Len())
	}
	var want []int
	theirs.AscendGreaterOrEqual(llrb.Int(-1), func(i llrb.Item) bool {
		want = append(want, int(i.(llrb.Int)))
		return true
	})
	if got := Trees.Collect(mine.InOrder()); !slices.Equal(got, want) {
		t.Error("sorted contents diverge from GoLLRB")
	}
}

func insertKeys(n int) []int {
	r := rand.New(rand.NewSource(7))
	a := make([]int, n)
	for i := range a {
		a[i] = r.Int()
	}
	return a
}

func BenchmarkInsertAVL(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	b.ResetTimer()
	for range b.N {
		tree := Trees.NewAVL[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}

func BenchmarkInsertArrAVL(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	b.ResetTimer()
	for range b.N {
		tree := Trees.NewArr[int, uint32](benchmarkItemCount)
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}

func BenchmarkInsertGodsAVL(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	b.ResetTimer()
	for range b.N {
		tree := avl.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
	}
}

func BenchmarkInsertGodsRB(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	b.ResetTimer()
	for range b.N {
		tree := rbt.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

var sideEff bool

func BenchmarkSearchAVL(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	tree := Trees.NewAVL[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Has(keys[i%len(keys)])
	}
}

func BenchmarkSearchBTree(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	tree := btree.NewOrderedG[int](32)
	for _, k := range keys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Has(keys[i%len(keys)])
	}
}

func BenchmarkSearchLLRB(b *testing.B) {
	keys := insertKeys(benchmarkItemCount)
	tree := llrb.New()
	for _, k := range keys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Has(llrb.Int(keys[i%len(keys)]))
	}
}
