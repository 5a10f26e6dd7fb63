package Trees

import (
	"math/rand"
	"testing"
)

const benchSize = 1 << 15

func benchKeys(n int) []int {
	r := rand.New(rand.NewSource(1))
	a := make([]int, n)
	for i := range a {
		a[i] = r.Int()
	}
	return a
}

func BenchmarkAVL_Insert(b *testing.B) {
	keys := benchKeys(benchSize)
	b.ResetTimer()
	for range b.N {
		tree := NewAVL[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}

func BenchmarkAVL_InsertSorted(b *testing.B) {
	for range b.N {
		tree := NewAVL[int]()
		for k := range benchSize {
			tree.Insert(k)
		}
	}
}

func BenchmarkAVL_Remove(b *testing.B) {
	keys := benchKeys(benchSize)
	for range b.N {
		b.StopTimer()
		tree := NewAVL[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
		b.StartTimer()
		for _, k := range keys {
			tree.Remove(k)
		}
	}
}

var benchSink bool

func BenchmarkAVL_Has(b *testing.B) {
	keys := benchKeys(benchSize)
	tree := NewAVL[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		benchSink = tree.Has(keys[i%len(keys)])
	}
}

func BenchmarkArr_Insert(b *testing.B) {
	keys := benchKeys(benchSize)
	b.ResetTimer()
	for range b.N {
		tree := NewArr[int, uint32](benchSize)
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}

func BenchmarkArr_Remove(b *testing.B) {
	keys := benchKeys(benchSize)
	for range b.N {
		b.StopTimer()
		tree := NewArr[int, uint32](benchSize)
		for _, k := range keys {
			tree.Insert(k)
		}
		b.StartTimer()
		for _, k := range keys {
			tree.Remove(k)
		}
	}
}

func BenchmarkArr_Has(b *testing.B) {
	keys := benchKeys(benchSize)
	tree := NewArr[int, uint32](benchSize)
	for _, k := range keys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		benchSink = tree.Has(keys[i%len(keys)])
	}
}

func BenchmarkBST_InsertRandom(b *testing.B) {
	keys := benchKeys(benchSize)
	b.ResetTimer()
	for range b.N {
		tree := NewBST[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}
