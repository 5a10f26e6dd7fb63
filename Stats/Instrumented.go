package Stats

import "github.com/g-m-twostay/go-avl/Trees"

// Instrumented wraps a Tree and counts calls to its mutating and querying
// operations. It complements Counters, which sees the work inside an
// operation; Instrumented sees the operations themselves.
type Instrumented[T any] struct {
	Trees.Tree[T]
	Inserts, Removes, Searches uint64
	// Rejected inserts and no-op removes.
	Misses uint64
	// MaxHeight the tree reached after any mutation.
	MaxHeight uint
}

// Instrument wraps t. The wrapper satisfies Trees.Tree so it can stand in
// anywhere the underlying tree could.
func Instrument[T any](t Trees.Tree[T]) *Instrumented[T] {
	return &Instrumented[T]{Tree: t}
}

func (u *Instrumented[T]) Insert(v T) bool {
	u.Inserts++
	ok := u.Tree.Insert(v)
	if !ok {
		u.Misses++
	} else if h := u.Tree.Height(); h > u.MaxHeight {
		u.MaxHeight = h
	}
	return ok
}

func (u *Instrumented[T]) Remove(v T) bool {
	u.Removes++
	ok := u.Tree.Remove(v)
	if !ok {
		u.Misses++
	}
	return ok
}

func (u *Instrumented[T]) Has(v T) bool {
	u.Searches++
	return u.Tree.Has(v)
}
