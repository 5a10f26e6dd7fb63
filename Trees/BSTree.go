package Trees

import "cmp"

// BSTree is a plain binary search tree with no balancing at all. It exists
// as the baseline for the AVL comparison experiments: the same operations,
// the same duplicate policy, but the shape is whatever the input order
// produces, so sorted input degenerates into a linked list of height n.
// Nodes carry no height field; Height recomputes it on demand.
type BSTree[T cmp.Ordered] struct {
	root *bnode[T]
	sz   uint
	tr   Tracer[T] // optional, nil when untraced. Never rotates.
}

type bnode[T any] struct {
	v    T
	l, r *bnode[T]
}

// NewBST returns an empty BSTree.
func NewBST[T cmp.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// NewBSTTraced returns an empty BSTree reporting key comparisons to tr. A
// BSTree never rotates, so Rotated is never called.
func NewBSTTraced[T cmp.Ordered](tr Tracer[T]) *BSTree[T] {
	return &BSTree[T]{tr: tr}
}

func (u *BSTree[T]) compared() {
	if u.tr != nil {
		u.tr.Compared()
	}
}

func (u *BSTree[T]) insert(curPtr **bnode[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &bnode[T]{v: v}
		return true
	}
	u.compared()
	if v < cur.v {
		return u.insert(&cur.l, v)
	} else if v > cur.v {
		return u.insert(&cur.r, v)
	}
	return false
}

// Insert [Tree.Insert]. Recursive. Duplicates are skipped.
// Time: O(D), where D is unbounded relative to n
func (u *BSTree[T]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

func (u *BSTree[T]) remove(curPtr **bnode[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	u.compared()
	if v < cur.v {
		return u.remove(&cur.l, v)
	} else if v > cur.v {
		return u.remove(&cur.r, v)
	} else if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		s := cur.r
		for s.l != nil {
			s = s.l
		}
		cur.v = s.v
		u.remove(&cur.r, s.v)
	}
	return true
}

// Remove [Tree.Remove]. Recursive. Removing an absent value is a no-op.
func (u *BSTree[T]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Has [Tree.Has]
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		u.compared()
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
func (u *BSTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
func (u *BSTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *bnode[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *bnode[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Size [Tree.Size]
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]. Recomputed on demand since unbalanced nodes don't
// track it.
// Time: O(n)
func (u *BSTree[T]) Height() uint {
	return bheight(u.root)
}

func bheight[T any](cur *bnode[T]) uint {
	if cur == nil {
		return 0
	}
	return max(bheight(cur.l), bheight(cur.r)) + 1
}

// Clear drops every node.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// InOrder [Tree.InOrder]
func (u *BSTree[T]) InOrder() func() (T, bool) {
	var st []*bnode[T]
	for c := u.root; c != nil; c = c.l {
		st = append(st, c)
	}
	return func() (T, bool) {
		if len(st) == 0 {
			return *new(T), false
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// Corrupt [Tree.Corrupt]. Only the ordering invariant applies here.
func (u *BSTree[T]) Corrupt() bool {
	n, bad := baudit(u.root, nil, nil)
	return bad || n != u.sz
}

func baudit[T cmp.Ordered](cur *bnode[T], lo, hi *T) (uint, bool) {
	if cur == nil {
		return 0, false
	}
	if (lo != nil && cur.v <= *lo) || (hi != nil && cur.v >= *hi) {
		return 0, true
	}
	ln, bad := baudit(cur.l, lo, &cur.v)
	if bad {
		return 0, true
	}
	rn, bad := baudit(cur.r, &cur.v, hi)
	return ln + rn + 1, bad
}
