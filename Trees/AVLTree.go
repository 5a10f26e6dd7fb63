package Trees

import (
	"cmp"

	"github.com/g-m-twostay/go-avl/Queues"
)

// AVLTree is a binary search tree with no repeated values. It maintains the
// AVL invariant: at every node the heights of the two subtrees differ by at
// most one, restored after every mutation by at most two of the four
// rotation cases (LL, RR, LR, RL). Each node carries its own height, so the
// additional memory cost is one byte per node.
// The height D of the tree is bounded by 1.44*log2(n+1), so all single-key
// operations are O(log n) in the worst case.
// Insert and Remove recurse over child slots and write the possibly rotated
// subtree root back through the slot pointer; nothing outside the mutated
// path is touched.
type AVLTree[T cmp.Ordered] struct {
	root nodePtr[T]
	sz   uint
	tr   Tracer[T] // optional, nil when untraced
}

// NewAVL returns an empty AVLTree.
// AVLTree shouldn't be created directly using struct literal.
func NewAVL[T cmp.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{}
}

// NewAVLTraced returns an empty AVLTree that reports rotations and key
// comparisons to tr. The tracer is owned by the caller and may be shared
// between trees only if the caller synchronizes it.
func NewAVLTraced[T cmp.Ordered](tr Tracer[T]) *AVLTree[T] {
	return &AVLTree[T]{tr: tr}
}

// FromSorted builds an AVLTree from the given sorted slice recursively. This
// is faster than repeatedly calling Insert and yields a minimal-height tree.
// The slice must be sorted in ascending order and mustn't contain duplicate
// elements. If safe==true, the conditions are checked up front and violation
// panics with InvalidSliceError; otherwise it is up to the caller to ensure
// them (the tree will be corrupt if they're broken).
// Time: O(n).
func FromSorted[T cmp.Ordered](sli []T, safe bool) *AVLTree[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i] <= sli[i-1] {
				panic(InvalidSliceError[T]{sli[i-1], sli[i]})
			}
		}
	}
	var build func(s []T) nodePtr[T]
	build = func(s []T) nodePtr[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:])}
		n.updateHeight()
		return n
	}
	return &AVLTree[T]{root: build(sli), sz: uint(len(sli))}
}

func (u *AVLTree[T]) compared() {
	if u.tr != nil {
		u.tr.Compared()
	}
}

func (u *AVLTree[T]) rotated(kind Rotation, pivot T) {
	if u.tr != nil {
		u.tr.Rotated(kind, pivot)
	}
}

// insert v into the subtree slot curPtr recursively, writing the possibly
// rotated subtree root back through curPtr. Returns false when v is already
// present, in which case nothing changes.
func (u *AVLTree[T]) insert(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v, h: 1}
		return true
	}
	u.compared()
	var inserted bool
	if v < cur.v {
		inserted = u.insert(&cur.l, v)
	} else if v > cur.v {
		inserted = u.insert(&cur.r, v)
	} else {
		return false
	}
	if inserted {
		(*node[T])(cur).updateHeight()
		// After an insertion the imbalance direction alone doesn't pick
		// between the single and double case; the inserted key's position
		// relative to the taller child does.
		if bf := balanceOf(cur); bf > 1 {
			pv := cur.v
			if v < cur.l.v {
				rotateRight(curPtr)
				u.rotated(RotationLL, pv)
			} else {
				rotateLeft(&cur.l)
				rotateRight(curPtr)
				u.rotated(RotationLR, pv)
			}
		} else if bf < -1 {
			pv := cur.v
			if v > cur.r.v {
				rotateLeft(curPtr)
				u.rotated(RotationRR, pv)
			} else {
				rotateRight(&cur.r)
				rotateLeft(curPtr)
				u.rotated(RotationRL, pv)
			}
		}
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive. Duplicates are skipped, reported by the
// false return.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// remove v from the subtree slot curPtr recursively. A node with two
// children swaps its value with the in-order successor (the leftmost node of
// the right subtree) and removes that node instead. Unlike insertion,
// rebalancing on the unwind can cascade: every ancestor re-checks its
// balance, picking the case from the taller child's balance factor.
func (u *AVLTree[T]) remove(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	u.compared()
	removed := true
	if v < cur.v {
		removed = u.remove(&cur.l, v)
	} else if v > cur.v {
		removed = u.remove(&cur.r, v)
	} else if cur.l == nil { // the missing side collapses
		*curPtr = cur.r
		return true
	} else if cur.r == nil {
		*curPtr = cur.l
		return true
	} else {
		s := cur.r
		for s.l != nil {
			s = s.l
		}
		cur.v = s.v
		u.remove(&cur.r, s.v) // always present
	}
	if removed {
		(*node[T])(cur).updateHeight()
		if bf := balanceOf(cur); bf > 1 {
			pv := cur.v
			if balanceOf(cur.l) >= 0 {
				rotateRight(curPtr)
				u.rotated(RotationLL, pv)
			} else {
				rotateLeft(&cur.l)
				rotateRight(curPtr)
				u.rotated(RotationLR, pv)
			}
		} else if bf < -1 {
			pv := cur.v
			if balanceOf(cur.r) <= 0 {
				rotateLeft(curPtr)
				u.rotated(RotationRR, pv)
			} else {
				rotateRight(&cur.r)
				rotateLeft(curPtr)
				u.rotated(RotationRL, pv)
			}
		}
	}
	return removed
}

// Remove [Tree.Remove]. Recursive. Removing an absent value is a no-op,
// reported by the false return.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	_, ok := u.Search(v)
	return ok
}

// Search descends for v and returns a read-only view of its node. The bool
// is false when v isn't present; a missing value is not an error.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Search(v T) (Node[T], bool) {
	for cur := u.root; cur != nil; {
		u.compared()
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return Node[T]{cur}, true
		}
	}
	return Node[T]{}, false
}

// Root returns a read-only view of the root node, absent when the tree is
// empty. Presentation layers walk the tree through it.
func (u *AVLTree[T]) Root() Node[T] {
	return Node[T]{u.root}
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]. No parent pointers are kept; the best
// candidate is tracked during the descent instead.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Predecessor(v T) (T, bool) {
	var p nodePtr[T]
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
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Successor(v T) (T, bool) {
	var p nodePtr[T]
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
// Time: O(1)
func (u *AVLTree[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]
// Time: O(1)
func (u *AVLTree[T]) Height() uint {
	return uint(height(u.root))
}

// Clear drops every node.
func (u *AVLTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// InOrder [Tree.InOrder]. The returned closure yields the elements in
// strictly ascending order using an explicit stack; the tree itself is never
// mutated by iteration.
// Time: amortized O(1) per call to the closure; Space: O(D)
func (u *AVLTree[T]) InOrder() func() (T, bool) {
	st := make([]nodePtr[T], 0, height(u.root))
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

// PreOrder returns an iterator closure yielding elements root first. This is
// the order a structural dump or serializer wants: re-inserting a pre-order
// sequence reproduces the exact shape.
// Time: amortized O(1) per call; Space: O(D)
func (u *AVLTree[T]) PreOrder() func() (T, bool) {
	st := make([]nodePtr[T], 0, height(u.root))
	if u.root != nil {
		st = append(st, u.root)
	}
	return func() (T, bool) {
		if len(st) == 0 {
			return *new(T), false
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
		return cur.v, true
	}
}

// PostOrder returns an iterator closure yielding elements children first,
// root last.
// Time: amortized O(1) per call; Space: O(D)
func (u *AVLTree[T]) PostOrder() func() (T, bool) {
	type frame struct {
		n        nodePtr[T]
		expanded bool
	}
	st := make([]frame, 0, height(u.root)*2)
	if u.root != nil {
		st = append(st, frame{u.root, false})
	}
	return func() (T, bool) {
		for len(st) > 0 {
			if top := st[len(st)-1]; top.expanded {
				st = st[:len(st)-1]
				return top.n.v, true
			}
			st[len(st)-1].expanded = true
			cur := st[len(st)-1].n
			if cur.r != nil {
				st = append(st, frame{cur.r, false})
			}
			if cur.l != nil {
				st = append(st, frame{cur.l, false})
			}
		}
		return *new(T), false
	}
}

// LevelOrder returns an iterator closure yielding elements breadth first,
// shallower depths before deeper ones and left to right within a depth.
// Time: amortized O(1) per call; Space: O(n)
func (u *AVLTree[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[nodePtr[T]](u.sz/2 + 1)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (T, bool) {
		cur, ok := q.Pop()
		if !ok {
			return *new(T), false
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}

// IsBalanced reports whether every node's balance factor is in {-1,0,1},
// judged from the stored heights. Corrupt is the stronger check.
// Time: O(n)
func (u *AVLTree[T]) IsBalanced() bool {
	return balanced(u.root)
}

func balanced[T any](cur nodePtr[T]) bool {
	if cur == nil {
		return true
	}
	if bf := balanceOf(cur); bf < -1 || bf > 1 {
		return false
	}
	return balanced(cur.l) && balanced(cur.r)
}

// Corrupt [Tree.Corrupt]. Recomputes every subtree height from scratch and
// confirms ordering, the balance bound, stored-height consistency, and the
// node count. Meant for tests and debugging, not hot paths.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	_, n, bad := audit(u.root, nil, nil)
	return bad || n != u.sz
}

// audit returns the true height and node count of cur, and whether any
// invariant is violated beneath it. lo/hi are the open key bounds inherited
// from ancestors, nil for unbounded.
func audit[T cmp.Ordered](cur nodePtr[T], lo, hi *T) (uint8, uint, bool) {
	if cur == nil {
		return 0, 0, false
	}
	if (lo != nil && cur.v <= *lo) || (hi != nil && cur.v >= *hi) {
		return 0, 0, true
	}
	lh, ln, bad := audit(cur.l, lo, &cur.v)
	if bad {
		return 0, 0, true
	}
	rh, rn, bad := audit(cur.r, &cur.v, hi)
	if bad {
		return 0, 0, true
	}
	if d := int(lh) - int(rh); d < -1 || d > 1 {
		return 0, 0, true
	}
	h := max(lh, rh) + 1
	return h, ln + rn + 1, h != cur.h
}
