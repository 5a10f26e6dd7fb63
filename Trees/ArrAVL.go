package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// A node slot in an ArrAVL. Slot 0 is the absent sentinel: h=0, children 0.
type aslot[T any, S constraints.Unsigned] struct {
	v    T
	l, r S
	h    uint8
}

// ArrAVL is an AVL tree whose nodes live in a growable slice and reference
// their children by index instead of by pointer. Removed slots are threaded
// onto a free list (through the l field) and reused before the slice grows,
// so rotation-heavy workloads churn no heap nodes. Semantics are identical
// to AVLTree: same duplicate policy, same rotation cases, same invariants.
// S is the index type; pick one wide enough for the largest size the tree
// will reach (uint32 covers 4 billion nodes and halves the slot overhead
// compared to uint64 on 64-bit platforms).
type ArrAVL[T cmp.Ordered, S constraints.Unsigned] struct {
	ns   []aslot[T, S]
	free S // head of the free list; 0 when empty
	root S
	sz   uint
}

// NewArr returns an empty ArrAVL with room for hint elements before the
// first grow.
func NewArr[T cmp.Ordered, S constraints.Unsigned](hint S) *ArrAVL[T, S] {
	return &ArrAVL[T, S]{ns: make([]aslot[T, S], 1, hint+1)}
}

// alloc a slot for v, reusing the free list before appending.
func (u *ArrAVL[T, S]) alloc(v T) S {
	if i := u.free; i != 0 {
		u.free = u.ns[i].l
		u.ns[i] = aslot[T, S]{v: v, h: 1}
		return i
	}
	u.ns = append(u.ns, aslot[T, S]{v: v, h: 1})
	return S(len(u.ns) - 1)
}

// release slot i onto the free list. The stale value is zeroed so the arena
// doesn't pin memory reachable from removed elements.
func (u *ArrAVL[T, S]) release(i S) {
	u.ns[i] = aslot[T, S]{l: u.free}
	u.free = i
}

func (u *ArrAVL[T, S]) heightAt(i S) uint8 {
	return u.ns[i].h
}

func (u *ArrAVL[T, S]) updateHeightAt(i S) {
	u.ns[i].h = max(u.heightAt(u.ns[i].l), u.heightAt(u.ns[i].r)) + 1
}

func (u *ArrAVL[T, S]) balanceAt(i S) int {
	return int(u.heightAt(u.ns[i].l)) - int(u.heightAt(u.ns[i].r))
}

// rotateRight on the subtree rooted at index y, returning the index of the
// new subtree root. Interior pointers into ns are never held across calls
// that may grow it, so indices stay valid throughout.
func (u *ArrAVL[T, S]) rotateRight(y S) S {
	x := u.ns[y].l
	if x == 0 {
		panic("Trees: right rotation on a slot with no left child")
	}
	u.ns[y].l = u.ns[x].r
	u.ns[x].r = y
	u.updateHeightAt(y)
	u.updateHeightAt(x)
	return x
}

func (u *ArrAVL[T, S]) rotateLeft(x S) S {
	y := u.ns[x].r
	if y == 0 {
		panic("Trees: left rotation on a slot with no right child")
	}
	u.ns[x].r = u.ns[y].l
	u.ns[y].l = x
	u.updateHeightAt(x)
	u.updateHeightAt(y)
	return y
}

func (u *ArrAVL[T, S]) insert(cur S, v T) (S, bool) {
	if cur == 0 {
		return u.alloc(v), true
	}
	var ok bool
	if v < u.ns[cur].v {
		var l S
		l, ok = u.insert(u.ns[cur].l, v)
		u.ns[cur].l = l
	} else if v > u.ns[cur].v {
		var r S
		r, ok = u.insert(u.ns[cur].r, v)
		u.ns[cur].r = r
	} else {
		return cur, false
	}
	if ok {
		u.updateHeightAt(cur)
		if bf := u.balanceAt(cur); bf > 1 {
			if v < u.ns[u.ns[cur].l].v {
				cur = u.rotateRight(cur)
			} else {
				u.ns[cur].l = u.rotateLeft(u.ns[cur].l)
				cur = u.rotateRight(cur)
			}
		} else if bf < -1 {
			if v > u.ns[u.ns[cur].r].v {
				cur = u.rotateLeft(cur)
			} else {
				u.ns[cur].r = u.rotateRight(u.ns[cur].r)
				cur = u.rotateLeft(cur)
			}
		}
	}
	return cur, ok
}

// Insert [Tree.Insert]. Recursive over indices, returning the new subtree
// root the way the pointer variant returns it through the slot pointer.
// Time: O(D)
func (u *ArrAVL[T, S]) Insert(v T) bool {
	root, ok := u.insert(u.root, v)
	u.root = root
	if ok {
		u.sz++
	}
	return ok
}

func (u *ArrAVL[T, S]) remove(cur S, v T) (S, bool) {
	if cur == 0 {
		return 0, false
	}
	var ok bool
	if v < u.ns[cur].v {
		var l S
		l, ok = u.remove(u.ns[cur].l, v)
		u.ns[cur].l = l
	} else if v > u.ns[cur].v {
		var r S
		r, ok = u.remove(u.ns[cur].r, v)
		u.ns[cur].r = r
	} else if u.ns[cur].l == 0 {
		r := u.ns[cur].r
		u.release(cur)
		return r, true
	} else if u.ns[cur].r == 0 {
		l := u.ns[cur].l
		u.release(cur)
		return l, true
	} else {
		s := u.ns[cur].r
		for u.ns[s].l != 0 {
			s = u.ns[s].l
		}
		u.ns[cur].v = u.ns[s].v
		r, _ := u.remove(u.ns[cur].r, u.ns[s].v)
		u.ns[cur].r = r
		ok = true
	}
	if ok {
		u.updateHeightAt(cur)
		if bf := u.balanceAt(cur); bf > 1 {
			if u.balanceAt(u.ns[cur].l) >= 0 {
				cur = u.rotateRight(cur)
			} else {
				u.ns[cur].l = u.rotateLeft(u.ns[cur].l)
				cur = u.rotateRight(cur)
			}
		} else if bf < -1 {
			if u.balanceAt(u.ns[cur].r) <= 0 {
				cur = u.rotateLeft(cur)
			} else {
				u.ns[cur].r = u.rotateRight(u.ns[cur].r)
				cur = u.rotateLeft(cur)
			}
		}
	}
	return cur, ok
}

// Remove [Tree.Remove]. Recursive. The freed slot is reused by a later
// Insert before the arena grows again.
// Time: O(D)
func (u *ArrAVL[T, S]) Remove(v T) bool {
	root, ok := u.remove(u.root, v)
	u.root = root
	if ok {
		u.sz--
	}
	return ok
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *ArrAVL[T, S]) Has(v T) bool {
	for cur := u.root; cur != 0; {
		if v < u.ns[cur].v {
			cur = u.ns[cur].l
		} else if v > u.ns[cur].v {
			cur = u.ns[cur].r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
func (u *ArrAVL[T, S]) Minimum() (T, bool) {
	if cur := u.root; cur != 0 {
		for u.ns[cur].l != 0 {
			cur = u.ns[cur].l
		}
		return u.ns[cur].v, true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
func (u *ArrAVL[T, S]) Maximum() (T, bool) {
	if cur := u.root; cur != 0 {
		for u.ns[cur].r != 0 {
			cur = u.ns[cur].r
		}
		return u.ns[cur].v, true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
func (u *ArrAVL[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if v <= u.ns[cur].v {
			cur = u.ns[cur].l
		} else {
			p = cur
			cur = u.ns[cur].r
		}
	}
	return u.ns[p].v, p != 0
}

// Successor [Tree.Successor]
func (u *ArrAVL[T, S]) Successor(v T) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if v < u.ns[cur].v {
			p = cur
			cur = u.ns[cur].l
		} else {
			cur = u.ns[cur].r
		}
	}
	return u.ns[p].v, p != 0
}

// Size [Tree.Size]
func (u *ArrAVL[T, S]) Size() uint {
	return u.sz
}

// Height [Tree.Height]
func (u *ArrAVL[T, S]) Height() uint {
	return uint(u.heightAt(u.root))
}

// Clear the tree. The arena keeps its capacity; the free list is discarded
// since every slot is free again.
func (u *ArrAVL[T, S]) Clear() {
	u.ns = u.ns[:1]
	u.root, u.free, u.sz = 0, 0, 0
}

// InOrder [Tree.InOrder]
func (u *ArrAVL[T, S]) InOrder() func() (T, bool) {
	st := make([]S, 0, u.heightAt(u.root))
	for c := u.root; c != 0; c = u.ns[c].l {
		st = append(st, c)
	}
	return func() (T, bool) {
		if len(st) == 0 {
			return *new(T), false
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := u.ns[cur].r; c != 0; c = u.ns[c].l {
			st = append(st, c)
		}
		return u.ns[cur].v, true
	}
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *ArrAVL[T, S]) Corrupt() bool {
	_, n, bad := u.audit(u.root, nil, nil)
	return bad || n != u.sz
}

func (u *ArrAVL[T, S]) audit(cur S, lo, hi *T) (uint8, uint, bool) {
	if cur == 0 {
		return 0, 0, false
	}
	if (lo != nil && u.ns[cur].v <= *lo) || (hi != nil && u.ns[cur].v >= *hi) {
		return 0, 0, true
	}
	v := u.ns[cur].v
	lh, ln, bad := u.audit(u.ns[cur].l, lo, &v)
	if bad {
		return 0, 0, true
	}
	rh, rn, bad := u.audit(u.ns[cur].r, &v, hi)
	if bad {
		return 0, 0, true
	}
	if d := int(lh) - int(rh); d < -1 || d > 1 {
		return 0, 0, true
	}
	h := max(lh, rh) + 1
	return h, ln + rn + 1, h != u.ns[cur].h
}
