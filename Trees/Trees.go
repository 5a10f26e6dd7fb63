// Package Trees implements ordered search trees. AVLTree is the primary
// structure: a height-balanced binary search tree whose operations are all
// O(log n). BSTree is a plain unbalanced search tree with the same surface,
// kept for experiments that show what the balancing buys. ArrAVL is an
// index/arena variant of AVLTree that stores nodes in a growable slice.
//
// None of the trees are safe for concurrent use; either access from a single
// goroutine or synchronize externally.
package Trees

// Tree represents an ordered set implemented as a search tree.
// Receivers that have A bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty tree returns (x T, false); x should not be used in that case.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v into the Tree. Returns true if v was added, false if v
	//was already present (the tree is left unchanged).
	Insert(v T) bool
	//Remove v from the Tree. Returns true if v was removed, false if v
	//wasn't present (the tree is left unchanged).
	Remove(v T) bool
	//Has reports whether v is in the tree.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Height of the tree; 0 when empty, 1 for a single node.
	Height() uint
	//InOrder returns A closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree, which for a
	//search tree is strictly ascending order.
	//Calling f is like calling "Next()" of iterators: val, valid=f().
	//val is meaningful only if valid is true. valid can't turn true
	//after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree violates its structural
	//properties: search-tree ordering and, for balanced variants, the
	//balance and stored-height invariants.
	Corrupt() bool
}

// Rotation identifies which imbalance case a rebalancing step resolved.
// LL and RR are single rotations, LR and RL are double rotations.
type Rotation byte

const (
	RotationLL Rotation = iota // left-left: single right rotation
	RotationRR                 // right-right: single left rotation
	RotationLR                 // left rotation on the left child, then right rotation
	RotationRL                 // right rotation on the right child, then left rotation
)

func (r Rotation) String() string {
	switch r {
	case RotationLL:
		return "LL"
	case RotationRR:
		return "RR"
	case RotationLR:
		return "LR"
	case RotationRL:
		return "RL"
	}
	return "??"
}

// Tracer observes the internals of a tree without being part of its
// correctness contract. A tracer belongs to the caller; the trees never
// allocate one themselves and never keep one in global state. All callbacks
// run synchronously inside the operation that triggered them.
type Tracer[T any] interface {
	//Rotated is called once per rebalancing step with the resolved case
	//and the value at the subtree root that was rebalanced. A double
	//rotation reports once, not twice.
	Rotated(kind Rotation, pivot T)
	//Compared is called for every key ordering decision made during a
	//descent.
	Compared()
}

// Collect drains an iterator closure returned by the traversal methods
// into a slice.
func Collect[T any](next func() (T, bool)) []T {
	var s []T
	for v, ok := next(); ok; v, ok = next() {
		s = append(s, v)
	}
	return s
}
