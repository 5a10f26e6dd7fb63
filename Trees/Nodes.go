package Trees

// A node in the AVLTree.
// The zero value is meaningless; nodes are only created by insertion.
type node[T any] struct {
	v    T
	l, r nodePtr[T]
	h    uint8 // height of the subtree rooted here, >=1. height(nil)=0.
}

// Pointer to a node. nil represents an absent subtree.
type nodePtr[T any] *node[T]

func height[T any](n nodePtr[T]) uint8 {
	if n == nil {
		return 0
	}
	return n.h
}

// balanceOf is height(left)-height(right). The AVL invariant bounds it to
// {-1,0,1} between operations; it reaches ±2 transiently during rebalancing.
func balanceOf[T any](n nodePtr[T]) int {
	if n == nil {
		return 0
	}
	return int(height(n.l)) - int(height(n.r))
}

func (n *node[T]) updateHeight() {
	n.h = max(height(n.l), height(n.r)) + 1
}

// rotateRight performs a right rotation on the subtree slot n. n is passed
// by reference so the parent's child slot receives the new subtree root.
// The left child must exist; a nil left child means the caller's balance
// bookkeeping is broken, not a user-facing condition.
// Heights are recomputed child before parent.
// Time: O(1); Space: O(1)
func rotateRight[T any](n *nodePtr[T]) {
	y := *n
	x := y.l
	if x == nil {
		panic("Trees: right rotation on a node with no left child")
	}
	y.l = x.r
	x.r = y
	(*node[T])(y).updateHeight()
	(*node[T])(x).updateHeight()
	*n = x
}

// rotateLeft is the mirror of rotateRight; the right child must exist.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n *nodePtr[T]) {
	x := *n
	y := x.r
	if y == nil {
		panic("Trees: left rotation on a node with no right child")
	}
	x.r = y.l
	y.l = x
	(*node[T])(x).updateHeight()
	(*node[T])(y).updateHeight()
	*n = y
}

// Node is a read-only view of a tree node, for presentation layers that
// render structure. The zero Node is absent; Present distinguishes it.
// A Node must not be retained across mutations of the owning tree.
type Node[T any] struct {
	n nodePtr[T]
}

// Present reports whether the view refers to an actual node.
func (nd Node[T]) Present() bool {
	return nd.n != nil
}

// Key stored at the node. Returns the zero value for an absent node.
func (nd Node[T]) Key() (v T) {
	if nd.n != nil {
		v = nd.n.v
	}
	return
}

// Height of the subtree rooted at the node; 0 for an absent node.
func (nd Node[T]) Height() uint {
	return uint(height(nd.n))
}

// Balance factor of the node; 0 for an absent node.
func (nd Node[T]) Balance() int {
	return balanceOf(nd.n)
}

func (nd Node[T]) Left() Node[T] {
	if nd.n == nil {
		return Node[T]{}
	}
	return Node[T]{nd.n.l}
}

func (nd Node[T]) Right() Node[T] {
	if nd.n == nil {
		return Node[T]{}
	}
	return Node[T]{nd.n.r}
}
