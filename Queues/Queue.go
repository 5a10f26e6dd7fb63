// Package Queues holds the FIFO support structures used by the tree
// traversals.
package Queues

// Queue is a FIFO of T. Implementations aren't safe for concurrent use.
type Queue[T any] interface {
	Push(item T)
	//Pop removes and returns the oldest item; the bool is false when the
	//queue is empty.
	Pop() (T, bool)
	//Peek returns the oldest item without removing it; the bool is false
	//when the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
	Clear()
}
