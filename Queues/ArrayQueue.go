package Queues

// circArrQ is a circular-buffer queue. head is the index of the oldest item,
// tail the index one past the newest; both wrap around len(content).
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an empty Queue backed by a circular array with room
// for initCap items before the first grow.
func MakeArrayQueue[T any](initCap uint) Queue[T] {
	if initCap == 0 {
		initCap = 1
	}
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

func (u *circArrQ[T]) Clear() {
	clear(u.content) // drop references so the GC can reclaim queued items
	u.sz, u.head, u.tail = 0, 0, 0
}

// grow to newLen, unwrapping the circular contents to the front.
func (u *circArrQ[T]) grow(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.head, u.tail = 0, u.sz
	u.content = nc
}

func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.grow(u.sz * 2)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, true
}

func (u *circArrQ[T]) Peek() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	return u.content[u.head], true
}
