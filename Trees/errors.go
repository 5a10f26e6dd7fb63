package Trees

import "fmt"

// InvalidSliceError reports the first out-of-order pair found when a bulk
// constructor validates its input slice.
type InvalidSliceError[T any] struct {
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: slice isn't strictly ascending: %v followed by %v", e.Prev, e.Next)
}
