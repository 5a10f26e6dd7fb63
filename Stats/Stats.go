// Package Stats provides tracers that count the internal work a tree does:
// comparisons during descents and rotations by imbalance case. Counters
// attach to a tree at construction and accumulate until reset, so one
// counter can span a whole workload.
package Stats

import (
	"fmt"

	"github.com/g-m-twostay/go-avl/Trees"
)

// Counters tallies tracer callbacks. Not safe for concurrent use, matching
// the trees it observes. The zero value is ready to use.
type Counters[T any] struct {
	ByKind      [4]uint64 // indexed by Trees.Rotation
	Comparisons uint64
}

var _ Trees.Tracer[int] = (*Counters[int])(nil)

func (u *Counters[T]) Rotated(kind Trees.Rotation, _ T) {
	u.ByKind[kind]++
}

func (u *Counters[T]) Compared() {
	u.Comparisons++
}

// Rotations is the total across all four cases.
func (u *Counters[T]) Rotations() uint64 {
	var t uint64
	for _, c := range u.ByKind {
		t += c
	}
	return t
}

// Singles counts LL and RR rotations.
func (u *Counters[T]) Singles() uint64 {
	return u.ByKind[Trees.RotationLL] + u.ByKind[Trees.RotationRR]
}

// Doubles counts LR and RL rotations.
func (u *Counters[T]) Doubles() uint64 {
	return u.ByKind[Trees.RotationLR] + u.ByKind[Trees.RotationRL]
}

func (u *Counters[T]) Reset() {
	*u = Counters[T]{}
}

func (u *Counters[T]) String() string {
	return fmt.Sprintf("comparisons=%d rotations=%d (LL=%d RR=%d LR=%d RL=%d)",
		u.Comparisons, u.Rotations(),
		u.ByKind[Trees.RotationLL], u.ByKind[Trees.RotationRR],
		u.ByKind[Trees.RotationLR], u.ByKind[Trees.RotationRL])
}

// Log records every rotation in order, for replaying or asserting on the
// exact rebalancing sequence of a workload. Embeds Counters so totals stay
// available.
type Log[T any] struct {
	Counters[T]
	Events []Event[T]
}

type Event[T any] struct {
	Kind  Trees.Rotation
	Pivot T
}

var _ Trees.Tracer[int] = (*Log[int])(nil)

func (u *Log[T]) Rotated(kind Trees.Rotation, pivot T) {
	u.Counters.Rotated(kind, pivot)
	u.Events = append(u.Events, Event[T]{kind, pivot})
}

func (u *Log[T]) Reset() {
	u.Counters.Reset()
	u.Events = u.Events[:0]
}
