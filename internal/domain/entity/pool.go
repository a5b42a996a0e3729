package entity

// Slot is one entry of a Pool.
type Slot[T any] struct {
	Active bool
	Value  T
}

// Pool is a fixed-capacity slot table for transient entities.
// Slots are never freed, only deactivated and reused, so the number of
// concurrently active values can never exceed the capacity.
type Pool[T any] struct {
	slots []Slot[T]
}

// NewPool creates a pool with capacity slots, all inactive.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{slots: make([]Slot[T], capacity)}
}

// Cap returns the number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// ActiveCount returns the number of active slots.
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Spawn stores v in the lowest-index inactive slot and activates it.
// It returns the slot index, or -1 when every slot is active.
func (p *Pool[T]) Spawn(v T) int {
	for i := range p.slots {
		if !p.slots[i].Active {
			p.slots[i] = Slot[T]{Active: true, Value: v}
			return i
		}
	}
	return -1
}

// Get returns the value stored at slot i, or nil if i is out of range.
// The value is returned even for inactive slots.
func (p *Pool[T]) Get(i int) *T {
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	return &p.slots[i].Value
}

// IsActive reports whether slot i is active.
func (p *Pool[T]) IsActive(i int) bool {
	return i >= 0 && i < len(p.slots) && p.slots[i].Active
}

// Release deactivates slot i. Out of range indices are ignored.
func (p *Pool[T]) Release(i int) {
	if i < 0 || i >= len(p.slots) {
		return
	}
	p.slots[i].Active = false
}

// Reset deactivates every slot and clears stored values.
func (p *Pool[T]) Reset() {
	clear(p.slots)
}

// Each calls fn for every active slot in index order.
// Iteration stops early when fn returns false. fn may Release the slot it is given.
func (p *Pool[T]) Each(fn func(i int, v *T) bool) {
	for i := range p.slots {
		if !p.slots[i].Active {
			continue
		}
		if !fn(i, &p.slots[i].Value) {
			return
		}
	}
}
