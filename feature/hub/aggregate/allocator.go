package aggregate

// IDAllocator hands out teacher ids above every id it has observed.
type IDAllocator struct {
	next int
}

// Observe records an id that is already taken.
func (a *IDAllocator) Observe(id int) {
	if id >= a.next {
		a.next = id + 1
	}
}

// Allocate returns a fresh id, one greater than the current maximum.
func (a *IDAllocator) Allocate() int {
	id := a.next
	a.next++
	return id
}
