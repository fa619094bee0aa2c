package engine

// Pool recycles transient entities to keep per-tick allocation flat
type Pool[T any] struct {
	free      []*T
	newFn     func() *T
	resetFn   func(*T)
	allocated int
}

// NewPool creates a pool; resetFn runs on every returned item and may be nil
func NewPool[T any](newFn func() *T, resetFn func(*T)) *Pool[T] {
	return &Pool[T]{newFn: newFn, resetFn: resetFn}
}

// Get returns a recycled item or a fresh one
func (p *Pool[T]) Get() *T {
	if n := len(p.free); n > 0 {
		item := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return item
	}
	p.allocated++
	return p.newFn()
}

// Put returns items to the pool
func (p *Pool[T]) Put(items ...*T) {
	for _, item := range items {
		if item == nil {
			continue
		}
		if p.resetFn != nil {
			p.resetFn(item)
		}
		p.free = append(p.free, item)
	}
}

// Free returns the number of idle items
func (p *Pool[T]) Free() int {
	return len(p.free)
}

// Allocated returns the number of items ever created by the pool
func (p *Pool[T]) Allocated() int {
	return p.allocated
}

// LiveSet is the ordered set of in-use entities
// Removal is batched through Sweep so iteration never sees a mutated slice
type LiveSet[T any] struct {
	items []*T
}

// NewLiveSet creates an empty set with the given capacity hint
func NewLiveSet[T any](capacity int) *LiveSet[T] {
	return &LiveSet[T]{items: make([]*T, 0, capacity)}
}

// Add appends an item
func (s *LiveSet[T]) Add(item *T) {
	s.items = append(s.items, item)
}

// Items returns the backing slice; callers must not retain it across a Sweep
func (s *LiveSet[T]) Items() []*T {
	return s.items
}

// Len returns the number of live items
func (s *LiveSet[T]) Len() int {
	return len(s.items)
}

// Sweep removes every marked item, preserving order of the rest, and returns the removed items
func (s *LiveSet[T]) Sweep(marked map[*T]struct{}) []*T {
	if len(marked) == 0 {
		return nil
	}
	removed := make([]*T, 0, len(marked))
	kept := s.items[:0]
	for _, item := range s.items {
		if _, ok := marked[item]; ok {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	// Clear the tail so removed pointers are not pinned
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return removed
}

// Drain removes every item and returns them
func (s *LiveSet[T]) Drain() []*T {
	out := make([]*T, len(s.items))
	copy(out, s.items)
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
	return out
}
