// Package selection holds the single expanded or selected item of a list.
package selection

// Selection holds at most one id. The zero value holds nothing.
type Selection[K comparable] struct {
	id  K
	set bool
}

// Select holds id, or clears the selection when id is already held.
func (s *Selection[K]) Select(id K) {
	if s.set && s.id == id {
		s.Clear()
		return
	}
	s.id = id
	s.set = true
}

// Clear drops the held id.
func (s *Selection[K]) Clear() {
	var zero K
	s.id = zero
	s.set = false
}

// Current returns the held id and whether there is one.
func (s Selection[K]) Current() (K, bool) {
	return s.id, s.set
}

// IsSelected reports whether id is held.
func (s Selection[K]) IsSelected(id K) bool {
	return s.set && s.id == id
}
