package reveal

// Set is a set of revealed ids. Sets returned by a Tracker are copies.
type Set[K comparable] map[K]struct{}

// Has reports whether id is a member.
func (s Set[K]) Has(id K) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s Set[K]) Len() int { return len(s) }

// Members returns the ids in no particular order.
func (s Set[K]) Members() []K {
	out := make([]K, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

func (s Set[K]) add(id K) { s[id] = struct{}{} }

func (s Set[K]) clone() Set[K] {
	out := make(Set[K], len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
