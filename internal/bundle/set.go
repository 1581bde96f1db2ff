package bundle

type set[K comparable] map[K]struct{}

func makeSetFromSlice[K comparable](a []K) set[K] {
	s := set[K]{}
	for _, elem := range a {
		s[elem] = struct{}{}
	}
	return s
}

func (s set[K]) has(k K) bool {
	_, ok := s[k]
	return ok
}

func (s set[K]) add(k K) {
	s[k] = struct{}{}
}
