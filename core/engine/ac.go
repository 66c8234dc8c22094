package engine

/*
Aho–Corasick multi-pattern matcher.

- Build(patterns) builds the trie, resolves failure links breadth-first and
  folds them into a complete transition table, so scanning costs one table
  lookup per input byte regardless of how many patterns there are.
- Bytes that occur in no pattern share a single column (class 0) that always
  leads back to the root.
- Matching is exact and case-sensitive; callers normalize case first.
*/

// Hit is the earliest pattern occurrence found by Find.
type Hit struct {
	End     int // exclusive end offset of the occurrence in seq
	Pattern int // index into the pattern list given to Build
}

// Matcher answers "does seq contain any pattern" queries. It is immutable
// after Build and safe for concurrent use.
type Matcher struct {
	class    [256]uint8
	width    int
	delta    []int32 // state*width + class -> next state
	match    []int32 // pattern ending at (or suffix-reachable from) state, -1 if none
	patterns [][]byte
}

// Build constructs the automaton. Empty patterns are skipped; a matcher with
// no patterns never matches.
func Build(patterns [][]byte) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		if len(p) == 0 {
			continue
		}
		m.patterns = append(m.patterns, append([]byte(nil), p...))
	}

	// 1) Byte classes
	next := 1
	for _, p := range m.patterns {
		for _, b := range p {
			if m.class[b] == 0 {
				if next > 255 {
					// every byte value is used; fall back to identity classes
					for i := range m.class {
						m.class[i] = uint8(i)
					}
					next = 256
					break
				}
				m.class[b] = uint8(next)
				next++
			}
		}
		if next == 256 {
			break
		}
	}
	m.width = next

	// 2) Trie edges; state 0 = root, 0 in delta => absent
	m.delta = make([]int32, m.width)
	m.match = []int32{-1}
	for i, p := range m.patterns {
		cur := 0
		for _, b := range p {
			c := int(m.class[b])
			if m.delta[cur*m.width+c] == 0 {
				m.delta = append(m.delta, make([]int32, m.width)...)
				m.match = append(m.match, -1)
				m.delta[cur*m.width+c] = int32(len(m.match) - 1)
			}
			cur = int(m.delta[cur*m.width+c])
		}
		if m.match[cur] < 0 {
			m.match[cur] = int32(i)
		}
	}

	// 3) BFS: failure links folded into delta, outputs inherited along them
	fail := make([]int32, len(m.match))
	queue := make([]int32, 0, len(m.match))
	for c := 0; c < m.width; c++ {
		if child := m.delta[c]; child != 0 {
			fail[child] = 0
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		f := fail[r]
		if m.match[r] < 0 {
			m.match[r] = m.match[f]
		}
		row := int(r) * m.width
		frow := int(f) * m.width
		for c := 0; c < m.width; c++ {
			s := m.delta[row+c]
			if s == 0 {
				m.delta[row+c] = m.delta[frow+c]
				continue
			}
			fail[s] = m.delta[frow+c]
			queue = append(queue, s)
		}
	}
	return m
}

// Len returns the number of (non-empty) patterns.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.patterns)
}

// Pattern returns pattern i as given to Build.
func (m *Matcher) Pattern(i int) []byte { return m.patterns[i] }

// States returns the number of automaton states, including the root.
func (m *Matcher) States() int {
	if m == nil {
		return 0
	}
	return len(m.match)
}

// ContainsAny reports whether seq contains at least one pattern.
func (m *Matcher) ContainsAny(seq []byte) bool {
	_, ok := m.Find(seq)
	return ok
}

// Find returns the occurrence with the smallest end offset.
func (m *Matcher) Find(seq []byte) (Hit, bool) {
	if m == nil || len(m.patterns) == 0 {
		return Hit{}, false
	}
	state := int32(0)
	for i := 0; i < len(seq); i++ {
		state = m.delta[int(state)*m.width+int(m.class[seq[i]])]
		if p := m.match[state]; p >= 0 {
			return Hit{End: i + 1, Pattern: int(p)}, true
		}
	}
	return Hit{}, false
}
