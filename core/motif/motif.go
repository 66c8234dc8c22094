// Package motif normalizes motif strings and expands them with their reverse
// complements into frozen search sets.
package motif

import "sort"

// Set is a sorted, deduplicated list of lowercase search patterns.
// A Set returned by Expand must not be modified.
type Set []string

// Group is a named collection of raw motifs, as configured.
type Group struct {
	Name   string
	Motifs []string
}

// Expand lowercases every motif and adds the lowercase reverse complement of
// each. Empty motifs are ignored.
func Expand(raw ...string) Set {
	seen := make(map[string]struct{}, 2*len(raw))
	for _, m := range raw {
		if m == "" {
			continue
		}
		lo := lowerASCII([]byte(m))
		seen[string(lo)] = struct{}{}
		seen[string(lowerASCII(RevComp(lo)))] = struct{}{}
	}
	out := make(Set, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// lowerASCII folds A-Z in place and leaves every other byte as is.
func lowerASCII(b []byte) []byte {
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return b
}

// SearchSet expands the group's motifs.
func (g Group) SearchSet() Set { return Expand(g.Motifs...) }

// Contains reports whether s is a member of the set.
func (s Set) Contains(p string) bool {
	i := sort.SearchStrings(s, p)
	return i < len(s) && s[i] == p
}

// Patterns returns the members as byte slices, the form the matcher consumes.
func (s Set) Patterns() [][]byte {
	out := make([][]byte, len(s))
	for i, p := range s {
		out[i] = []byte(p)
	}
	return out
}
