// Package charset computes the set of distinct characters of a string. It is
// the value the demo cells defer.
package charset

import "sort"

type Set map[rune]struct{}

// Of returns the distinct characters of s.
func Of(s string) Set {
	set := make(Set, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Remove deletes every character of s from the set.
func (s Set) Remove(chars string) {
	for _, r := range chars {
		delete(s, r)
	}
}

// Sorted returns the characters in code point order.
func (s Set) Sorted() []string {
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
