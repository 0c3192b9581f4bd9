// Package tagset implements the commit behavior shared by the form's
// tag-like multi-value fields (skills, topics of interest, audience): a tag
// is committed when non-empty after trimming and not already present, and
// insertion order is preserved.
package tagset

import "strings"

// List is an ordered set of tags.
type List struct {
	values []string
}

// Add commits raw as a tag. Blank input and duplicates are ignored.
func (l *List) Add(raw string) {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return
	}
	for _, v := range l.values {
		if v == tag {
			return
		}
	}
	l.values = append(l.values, tag)
}

// Remove drops the tag equal to v, if present.
func (l *List) Remove(v string) {
	for i, t := range l.values {
		if t == v {
			l.values = append(l.values[:i], l.values[i+1:]...)
			return
		}
	}
}

// Values returns the committed tags in insertion order.
func (l *List) Values() []string {
	return l.values
}

// Normalize applies the commit rules to an already collected slice: trims
// each entry, drops blanks, and keeps the first occurrence of duplicates.
func Normalize(raw []string) []string {
	var l List
	for _, r := range raw {
		l.Add(r)
	}
	return l.Values()
}
