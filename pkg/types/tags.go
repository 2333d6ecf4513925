package types

import (
	"sort"
	"strings"
)

// UniversalTag is the tag that, when present, turns every file on by default.
const UniversalTag = "all"

// TagSet is an unordered collection of unique, case-sensitive tags.
type TagSet map[string]struct{}

// NewTagSet builds a set from the given tags, dropping duplicates and empty strings.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

// ParseTagSet reads one tag per line. Line terminators are chomped and blank
// lines are ignored.
func ParseTagSet(content string) TagSet {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return NewTagSet(lines...)
}

// Has reports whether tag is a member of the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Matches is true when tags is empty or any of tags is in the set.
func (s TagSet) Matches(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if s.Has(tag) {
			return true
		}
	}
	return false
}

// Merge returns the union of s and tags. Neither input is modified.
func (s TagSet) Merge(tags ...string) TagSet {
	merged := make(TagSet, len(s)+len(tags))
	for tag := range s {
		merged[tag] = struct{}{}
	}
	for _, tag := range tags {
		if tag != "" {
			merged[tag] = struct{}{}
		}
	}
	return merged
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Serialize renders the set in its storage format: sorted, one tag per line,
// with a trailing newline.
func (s TagSet) Serialize() string {
	var b strings.Builder
	for _, tag := range s.Sorted() {
		b.WriteString(tag)
		b.WriteByte('\n')
	}
	return b.String()
}
