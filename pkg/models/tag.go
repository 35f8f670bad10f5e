package models

import "strings"

// NormalizeTag trims raw input into a tag.
// Returns false if nothing is left after trimming.
func NormalizeTag(raw string) (string, bool) {
	tag := strings.TrimSpace(raw)
	return tag, tag != ""
}

// SameTag reports whether two tags are equal under case folding.
func SameTag(a, b string) bool {
	return strings.EqualFold(a, b)
}

// TagList is an ordered list of tags with no case-insensitive duplicates.
type TagList []string

// Valid returns true if every tag is non-empty and trimmed and no two tags
// are equal under case folding.
func (l TagList) Valid() bool {
	seen := make(map[string]struct{}, len(l))
	for _, tag := range l {
		if norm, ok := NormalizeTag(tag); !ok || norm != tag {
			return false
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// Contains reports whether the list holds a tag equal to tag under case folding.
func (l TagList) Contains(tag string) bool {
	for _, t := range l {
		if SameTag(t, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy of the list.
func (l TagList) Clone() TagList {
	if l == nil {
		return nil
	}
	out := make(TagList, len(l))
	copy(out, l)
	return out
}
