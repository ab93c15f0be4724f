package service

import (
	"encoding/json"
	"strings"
)

// Tag is one label from the fixed tag vocabulary.
type Tag string

// The tag vocabulary. Tasks carry any subset of these.
const (
	TagWork         Tag = "Work"
	TagPersonal     Tag = "Personal"
	TagUrgent       Tag = "Urgent"
	TagImportant    Tag = "Important"
	TagLowPriority  Tag = "Low Priority"
	TagHighPriority Tag = "High Priority"
)

// AllTags lists the vocabulary in display order.
var AllTags = []Tag{
	TagWork,
	TagPersonal,
	TagUrgent,
	TagImportant,
	TagLowPriority,
	TagHighPriority,
}

// tagJoin separates tags in the wire representation of a tag set.
const tagJoin = ", "

// TagSet is an ordered set of tags. On the wire it is a single string,
// the tags joined with ", "; the empty set is the empty string.
type TagSet []Tag

// ParseTagSet parses the wire representation of a tag set.
// Blank segments are dropped and duplicates collapse to the first occurrence.
func ParseTagSet(s string) TagSet {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var set TagSet
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set = set.Add(Tag(part))
	}
	return set
}

// String returns the wire representation.
func (s TagSet) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = string(t)
	}
	return strings.Join(parts, tagJoin)
}

// Has reports whether the set contains t.
func (s TagSet) Has(t Tag) bool {
	for _, have := range s {
		if have == t {
			return true
		}
	}
	return false
}

// Add returns a set containing t. Order of existing tags is preserved.
func (s TagSet) Add(t Tag) TagSet {
	if s.Has(t) {
		return s
	}
	return append(s, t)
}

// Remove returns a set without t.
func (s TagSet) Remove(t Tag) TagSet {
	for i, have := range s {
		if have == t {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// Toggle adds t if absent and removes it if present.
func (s TagSet) Toggle(t Tag) TagSet {
	if s.Has(t) {
		return s.Remove(t)
	}
	return s.Add(t)
}

// Clone returns an independent copy of the set.
func (s TagSet) Clone() TagSet {
	if s == nil {
		return nil
	}
	out := make(TagSet, len(s))
	copy(out, s)
	return out
}

// MarshalJSON writes the set as its joined wire string.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON reads the joined wire string.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseTagSet(raw)
	return nil
}
