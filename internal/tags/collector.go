// Package tags implements the free-text tag input used for skills and
// interests. A Collector keeps tags in insertion order and rejects
// case-insensitive duplicates.
package tags

import "github.com/ShayCichocki/careercraft/pkg/models"

// Collector holds an ordered, deduplicated list of tags.
// All mutation goes through Add and Remove.
type Collector struct {
	label string
	tags  models.TagList
}

// New creates an empty Collector. The label ("skill", "interest") is used
// by views and log fields.
func New(label string) *Collector {
	return &Collector{label: label}
}

// Label returns the collector's label.
func (c *Collector) Label() string {
	return c.label
}

// Add trims raw and appends it unless it is empty or already present under
// case-insensitive comparison. Returns true if the list changed.
func (c *Collector) Add(raw string) bool {
	tag, ok := models.NormalizeTag(raw)
	if !ok || c.tags.Contains(tag) {
		return false
	}
	c.tags = append(c.tags, tag)
	return true
}

// Remove deletes the first element exactly equal to tag.
// Returns false if no element matched.
func (c *Collector) Remove(tag string) bool {
	for i, t := range c.tags {
		if t == tag {
			c.tags = append(c.tags[:i], c.tags[i+1:]...)
			return true
		}
	}
	return false
}

// Tags returns a copy of the current list in insertion order.
func (c *Collector) Tags() []string {
	return c.tags.Clone()
}

// Len returns the number of tags.
func (c *Collector) Len() int {
	return len(c.tags)
}

// Contains reports whether tag is present under case-insensitive comparison.
func (c *Collector) Contains(tag string) bool {
	return c.tags.Contains(tag)
}

// Last returns the most recently added tag, or "" if empty.
func (c *Collector) Last() string {
	if len(c.tags) == 0 {
		return ""
	}
	return c.tags[len(c.tags)-1]
}

// Reset removes all tags.
func (c *Collector) Reset() {
	c.tags = nil
}
