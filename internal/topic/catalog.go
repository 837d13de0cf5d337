package topic

import (
	"fmt"
	"sort"
)

// Topic is a single scored subject area. Proficiency is tracked per topic,
// so the ID doubles as the history partition key.
type Topic struct {
	ID          string
	DisplayName string
}

// NotFoundError reports a lookup against an ID the catalog has never seen.
type NotFoundError struct {
	Kind string // "topic" or "tier"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.ID)
}

// Catalog holds the set of known topics. The engine validates every request
// against a catalog before touching any collaborator.
type Catalog struct {
	byID  map[string]Topic
	order []string
}

// NewCatalog builds a catalog from a topic list. Duplicate IDs keep the
// first registration.
func NewCatalog(topics []Topic) *Catalog {
	c := &Catalog{byID: make(map[string]Topic, len(topics))}
	for _, t := range topics {
		if _, ok := c.byID[t.ID]; ok {
			continue
		}
		c.byID[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	return c
}

// Get returns the topic with the given ID.
func (c *Catalog) Get(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, &NotFoundError{Kind: "topic", ID: id}
	}
	return t, nil
}

// Contains reports whether the catalog knows the topic ID.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IDs returns all topic IDs in registration order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of registered topics.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// SortedIDs returns all topic IDs in lexical order, for stable display.
func (c *Catalog) SortedIDs() []string {
	ids := c.IDs()
	sort.Strings(ids)
	return ids
}
