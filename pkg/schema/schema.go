// Package schema provides the relation schema registry and the ordered,
// relation-qualified attribute lists used during tree construction.
//
// A Schema lives for one compilation pass: it is seeded by the caller,
// grows as assignment and definition statements are processed, and is
// discarded afterward. It is owned by a single tree builder and is never
// shared across goroutines.
package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Schema maps relation names to their ordered attribute names.
// Relation names are lower-cased on insertion and lookup.
type Schema struct {
	relations map[string][]string
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{relations: map[string][]string{}}
}

// FromMap builds a schema from a name to attribute-list mapping,
// normalizing relation names.
func FromMap(m map[string][]string) *Schema {
	s := New()
	for name, attrs := range m {
		s.relations[strings.ToLower(name)] = append([]string(nil), attrs...)
	}
	return s
}

// Contains reports whether the relation exists.
func (s *Schema) Contains(name string) bool {
	_, ok := s.relations[strings.ToLower(name)]
	return ok
}

// Attributes returns a copy of the relation's attribute names.
func (s *Schema) Attributes(name string) ([]string, error) {
	attrs, ok := s.relations[strings.ToLower(name)]
	if !ok {
		return nil, &RelationError{Msg: fmt.Sprintf("relation %q does not exist", name)}
	}
	return append([]string(nil), attrs...), nil
}

// Add registers a relation. It fails if the name is already present.
func (s *Schema) Add(name string, attrs []string) error {
	key := strings.ToLower(name)
	if _, ok := s.relations[key]; ok {
		return &RelationError{Msg: fmt.Sprintf("relation %q already exists", name)}
	}
	s.relations[key] = append([]string(nil), attrs...)
	return nil
}

// Relations returns the registered relation names, sorted.
func (s *Schema) Relations() []string {
	names := make([]string, 0, len(s.relations))
	for name := range s.relations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToMap returns a copy of the full schema contents.
func (s *Schema) ToMap() map[string][]string {
	m := make(map[string][]string, len(s.relations))
	for name, attrs := range s.relations {
		m[name] = append([]string(nil), attrs...)
	}
	return m
}
