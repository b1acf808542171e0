package schema

import (
	"fmt"
	"strings"
)

// Attribute is one entry in an attribute list: an attribute name tagged
// with its owning relation, if any.
type Attribute struct {
	Relation string
	Name     string
}

// Prefixed returns the relation-qualified form of the attribute, or the
// bare name when it has no owning relation.
func (a Attribute) Prefixed() string {
	if a.Relation != "" {
		return a.Relation + "." + a.Name
	}
	return a.Name
}

// AttributeList is an ordered sequence of attributes. Order is
// significant: SQL column alignment and LaTeX display both follow it.
type AttributeList struct {
	attrs []Attribute
}

// NewAttributeList builds a list from attribute names, each tagged with
// the given relation (which may be empty).
func NewAttributeList(names []string, relation string) *AttributeList {
	attrs := make([]Attribute, len(names))
	for i, name := range names {
		attrs[i] = Attribute{Relation: relation, Name: name}
	}
	return &AttributeList{attrs: attrs}
}

// Merge concatenates two lists for a join; entries keep the relation
// qualification of their source side.
func Merge(left, right *AttributeList) *AttributeList {
	attrs := make([]Attribute, 0, len(left.attrs)+len(right.attrs))
	attrs = append(attrs, left.attrs...)
	attrs = append(attrs, right.attrs...)
	return &AttributeList{attrs: attrs}
}

// Clone returns a deep copy of the list.
func (l *AttributeList) Clone() *AttributeList {
	return &AttributeList{attrs: append([]Attribute(nil), l.attrs...)}
}

// Len returns the number of attributes.
func (l *AttributeList) Len() int {
	return len(l.attrs)
}

// Names returns the unqualified attribute names, in order.
func (l *AttributeList) Names() []string {
	names := make([]string, len(l.attrs))
	for i, a := range l.attrs {
		names[i] = a.Name
	}
	return names
}

// Prefixed returns the qualified attribute references, in order.
func (l *AttributeList) Prefixed() []string {
	refs := make([]string, len(l.attrs))
	for i, a := range l.attrs {
		refs[i] = a.Prefixed()
	}
	return refs
}

// String renders the list as a comma-separated sequence of qualified
// references, the form used for SQL select blocks.
func (l *AttributeList) String() string {
	return strings.Join(l.Prefixed(), ", ")
}

// resolve finds the single attribute matching a bare or qualified
// reference. An unqualified name must be unique across the list; a
// qualified reference must match an entry's relation tag and name
// exactly.
func (l *AttributeList) resolve(ref string) (int, error) {
	relation, name, qualified := strings.Cut(ref, ".")
	if !qualified {
		relation, name = "", ref
	}

	found := -1
	for i, a := range l.attrs {
		if qualified {
			if a.Relation == relation && a.Name == name {
				return i, nil
			}
			continue
		}
		if a.Name == name {
			if found >= 0 {
				return -1, &AttributeError{Msg: fmt.Sprintf("ambiguous attribute reference %q", ref)}
			}
			found = i
		}
	}
	if found < 0 {
		return -1, &AttributeError{Msg: fmt.Sprintf("attribute %q does not exist", ref)}
	}
	return found, nil
}

// Validate checks that every reference resolves to exactly one entry.
func (l *AttributeList) Validate(refs []string) error {
	for _, ref := range refs {
		if _, err := l.resolve(ref); err != nil {
			return err
		}
	}
	return nil
}

// Trim filters the list, in place, to the requested attribute subset,
// in the requested order. It fails if any reference is absent or
// ambiguous.
func (l *AttributeList) Trim(refs []string) error {
	trimmed := make([]Attribute, len(refs))
	for i, ref := range refs {
		idx, err := l.resolve(ref)
		if err != nil {
			return err
		}
		trimmed[i] = l.attrs[idx]
	}
	l.attrs = trimmed
	return nil
}

// Rename retags every entry with the new relation name and, when a full
// name list is supplied, replaces attribute names positionally. It fails
// if the supplied count does not match the current attribute count.
func (l *AttributeList) Rename(names []string, relation string) error {
	if len(names) > 0 && len(names) != len(l.attrs) {
		return &InputError{Msg: "renaming requires a name for every attribute"}
	}
	for i := range l.attrs {
		l.attrs[i].Relation = relation
		if len(names) > 0 {
			l.attrs[i].Name = names[i]
		}
	}
	return nil
}

// Equal reports whether two lists hold the same attributes in the same
// order, including relation tags.
func (l *AttributeList) Equal(other *AttributeList) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.attrs) != len(other.attrs) {
		return false
	}
	for i := range l.attrs {
		if l.attrs[i] != other.attrs[i] {
			return false
		}
	}
	return true
}
