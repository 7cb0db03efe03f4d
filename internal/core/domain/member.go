package domain

import "slices"

// MemberKind distinguishes data fields from getter-backed properties.
type MemberKind uint8

const (
	// KindField is an exported struct field.
	KindField MemberKind = iota + 1
	// KindProperty is an exported getter method, optionally paired with a setter.
	KindProperty
)

// String returns the lowercase name of the kind.
func (k MemberKind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// MemberCandidate is one member found on one candidate type during discovery.
// S carries the introspection facility's own handle for the member.
type MemberCandidate[S any] struct {
	Name     InternedString
	Kind     MemberKind
	Readable bool
	Writable bool
	// Indexed marks getters that take arguments. They are never readable members.
	Indexed bool
	// Declarer is the name of the candidate type the member was found on.
	Declarer string
	// Index is the field path from the subject to the field, or to the receiver
	// that declares the property. Nil means the subject itself.
	Index  []int
	Source S
}

// ReadWrite reports whether the candidate can be both read and written.
func (c MemberCandidate[S]) ReadWrite() bool {
	return c.Readable && c.Writable
}

// SelectReadable reduces the candidates collected from every candidate type to
// the readable member list.
//
// Fields pass through untouched, duplicates included. Readable, non-indexed
// properties are grouped by name in first-seen order and each group keeps the
// first declaration that is both readable and writable, or else the first one.
// The result lists the properties first, then the fields in encounter order.
func SelectReadable[S any](candidates []MemberCandidate[S]) []MemberCandidate[S] {
	var (
		fields []MemberCandidate[S]
		order  []InternedString
		groups = make(map[InternedString][]MemberCandidate[S])
	)

	for _, c := range candidates {
		switch c.Kind {
		case KindField:
			fields = append(fields, c)
		case KindProperty:
			if !c.Readable || c.Indexed {
				continue
			}
			if _, seen := groups[c.Name]; !seen {
				order = append(order, c.Name)
			}
			groups[c.Name] = append(groups[c.Name], c)
		}
	}

	selected := make([]MemberCandidate[S], 0, len(order)+len(fields))
	for _, name := range order {
		group := groups[name]
		if i := slices.IndexFunc(group, MemberCandidate[S].ReadWrite); i >= 0 {
			selected = append(selected, group[i])
			continue
		}
		selected = append(selected, group[0])
	}

	return append(selected, fields...)
}
