package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultSetterPrefix marks a method SetName(v) as the setter of property Name.
	DefaultSetterPrefix = "Set"
	// DefaultGetterPrefix lets a destination member Name be fed by a source method GetName().
	DefaultGetterPrefix = "Get"
)

// Conventions holds the naming rules that turn Go methods into properties.
type Conventions struct {
	SetterPrefix   string
	GetterPrefixes []string
}

// DefaultConventions returns the Set/Get conventions.
func DefaultConventions() Conventions {
	return Conventions{
		SetterPrefix:   DefaultSetterPrefix,
		GetterPrefixes: []string{DefaultGetterPrefix},
	}
}

// SetterName returns the setter method name for a property.
func (c Conventions) SetterName(property string) string {
	return c.setterPrefix() + property
}

// PropertyForSetter returns the property a setter method writes, if name follows
// the setter convention. "Set" alone, or "Settle", are not setters.
func (c Conventions) PropertyForSetter(name string) (string, bool) {
	prefix := c.setterPrefix()
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return "", false
	}
	return rest, true
}

// SourceMethodNames lists the no-arg method names that may feed a member, in
// lookup order: the bare name first, then each getter prefix.
func (c Conventions) SourceMethodNames(member string) []string {
	names := make([]string, 0, len(c.GetterPrefixes)+1)
	names = append(names, member)
	for _, p := range c.GetterPrefixes {
		if p == "" {
			continue
		}
		names = append(names, p+member)
	}
	return names
}

func (c Conventions) setterPrefix() string {
	if c.SetterPrefix == "" {
		return DefaultSetterPrefix
	}
	return c.SetterPrefix
}
