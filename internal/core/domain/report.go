package domain

import (
	"strings"
	"time"
)

// PackageReport is the static discovery result for one Go package.
type PackageReport struct {
	Name  string
	Path  string
	Dir   string
	Types []TypeReport
}

// TypeReport describes one named type found by static inspection.
type TypeReport struct {
	Name      string
	Interface bool
	Members   []MemberReport
	Methods   []MethodReport
}

// MemberReport describes one readable member of a statically inspected type.
type MemberReport struct {
	Name     string
	Kind     MemberKind
	Type     string
	Declarer string
	Writable bool
	// Path holds the embedded field names leading to the field, or to the
	// receiver of the property. Empty means the subject itself.
	Path []string
}

// Selector returns the Go selector expression that reads the member from recv.
func (m MemberReport) Selector(recv string) string {
	var b strings.Builder
	b.WriteString(recv)
	for _, p := range m.Path {
		b.WriteByte('.')
		b.WriteString(p)
	}
	b.WriteByte('.')
	b.WriteString(m.Name)
	if m.Kind == KindProperty {
		b.WriteString("()")
	}
	return b.String()
}

// MethodReport describes one no-arg method of a statically inspected type.
type MethodReport struct {
	Name    string
	Results []string
}

// GenerationRecord is one manifest entry for a generated accessor file.
type GenerationRecord struct {
	Output      string    `json:"output"`
	Package     string    `json:"package,omitzero"`
	Types       []string  `json:"types,omitempty"`
	Hash        string    `json:"hash,omitzero"`
	GeneratedAt time.Time `json:"generated_at,omitzero"`
}

// GenerationResult reports what a gen run did.
type GenerationResult struct {
	Output  string
	Types   []string
	Hash    string
	Changed bool
}
