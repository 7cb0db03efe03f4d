package codegen

import (
	"go/format"
	"strconv"
	"strings"

	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Header marks every generated file.
const Header = "// Code generated by automap. DO NOT EDIT."

const preamble = `
// AutomapAccessor is a readable member resolved at generation time.
type AutomapAccessor[R any] struct {
	Name string
	Get  func(R) any
}

// AutomapMethod is a no-arg method resolved at generation time.
type AutomapMethod[R any] struct {
	Name string
	Call func(R) []any
}
`

// Render produces the gofmt'ed accessor tables for every type in report.
// Struct tables take a pointer receiver, interface tables the interface value.
func Render(report *domain.PackageReport) ([]byte, error) {
	var b strings.Builder

	b.WriteString(Header)
	b.WriteString("\n\npackage ")
	b.WriteString(report.Name)
	b.WriteString("\n")
	b.WriteString(preamble)

	for _, t := range report.Types {
		writeType(&b, t)
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "package", report.Path)
	}
	return src, nil
}

func writeType(b *strings.Builder, t domain.TypeReport) {
	recv := "*" + t.Name
	if t.Interface {
		recv = t.Name
	}

	b.WriteString("\n// " + t.Name + "ReadAccessors returns the readable members of " + t.Name + ", properties first.\n")
	b.WriteString("func " + t.Name + "ReadAccessors() []AutomapAccessor[" + recv + "] {\n")
	if len(t.Members) == 0 {
		b.WriteString("\treturn nil\n}\n")
	} else {
		b.WriteString("\treturn []AutomapAccessor[" + recv + "]{\n")
		for _, m := range t.Members {
			b.WriteString("\t\t{\n")
			b.WriteString("\t\t\tName: " + strconv.Quote(m.Name) + ",\n")
			b.WriteString("\t\t\tGet:  func(v " + recv + ") any { return " + m.Selector("v") + " },\n")
			b.WriteString("\t\t},\n")
		}
		b.WriteString("\t}\n}\n")
	}

	b.WriteString("\n// " + t.Name + "NoArgMethods returns the no-arg methods of " + t.Name + ".\n")
	b.WriteString("func " + t.Name + "NoArgMethods() []AutomapMethod[" + recv + "] {\n")
	if len(t.Methods) == 0 {
		b.WriteString("\treturn nil\n}\n")
		return
	}
	b.WriteString("\treturn []AutomapMethod[" + recv + "]{\n")
	for _, m := range t.Methods {
		b.WriteString("\t\t{\n")
		b.WriteString("\t\t\tName: " + strconv.Quote(m.Name) + ",\n")
		writeCall(b, recv, m)
		b.WriteString("\t\t},\n")
	}
	b.WriteString("\t}\n}\n")
}

func writeCall(b *strings.Builder, recv string, m domain.MethodReport) {
	if len(m.Results) == 1 {
		b.WriteString("\t\t\tCall: func(v " + recv + ") []any { return []any{v." + m.Name + "()} },\n")
		return
	}

	vars := make([]string, len(m.Results))
	for i := range vars {
		vars[i] = "r" + strconv.Itoa(i)
	}
	list := strings.Join(vars, ", ")

	b.WriteString("\t\t\tCall: func(v " + recv + ") []any {\n")
	b.WriteString("\t\t\t\t" + list + " := v." + m.Name + "()\n")
	b.WriteString("\t\t\t\treturn []any{" + list + "}\n")
	b.WriteString("\t\t\t},\n")
}
