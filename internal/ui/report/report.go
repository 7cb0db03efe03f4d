// Package report renders static inspection results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/ui/output"
	"go.trai.ch/automap/internal/ui/style"
)

type row struct {
	kind  string
	name  string
	typ   string
	notes string
	style lipgloss.Style
}

// Write renders report to w, one block per type. Colors follow output.Renderer.
func Write(w io.Writer, report *domain.PackageReport) error {
	r := output.Renderer(w)
	heading := style.Heading.Renderer(r)
	muted := style.Muted.Renderer(r)

	var b strings.Builder
	b.WriteString(heading.Render("package " + report.Name))
	b.WriteString(muted.Render(" (" + report.Path + ")"))
	b.WriteString("\n")

	for _, t := range report.Types {
		b.WriteString("\n")
		b.WriteString(heading.Render(t.Name))
		if t.Interface {
			b.WriteString(muted.Render(" interface"))
		}
		b.WriteString("\n")

		rows := rowsFor(t, r)
		if len(rows) == 0 {
			b.WriteString(muted.Render("  no readable members"))
			b.WriteString("\n")
			continue
		}
		writeRows(&b, rows)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func rowsFor(t domain.TypeReport, r *lipgloss.Renderer) []row {
	rows := make([]row, 0, len(t.Members)+len(t.Methods))
	for _, m := range t.Members {
		notes := "read-only"
		if m.Writable {
			notes = "read-write"
		}
		if len(m.Path) > 0 {
			notes += " via " + strings.Join(m.Path, ".")
		}
		s := style.Field
		if m.Kind == domain.KindProperty {
			s = style.Property
		}
		rows = append(rows, row{
			kind:  m.Kind.String(),
			name:  m.Name,
			typ:   m.Type,
			notes: notes,
			style: s.Renderer(r),
		})
	}
	for _, m := range t.Methods {
		results := strings.Join(m.Results, ", ")
		if len(m.Results) > 1 {
			results = "(" + results + ")"
		}
		rows = append(rows, row{
			kind:  "method",
			name:  m.Name + "()",
			typ:   results,
			style: style.Muted.Renderer(r),
		})
	}
	return rows
}

func writeRows(b *strings.Builder, rows []row) {
	var kw, nw, tw int
	for _, r := range rows {
		kw = max(kw, len(r.kind))
		nw = max(nw, len(r.name))
		tw = max(tw, len(r.typ))
	}
	for _, r := range rows {
		line := fmt.Sprintf("  %-*s  %-*s  %-*s  %s", kw, r.kind, nw, r.name, tw, r.typ, r.notes)
		b.WriteString(r.style.Render(strings.TrimRight(line, " ")))
		b.WriteString("\n")
	}
}
