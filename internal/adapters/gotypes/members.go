package gotypes

import (
	"go/types"
	"slices"

	"go.trai.ch/automap/internal/core/domain"
)

// source is the go/types handle behind a member candidate. path holds the
// embedded field names leading to the candidate type that declared it.
type source struct {
	typ  types.Type
	path []string
}

// candidate is one type scanned for members, with the embedded field names
// leading to it from the subject.
type candidate struct {
	typ  types.Type
	path []string
}

func describe(n *types.Named, conv domain.Conventions, q types.Qualifier) domain.TypeReport {
	_, isIface := n.Underlying().(*types.Interface)
	report := domain.TypeReport{
		Name:      n.Obj().Name(),
		Interface: isIface,
	}

	subject := methodSet(n)

	var all []domain.MemberCandidate[source]
	for _, c := range candidateTypes(n) {
		all = append(all, collect(c, conv)...)
	}

	// Subject members come first, so an embedded candidate only wins when it
	// is a different declaration than the subject's own.
	for _, c := range domain.SelectReadable(all) {
		m := domain.MemberReport{
			Name:     c.Name.String(),
			Kind:     c.Kind,
			Type:     types.TypeString(c.Source.typ, q),
			Declarer: c.Declarer,
			Writable: c.Writable,
			Path:     c.Source.path,
		}
		report.Members = append(report.Members, m)
	}

	for sel := range subject.Methods() {
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		sig := fn.Signature()
		if sig.Params().Len() != 0 || sig.Results().Len() == 0 {
			continue
		}
		mr := domain.MethodReport{Name: fn.Name()}
		for r := range sig.Results().Variables() {
			mr.Results = append(mr.Results, types.TypeString(r.Type(), q))
		}
		report.Methods = append(report.Methods, mr)
	}

	return report
}

// candidateTypes returns the subject followed by its base types: embedded
// structs and interfaces breadth first for structs, embedded interfaces for
// interfaces. Each type is visited once.
func candidateTypes(n *types.Named) []candidate {
	cands := []candidate{{typ: n}}
	visited := []types.Type{n}
	seen := func(t types.Type) bool {
		return slices.ContainsFunc(visited, func(v types.Type) bool { return types.Identical(v, t) })
	}

	for i := 0; i < len(cands); i++ {
		c := cands[i]
		switch u := c.typ.Underlying().(type) {
		case *types.Struct:
			for f := range u.Fields() {
				bt, ok := baseType(f)
				if !ok || seen(bt) {
					continue
				}
				visited = append(visited, bt)
				cands = append(cands, candidate{typ: bt, path: append(slices.Clone(c.path), f.Name())})
			}
		case *types.Interface:
			for j := range u.NumEmbeddeds() {
				et := u.EmbeddedType(j)
				if _, ok := et.Underlying().(*types.Interface); !ok || seen(et) {
					continue
				}
				visited = append(visited, et)
				cands = append(cands, candidate{typ: et})
			}
		}
	}

	return cands
}

// baseType reports whether f embeds a struct, a pointer to a struct or an
// interface, and returns that type.
func baseType(f *types.Var) (types.Type, bool) {
	if !f.Embedded() {
		return nil, false
	}
	t := f.Type()
	if p, ok := t.(*types.Pointer); ok {
		if _, isStruct := p.Elem().Underlying().(*types.Struct); isStruct {
			return p.Elem(), true
		}
		return nil, false
	}
	switch t.Underlying().(type) {
	case *types.Struct, *types.Interface:
		return t, true
	}
	return nil, false
}

// collect lists the fields declared by c and the properties in its method set.
func collect(c candidate, conv domain.Conventions) []domain.MemberCandidate[source] {
	declarer := typeName(c.typ)

	var out []domain.MemberCandidate[source]
	if st, ok := c.typ.Underlying().(*types.Struct); ok {
		for f := range st.Fields() {
			if !f.Exported() {
				continue
			}
			if _, base := baseType(f); base {
				continue
			}
			out = append(out, domain.MemberCandidate[source]{
				Name:     domain.NewInternedString(f.Name()),
				Kind:     domain.KindField,
				Readable: true,
				Writable: true,
				Declarer: declarer,
				Source:   source{typ: f.Type(), path: c.path},
			})
		}
	}

	ms := methodSet(c.typ)
	for sel := range ms.Methods() {
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		sig := fn.Signature()

		if isGetter(sig) {
			in := sig.Params().Len()
			out = append(out, domain.MemberCandidate[source]{
				Name:     domain.NewInternedString(fn.Name()),
				Kind:     domain.KindProperty,
				Readable: true,
				Writable: in == 0 && hasSetter(ms, conv.SetterName(fn.Name()), sig.Results().At(0).Type()),
				Indexed:  in > 0,
				Declarer: declarer,
				Source:   source{typ: sig.Results().At(0).Type(), path: c.path},
			})
			continue
		}

		prop, ok := conv.PropertyForSetter(fn.Name())
		if !ok || !isSetter(sig) {
			continue
		}
		if g := lookupFunc(ms, prop); g != nil && isGetter(g.Signature()) && g.Signature().Params().Len() == 0 {
			continue
		}
		out = append(out, domain.MemberCandidate[source]{
			Name:     domain.NewInternedString(prop),
			Kind:     domain.KindProperty,
			Writable: true,
			Declarer: declarer,
			Source:   source{typ: sig.Params().At(0).Type(), path: c.path},
		})
	}

	return out
}

func methodSet(t types.Type) *types.MethodSet {
	if types.IsInterface(t) {
		return types.NewMethodSet(t)
	}
	return types.NewMethodSet(types.NewPointer(t))
}

func lookupFunc(ms *types.MethodSet, name string) *types.Func {
	for sel := range ms.Methods() {
		if fn, ok := sel.Obj().(*types.Func); ok && fn.Name() == name {
			return fn
		}
	}
	return nil
}

func hasSetter(ms *types.MethodSet, name string, typ types.Type) bool {
	fn := lookupFunc(ms, name)
	if fn == nil || !fn.Exported() {
		return false
	}
	sig := fn.Signature()
	return isSetter(sig) && types.Identical(sig.Params().At(0).Type(), typ)
}

// isGetter reports whether sig returns exactly one value that is not an error.
func isGetter(sig *types.Signature) bool {
	return sig.Results().Len() == 1 && !isError(sig.Results().At(0).Type())
}

// isSetter reports whether sig takes one argument and returns nothing or an error.
func isSetter(sig *types.Signature) bool {
	if sig.Params().Len() != 1 {
		return false
	}
	switch sig.Results().Len() {
	case 0:
		return true
	case 1:
		return isError(sig.Results().At(0).Type())
	default:
		return false
	}
}

var errorType = types.Universe.Lookup("error").Type()

func isError(t types.Type) bool {
	return types.Identical(t, errorType)
}

func typeName(t types.Type) string {
	if n, ok := t.(*types.Named); ok {
		return n.Obj().Name()
	}
	return t.String()
}
