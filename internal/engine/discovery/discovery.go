// Package discovery builds TypeInfo values for runtime types using package reflect.
package discovery

import (
	"reflect"
	"slices"

	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/core/ports"
)

var _ ports.Describer = (*Discoverer)(nil)

var errorType = reflect.TypeFor[error]()

// Discoverer finds the readable members and no-arg methods of runtime types.
// It holds no per-type state; caching is the job of the type cache.
type Discoverer struct {
	conv       domain.Conventions
	interfaces []reflect.Type
}

// Option configures a Discoverer.
type Option func(*Discoverer)

// WithConventions sets the naming conventions used to recognise setters.
func WithConventions(conv domain.Conventions) Option {
	return func(d *Discoverer) {
		d.conv = conv
	}
}

// WithInterfaces registers known interfaces. When an interface type is
// described, every registered interface it implements joins the candidate set.
// Non-interface types are ignored.
func WithInterfaces(ifaces ...reflect.Type) Option {
	return func(d *Discoverer) {
		for _, it := range ifaces {
			if it != nil && it.Kind() == reflect.Interface && !slices.Contains(d.interfaces, it) {
				d.interfaces = append(d.interfaces, it)
			}
		}
	}
}

// New creates a Discoverer with the default conventions.
func New(opts ...Option) *Discoverer {
	d := &Discoverer{conv: domain.DefaultConventions()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Describe runs member and method discovery for t. Pointer types are
// described through their element type.
func (d *Discoverer) Describe(t reflect.Type) (*domain.TypeInfo, error) {
	if t == nil {
		return nil, domain.ErrNilType
	}
	t = Indirect(t)

	return domain.NewTypeInfo(t, d.readAccessors(t), d.noArgMethods(t)), nil
}

// Indirect strips every pointer level from t.
func Indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func (d *Discoverer) readAccessors(t reflect.Type) []domain.ReadAccessor {
	var all []domain.MemberCandidate[source]
	for _, c := range d.candidateTypes(t) {
		all = append(all, d.collect(c)...)
	}

	selected := domain.SelectReadable(all)

	accessors := make([]domain.ReadAccessor, 0, len(selected))
	for _, c := range selected {
		switch c.Kind {
		case domain.KindField:
			accessors = append(accessors, newFieldAccessor(t, c))
		case domain.KindProperty:
			accessors = append(accessors, newPropertyAccessor(t, c, d.conv.SetterName(c.Name.String())))
		}
	}
	return accessors
}

func (d *Discoverer) noArgMethods(t reflect.Type) []domain.Method {
	ms := methodSet(t)
	off := receiverOffset(ms)

	var methods []domain.Method
	for i := range ms.NumMethod() {
		m := ms.Method(i)
		if !m.IsExported() {
			continue
		}
		if m.Type.NumIn()-off != 0 || m.Type.NumOut() == 0 {
			continue
		}
		methods = append(methods, newMethod(t, m))
	}
	return methods
}

// candidate is one type scanned for members: the subject, one of its embedded
// types, or a known interface the subject implements.
type candidate struct {
	typ   reflect.Type
	index []int
	// hidden is set when index passes through an unexported embedded field.
	// Methods reached that way cannot be called.
	hidden bool
	// sealed is set when index passes through an unexported embedded pointer,
	// which cannot be allocated when nil.
	sealed bool
}

// candidateTypes returns the subject followed by its base types. For structs
// these are the embedded structs and interfaces, breadth first, each type once.
// For interfaces they are the registered interfaces the subject implements.
func (d *Discoverer) candidateTypes(t reflect.Type) []candidate {
	cands := []candidate{{typ: t}}

	switch t.Kind() {
	case reflect.Struct:
		visited := map[reflect.Type]bool{t: true}
		queue := []candidate{{typ: t}}
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			if c.typ.Kind() != reflect.Struct {
				continue
			}
			for i := range c.typ.NumField() {
				sf := c.typ.Field(i)
				bt, ok := baseType(sf)
				if !ok || visited[bt] {
					continue
				}
				visited[bt] = true
				next := candidate{
					typ:    bt,
					index:  append(slices.Clone(c.index), i),
					hidden: c.hidden || !sf.IsExported(),
					sealed: c.sealed || (!sf.IsExported() && sf.Type.Kind() == reflect.Pointer),
				}
				cands = append(cands, next)
				queue = append(queue, next)
			}
		}
	case reflect.Interface:
		for _, it := range d.interfaces {
			if it != t && t.Implements(it) {
				cands = append(cands, candidate{typ: it})
			}
		}
	}

	return cands
}

// baseType reports whether sf embeds a struct, a pointer to a struct or an
// interface, and returns that type.
func baseType(sf reflect.StructField) (reflect.Type, bool) {
	if !sf.Anonymous {
		return nil, false
	}
	switch ft := sf.Type; ft.Kind() {
	case reflect.Interface, reflect.Struct:
		return ft, true
	case reflect.Pointer:
		if ft.Elem().Kind() == reflect.Struct {
			return ft.Elem(), true
		}
	}
	return nil, false
}

// source is the reflect handle behind a member candidate.
type source struct {
	field reflect.StructField
	typ   reflect.Type
}

// collect lists the fields declared by c and the properties in its method set.
func (d *Discoverer) collect(c candidate) []domain.MemberCandidate[source] {
	declarer := typeName(c.typ)

	var out []domain.MemberCandidate[source]
	if c.typ.Kind() == reflect.Struct {
		for i := range c.typ.NumField() {
			sf := c.typ.Field(i)
			if !sf.IsExported() {
				continue
			}
			if _, base := baseType(sf); base {
				continue
			}
			out = append(out, domain.MemberCandidate[source]{
				Name:     domain.NewInternedString(sf.Name),
				Kind:     domain.KindField,
				Readable: true,
				Writable: !c.sealed,
				Declarer: declarer,
				Index:    append(slices.Clone(c.index), i),
				Source:   source{field: sf, typ: sf.Type},
			})
		}
	}

	ms := methodSet(c.typ)
	off := receiverOffset(ms)
	for i := range ms.NumMethod() {
		m := ms.Method(i)
		if !m.IsExported() {
			continue
		}
		in := m.Type.NumIn() - off

		if isGetter(m) {
			out = append(out, domain.MemberCandidate[source]{
				Name:     domain.NewInternedString(m.Name),
				Kind:     domain.KindProperty,
				Readable: true,
				Writable: in == 0 && !c.hidden && d.hasSetter(ms, m.Name, m.Type.Out(0)),
				Indexed:  in > 0,
				Declarer: declarer,
				Index:    c.index,
				Source:   source{typ: m.Type.Out(0)},
			})
			continue
		}

		// A setter with no matching getter is a write-only property.
		prop, ok := d.conv.PropertyForSetter(m.Name)
		if !ok || !isSetter(m, off) {
			continue
		}
		if g, found := ms.MethodByName(prop); found && isGetter(g) && g.Type.NumIn()-off == 0 {
			continue
		}
		out = append(out, domain.MemberCandidate[source]{
			Name:     domain.NewInternedString(prop),
			Kind:     domain.KindProperty,
			Writable: !c.hidden,
			Declarer: declarer,
			Index:    c.index,
			Source:   source{typ: m.Type.In(off)},
		})
	}

	return out
}

func (d *Discoverer) hasSetter(ms reflect.Type, property string, typ reflect.Type) bool {
	m, ok := ms.MethodByName(d.conv.SetterName(property))
	if !ok || !m.IsExported() {
		return false
	}
	off := receiverOffset(ms)
	return isSetter(m, off) && m.Type.In(off) == typ
}

// isGetter reports whether m returns exactly one value that is not an error.
func isGetter(m reflect.Method) bool {
	return m.Type.NumOut() == 1 && m.Type.Out(0) != errorType
}

// isSetter reports whether m takes one argument and returns nothing or an error.
func isSetter(m reflect.Method, off int) bool {
	if m.Type.NumIn()-off != 1 {
		return false
	}
	switch m.Type.NumOut() {
	case 0:
		return true
	case 1:
		return m.Type.Out(0) == errorType
	default:
		return false
	}
}

// methodSet returns the type whose methods form the instance method set of t:
// t itself for interfaces, *t otherwise.
func methodSet(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Interface {
		return t
	}
	return reflect.PointerTo(t)
}

// receiverOffset is 1 when method types of ms carry the receiver as first input.
func receiverOffset(ms reflect.Type) int {
	if ms.Kind() == reflect.Interface {
		return 0
	}
	return 1
}

func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
