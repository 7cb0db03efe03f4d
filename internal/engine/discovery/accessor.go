package discovery

import (
	"fmt"
	"reflect"

	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	_ domain.ReadAccessor  = (*fieldAccessor)(nil)
	_ domain.WriteAccessor = (*fieldAccessor)(nil)
	_ domain.ReadAccessor  = (*propertyAccessor)(nil)
	_ domain.WriteAccessor = (*propertyAccessor)(nil)
	_ domain.Method        = (*method)(nil)
)

// owner is the described type an accessor reads from.
type owner struct {
	typ reflect.Type
}

// value resolves instance to a reflect.Value of the owning type. Pointers are
// followed until the owning type is reached. For interface owners the dynamic
// value is returned as long as it implements the interface.
func (o owner) value(instance any) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, domain.ErrNilInstance
	}
	v := reflect.ValueOf(instance)

	if o.typ.Kind() == reflect.Interface {
		if !v.Type().Implements(o.typ) {
			return reflect.Value{}, o.mismatch(v.Type())
		}
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return reflect.Value{}, domain.ErrNilInstance
		}
		return v, nil
	}

	for v.Type() != o.typ {
		if v.Kind() != reflect.Pointer {
			return reflect.Value{}, o.mismatch(reflect.TypeOf(instance))
		}
		if v.IsNil() {
			return reflect.Value{}, domain.ErrNilInstance
		}
		v = v.Elem()
	}
	return v, nil
}

// pointer resolves instance to an addressable value of the owning type, which
// writes require.
func (o owner) pointer(instance any) (reflect.Value, error) {
	if instance != nil && o.typ.Kind() != reflect.Interface {
		if rv := reflect.ValueOf(instance); rv.Kind() != reflect.Pointer {
			return reflect.Value{}, zerr.With(domain.ErrNotSettable, "instance", rv.Type().String())
		}
	}
	return o.value(instance)
}

func (o owner) mismatch(got reflect.Type) error {
	return zerr.With(zerr.With(domain.ErrTypeMismatch, "want", o.typ.String()), "got", got.String())
}

// member carries what every accessor exposes.
type member struct {
	owner
	name     domain.InternedString
	kind     domain.MemberKind
	typ      reflect.Type
	declarer string
	writable bool
}

func (m *member) Name() string             { return m.name.String() }
func (m *member) Kind() domain.MemberKind  { return m.kind }
func (m *member) Type() reflect.Type       { return m.typ }
func (m *member) Declarer() string         { return m.declarer }
func (m *member) Writable() bool           { return m.writable }
func (m *member) String() string           { return m.kind.String() + " " + m.name.String() }
func (m *member) annotate(err error) error { return zerr.With(err, "member", m.name.String()) }

// fieldAccessor reads a struct field through its index path.
type fieldAccessor struct {
	member
	index []int
}

func newFieldAccessor(t reflect.Type, c domain.MemberCandidate[source]) *fieldAccessor {
	return &fieldAccessor{
		member: member{
			owner:    owner{typ: t},
			name:     c.Name,
			kind:     domain.KindField,
			typ:      c.Source.typ,
			declarer: c.Declarer,
			writable: c.Writable,
		},
		index: c.Index,
	}
}

// Get returns the field value.
func (f *fieldAccessor) Get(instance any) (any, error) {
	v, err := f.value(instance)
	if err != nil {
		return nil, f.annotate(err)
	}
	fv, err := v.FieldByIndexErr(f.index)
	if err != nil {
		return nil, f.annotate(zerr.Wrap(err, domain.ErrNilEmbedded.Error()))
	}
	return fv.Interface(), nil
}

// Set assigns value to the field, allocating nil embedded struct pointers on the way.
func (f *fieldAccessor) Set(instance any, value any) error {
	v, err := f.pointer(instance)
	if err != nil {
		return f.annotate(err)
	}
	fv, err := fieldForWrite(v, f.index)
	if err != nil {
		return f.annotate(err)
	}
	if !fv.CanSet() {
		return f.annotate(domain.ErrNotSettable)
	}
	nv, err := convert(value, fv.Type())
	if err != nil {
		return f.annotate(err)
	}
	fv.Set(nv)
	return nil
}

func fieldForWrite(v reflect.Value, index []int) (reflect.Value, error) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, domain.ErrNilEmbedded
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, nil
}

// propertyAccessor reads a property through its getter method.
type propertyAccessor struct {
	member
	getter string
	setter string
	path   []int
}

// newPropertyAccessor calls the getter and setter on the receiver that
// declared the selected candidate. The subject scans its whole method set
// first, so a candidate from an embedded type is only selected when the
// subject's own method of that name is a different declaration, or is
// missing because promotion is ambiguous.
func newPropertyAccessor(t reflect.Type, c domain.MemberCandidate[source], setter string) *propertyAccessor {
	return &propertyAccessor{
		member: member{
			owner:    owner{typ: t},
			name:     c.Name,
			kind:     domain.KindProperty,
			typ:      c.Source.typ,
			declarer: c.Declarer,
			writable: c.Writable,
		},
		getter: c.Name.String(),
		setter: setter,
		path:   c.Index,
	}
}

// Get calls the getter.
func (p *propertyAccessor) Get(instance any) (any, error) {
	v, err := p.value(instance)
	if err != nil {
		return nil, p.annotate(err)
	}
	recv, err := receiver(v, p.path)
	if err != nil {
		return nil, p.annotate(err)
	}
	out, err := call(recv, p.getter, nil)
	if err != nil {
		return nil, p.annotate(err)
	}
	return out[0].Interface(), nil
}

// Set calls the setter. An error returned by the setter is passed through.
func (p *propertyAccessor) Set(instance any, value any) error {
	if !p.writable {
		return p.annotate(domain.ErrNotSettable)
	}
	v, err := p.pointer(instance)
	if err != nil {
		return p.annotate(err)
	}
	recv, err := receiver(v, p.path)
	if err != nil {
		return p.annotate(err)
	}
	nv, err := convert(value, p.typ)
	if err != nil {
		return p.annotate(err)
	}
	out, err := call(recv, p.setter, []reflect.Value{nv})
	if err != nil {
		return p.annotate(err)
	}
	if len(out) == 1 && !out[0].IsNil() {
		return p.annotate(out[0].Interface().(error)) //nolint:forcetypeassert // setter shape checked at discovery
	}
	return nil
}

// method is a no-arg method handle.
type method struct {
	owner
	name    domain.InternedString
	results []reflect.Type
}

func newMethod(t reflect.Type, m reflect.Method) *method {
	results := make([]reflect.Type, m.Type.NumOut())
	for i := range results {
		results[i] = m.Type.Out(i)
	}
	return &method{
		owner:   owner{typ: t},
		name:    domain.NewInternedString(m.Name),
		results: results,
	}
}

func (m *method) Name() string            { return m.name.String() }
func (m *method) Results() []reflect.Type { return append([]reflect.Type(nil), m.results...) }

// Call invokes the method and returns its results.
func (m *method) Call(instance any) ([]any, error) {
	v, err := m.value(instance)
	if err != nil {
		return nil, zerr.With(err, "method", m.Name())
	}
	recv, err := receiver(v, nil)
	if err != nil {
		return nil, zerr.With(err, "method", m.Name())
	}
	out, err := call(recv, m.Name(), nil)
	if err != nil {
		return nil, err
	}
	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res, nil
}

// receiver walks path from v and returns a value whose method set includes
// pointer-receiver methods whenever possible.
func receiver(v reflect.Value, path []int) (reflect.Value, error) {
	if len(path) > 0 {
		fv, err := v.FieldByIndexErr(path)
		if err != nil {
			return reflect.Value{}, zerr.Wrap(err, domain.ErrNilEmbedded.Error())
		}
		if !fv.CanInterface() {
			return reflect.Value{}, zerr.With(domain.ErrMethodNotFound, "reason", "receiver embedded through an unexported field")
		}
		v = fv
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return reflect.Value{}, domain.ErrNilEmbedded
		}
		if v.Kind() == reflect.Interface {
			v = v.Elem()
		}
		return v, nil
	}

	if v.CanAddr() {
		return v.Addr(), nil
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p, nil
}

// call invokes the named method on recv. A panic inside the method is
// recovered and reported as ErrGetterPanicked.
func call(recv reflect.Value, name string, args []reflect.Value) (out []reflect.Value, err error) {
	fn := recv.MethodByName(name)
	if !fn.IsValid() {
		return nil, zerr.With(domain.ErrMethodNotFound, "method", name)
	}

	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.With(domain.ErrGetterPanicked, "method", name), "panic", fmt.Sprint(r))
		}
	}()

	return fn.Call(args), nil
}
