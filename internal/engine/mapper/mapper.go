// Package mapper copies values between objects by member name.
package mapper

import (
	"reflect"

	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/zerr"
)

var errorType = reflect.TypeFor[error]()

// Mapper copies readable source members into writable destination members of
// the same name. Type information comes from the injected cache.
type Mapper struct {
	cache  ports.TypeCache
	conv   domain.Conventions
	logger ports.Logger
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithConventions sets the getter prefixes tried when a source has no member
// of the destination's name.
func WithConventions(conv domain.Conventions) Option {
	return func(m *Mapper) {
		m.conv = conv
	}
}

// WithLogger sets the logger that reports skipped members.
func WithLogger(l ports.Logger) Option {
	return func(m *Mapper) {
		m.logger = l
	}
}

// New creates a Mapper.
func New(cache ports.TypeCache, opts ...Option) *Mapper {
	m := &Mapper{
		cache: cache,
		conv:  domain.DefaultConventions(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Map copies src into dst, which must be a non-nil pointer to a struct.
// Destination members without a source are left untouched. A source pointer
// met again while mapping into the same destination type reuses the
// destination already allocated for it, so cyclic graphs keep their shape.
func (m *Mapper) Map(src, dst any) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return domain.ErrDestinationNotPointer
	}
	for dv.Kind() == reflect.Pointer {
		if dv.IsNil() {
			return domain.ErrDestinationNotPointer
		}
		dv = dv.Elem()
	}
	if dv.Kind() != reflect.Struct {
		return zerr.With(domain.ErrDestinationNotPointer, "kind", dv.Kind().String())
	}
	if src == nil {
		return domain.ErrNilInstance
	}

	return m.mapInto(src, dv, make(map[visit]reflect.Value))
}

// visit identifies one source pointer mapped into one destination type.
type visit struct {
	ptr uintptr
	src reflect.Type
	dst reflect.Type
}

func visitOf(src any, dst reflect.Type) (visit, bool) {
	v := reflect.ValueOf(src)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return visit{}, false
	}
	return visit{ptr: v.Pointer(), src: v.Type(), dst: dst}, true
}

// mapInto copies src into dv, an addressable struct value.
func (m *Mapper) mapInto(src any, dv reflect.Value, seen map[visit]reflect.Value) error {
	if k, ok := visitOf(src, dv.Type()); ok {
		seen[k] = dv.Addr()
	}

	dstInfo, err := m.cache.Lookup(dv.Type())
	if err != nil {
		return err
	}
	srcInfo, err := m.cache.Lookup(reflect.TypeOf(src))
	if err != nil {
		return err
	}

	target := dv.Addr().Interface()
	for a := range dstInfo.ReadAccessors() {
		if !a.Writable() {
			continue
		}
		w, ok := a.(domain.WriteAccessor)
		if !ok {
			continue
		}

		value, found, err := m.sourceValue(srcInfo, src, a.Name())
		if err != nil {
			return mappingError(err, a.Name())
		}
		if !found {
			m.debug("no source for " + dstInfo.Type().String() + "." + a.Name())
			continue
		}

		value, err = m.nested(value, a.Type(), seen)
		if err != nil {
			return mappingError(err, a.Name())
		}

		if err := w.Set(target, value); err != nil {
			return mappingError(err, a.Name())
		}
	}

	return nil
}

// sourceValue reads name from src, first as a member and then through the
// conventional no-arg methods.
func (m *Mapper) sourceValue(info *domain.TypeInfo, src any, name string) (any, bool, error) {
	if a, ok := info.ReadAccessor(name); ok {
		v, err := a.Get(src)
		return v, true, err
	}

	for _, candidate := range m.conv.SourceMethodNames(name) {
		method, ok := info.NoArgMethod(candidate)
		if !ok {
			continue
		}
		out, err := method.Call(src)
		if err != nil {
			return nil, true, err
		}
		results := method.Results()
		if last := len(results) - 1; last > 0 && results[last] == errorType && out[last] != nil {
			//nolint:forcetypeassert // result type checked above
			return nil, true, zerr.With(zerr.Wrap(out[last].(error), domain.ErrSourceMethodFailed.Error()), "method", candidate)
		}
		return out[0], true, nil
	}

	return nil, false, nil
}

// nested maps a struct value into a fresh value of the destination member
// type when the two struct types differ.
func (m *Mapper) nested(value any, to reflect.Type, seen map[visit]reflect.Value) (any, error) {
	if value == nil {
		return nil, nil
	}
	vt := reflect.TypeOf(value)
	if vt.AssignableTo(to) || !isStruct(vt) || !isStruct(to) {
		return value, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	elem := to
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	if k, ok := visitOf(value, elem); ok {
		if prev, found := seen[k]; found {
			// A value member cannot refer back to a destination still being filled.
			if to.Kind() != reflect.Pointer {
				return nil, zerr.With(domain.ErrCyclicSource, "type", elem.String())
			}
			return prev.Interface(), nil
		}
	}

	out := reflect.New(elem)
	if err := m.mapInto(value, out.Elem(), seen); err != nil {
		return nil, err
	}
	if to.Kind() == reflect.Pointer {
		return out.Interface(), nil
	}
	return out.Elem().Interface(), nil
}

func (m *Mapper) debug(msg string) {
	if m.logger != nil {
		m.logger.Debug(msg)
	}
}

func isStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func mappingError(err error, member string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrMappingFailed.Error()), "member", member)
}

// To maps src into a new T.
func To[T any](m *Mapper, src any) (T, error) {
	var out T
	if err := m.Map(src, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
