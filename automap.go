// Package automap discovers the readable members and no-arg methods of Go
// types and copies values between objects by member name.
//
// A readable member is an exported struct field or a getter method: an
// exported method with no arguments and exactly one result that is not an
// error. Properties come before fields. Type information is built at most
// once per type and cache.
package automap

import (
	"context"
	"reflect"

	"go.trai.ch/automap/internal/adapters/typecache"
	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/engine/discovery"
	"go.trai.ch/automap/internal/engine/mapper"
)

type (
	// TypeInfo is the discovery result for one type.
	TypeInfo = domain.TypeInfo
	// ReadAccessor reads one member from an instance.
	ReadAccessor = domain.ReadAccessor
	// WriteAccessor writes one member of an instance.
	WriteAccessor = domain.WriteAccessor
	// Method invokes one no-arg method.
	Method = domain.Method
	// MemberKind tells fields and properties apart.
	MemberKind = domain.MemberKind
	// Conventions holds the setter and getter naming rules.
	Conventions = domain.Conventions
)

// Member kinds.
const (
	KindField    = domain.KindField
	KindProperty = domain.KindProperty
)

// Errors returned by accessors, methods and the mapper.
var (
	ErrNilType               = domain.ErrNilType
	ErrNilInstance           = domain.ErrNilInstance
	ErrTypeMismatch          = domain.ErrTypeMismatch
	ErrNilEmbedded           = domain.ErrNilEmbedded
	ErrGetterPanicked        = domain.ErrGetterPanicked
	ErrNotSettable           = domain.ErrNotSettable
	ErrIncompatibleType      = domain.ErrIncompatibleType
	ErrDestinationNotPointer = domain.ErrDestinationNotPointer
	ErrMappingFailed         = domain.ErrMappingFailed
	ErrCyclicSource          = domain.ErrCyclicSource
	ErrSourceMethodFailed    = domain.ErrSourceMethodFailed
)

// DefaultConventions returns the Set/Get naming conventions.
func DefaultConventions() Conventions {
	return domain.DefaultConventions()
}

type options struct {
	conventions Conventions
	interfaces  []reflect.Type
}

// Option configures a Cache.
type Option func(*options)

// WithConventions sets the naming conventions used for setters and source getters.
func WithConventions(conv Conventions) Option {
	return func(o *options) {
		o.conventions = conv
	}
}

// WithInterfaces registers interfaces whose members join those of any
// described interface type that implements them.
func WithInterfaces(ifaces ...reflect.Type) Option {
	return func(o *options) {
		o.interfaces = append(o.interfaces, ifaces...)
	}
}

// Cache hands out one TypeInfo per type. It is safe for concurrent use.
type Cache struct {
	cache       *typecache.Cache
	conventions Conventions
}

// NewCache creates an empty Cache.
func NewCache(opts ...Option) *Cache {
	o := options{conventions: domain.DefaultConventions()}
	for _, opt := range opts {
		opt(&o)
	}
	d := discovery.New(
		discovery.WithConventions(o.conventions),
		discovery.WithInterfaces(o.interfaces...),
	)
	return &Cache{
		cache:       typecache.New(d),
		conventions: o.conventions,
	}
}

// TypeInfo returns the TypeInfo for t. *T and T share one entry.
func (c *Cache) TypeInfo(t reflect.Type) (*TypeInfo, error) {
	return c.cache.Lookup(t)
}

// Warm builds the TypeInfo of every type concurrently.
func (c *Cache) Warm(ctx context.Context, types ...reflect.Type) error {
	return c.cache.Warm(ctx, types...)
}

// Len returns the number of types in the cache.
func (c *Cache) Len() int {
	return c.cache.Len()
}

// TypeInfoFor returns the TypeInfo of T.
func TypeInfoFor[T any](c *Cache) (*TypeInfo, error) {
	return typecache.LookupFor[T](c.cache)
}

// Mapper copies readable source members into writable destination members
// of the same name.
type Mapper struct {
	m *mapper.Mapper
}

// NewMapper creates a Mapper that shares c's type information and conventions.
func NewMapper(c *Cache) *Mapper {
	return &Mapper{m: mapper.New(c.cache, mapper.WithConventions(c.conventions))}
}

// Map copies src into dst, which must be a non-nil pointer to a struct.
func (m *Mapper) Map(src, dst any) error {
	return m.m.Map(src, dst)
}

// Map copies src into a new T.
func Map[T any](m *Mapper, src any) (T, error) {
	return mapper.To[T](m.m, src)
}
