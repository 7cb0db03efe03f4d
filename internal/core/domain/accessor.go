package domain

import "reflect"

// ReadAccessor reads one named field or property from an instance of its owning type.
type ReadAccessor interface {
	// Name is the member name.
	Name() string
	// Kind tells whether the member is a field or a property.
	Kind() MemberKind
	// Type is the declared value type of the member.
	Type() reflect.Type
	// Declarer is the name of the type the member was discovered on.
	Declarer() string
	// Writable reports whether the accessor also implements WriteAccessor usefully.
	Writable() bool
	// Get returns the current value of the member. The instance may be a value
	// of the owning type or a pointer to one.
	Get(instance any) (any, error)
}

// WriteAccessor is implemented by accessors whose member can be assigned.
// The instance must be a non-nil pointer to the owning type.
type WriteAccessor interface {
	Set(instance any, value any) error
}

// Method is a public method that takes no arguments and returns at least one value.
type Method interface {
	Name() string
	// Results are the declared result types, in order.
	Results() []reflect.Type
	// Call invokes the method on instance and returns its results.
	Call(instance any) ([]any, error)
}
