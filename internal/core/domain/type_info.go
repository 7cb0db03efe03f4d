package domain

import (
	"iter"
	"reflect"
	"slices"
)

// TypeInfo is the discovery result for one runtime type: its readable members
// and its no-arg methods. A TypeInfo never changes after NewTypeInfo returns,
// so it can be shared between goroutines without locking.
type TypeInfo struct {
	typ           reflect.Type
	readAccessors []ReadAccessor
	methods       []Method
}

// NewTypeInfo creates a TypeInfo. The slices are copied.
func NewTypeInfo(t reflect.Type, accessors []ReadAccessor, methods []Method) *TypeInfo {
	return &TypeInfo{
		typ:           t,
		readAccessors: slices.Clip(slices.Clone(accessors)),
		methods:       slices.Clip(slices.Clone(methods)),
	}
}

// Type returns the described type.
func (ti *TypeInfo) Type() reflect.Type {
	return ti.typ
}

// ReadAccessors yields the readable members in discovery order.
func (ti *TypeInfo) ReadAccessors() iter.Seq[ReadAccessor] {
	return func(yield func(ReadAccessor) bool) {
		for _, a := range ti.readAccessors {
			if !yield(a) {
				return
			}
		}
	}
}

// NoArgMethods yields the no-arg methods in discovery order.
func (ti *TypeInfo) NoArgMethods() iter.Seq[Method] {
	return func(yield func(Method) bool) {
		for _, m := range ti.methods {
			if !yield(m) {
				return
			}
		}
	}
}

// NumReadAccessors returns the number of readable members.
func (ti *TypeInfo) NumReadAccessors() int {
	return len(ti.readAccessors)
}

// NumNoArgMethods returns the number of no-arg methods.
func (ti *TypeInfo) NumNoArgMethods() int {
	return len(ti.methods)
}

// ReadAccessor returns the first readable member with the given name.
func (ti *TypeInfo) ReadAccessor(name string) (ReadAccessor, bool) {
	for _, a := range ti.readAccessors {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// NoArgMethod returns the no-arg method with the given name.
func (ti *TypeInfo) NoArgMethod(name string) (Method, bool) {
	for _, m := range ti.methods {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}
