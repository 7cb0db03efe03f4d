package ports

import (
	"reflect"

	"go.trai.ch/automap/internal/core/domain"
)

// Describer builds the TypeInfo of a runtime type.
//
//go:generate go run go.uber.org/mock/mockgen -source=type_cache.go -destination=mocks/mock_type_cache.go -package=mocks
type Describer interface {
	// Describe runs member and method discovery for t. Every call builds a new TypeInfo.
	Describe(t reflect.Type) (*domain.TypeInfo, error)
}

// TypeCache hands out one TypeInfo per type, building each at most once.
type TypeCache interface {
	// Lookup returns the TypeInfo for t. Pointer types share the entry of their element type.
	Lookup(t reflect.Type) (*domain.TypeInfo, error)
}
