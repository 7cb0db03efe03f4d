package ports

import (
	"context"

	"go.trai.ch/automap/internal/core/domain"
)

// InspectRequest selects the package and types to inspect statically.
type InspectRequest struct {
	// Dir is the directory the package pattern is resolved from.
	Dir string
	// Pattern is a go/packages pattern naming exactly one package.
	Pattern string
	// Types restricts the report to these type names. Empty means every exported named type.
	Types       []string
	Conventions domain.Conventions
}

// PackageInspector discovers members and no-arg methods from Go source.
//
//go:generate go run go.uber.org/mock/mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type PackageInspector interface {
	Inspect(ctx context.Context, req InspectRequest) (*domain.PackageReport, error)
}
