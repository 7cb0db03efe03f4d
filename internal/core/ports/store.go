package ports

import "go.trai.ch/automap/internal/core/domain"

// ManifestStore records the files written by the generator.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get retrieves the record for a generated file.
	// Returns nil, nil if not found.
	Get(output string) (*domain.GenerationRecord, error)

	// Put stores the record.
	Put(record domain.GenerationRecord) error
}

// ManifestOpener opens the manifest stored at path.
type ManifestOpener func(path string) (ManifestStore, error)
