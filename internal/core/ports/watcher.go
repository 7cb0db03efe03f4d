package ports

import "context"

// SourceWatcher reports changes to the Go source files of a package directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type SourceWatcher interface {
	// Watch blocks until ctx is done. Changed files are coalesced into batches
	// and handed to onChange one batch at a time. Paths for which skip returns
	// true are ignored.
	Watch(ctx context.Context, dir string, skip func(path string) bool, onChange func(paths []string)) error
}
