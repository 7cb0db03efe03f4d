// Package codegen renders static accessor tables from package reports and
// writes them to disk.
package codegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes one generation run.
type Request struct {
	Report *domain.PackageReport
	// Output is the generated file. Relative paths resolve against the package directory.
	Output string
	Store  ports.ManifestStore
	// Force rewrites the file even when it is up to date.
	Force bool
}

// Generator writes accessor tables and records them in the manifest.
type Generator struct {
	logger ports.Logger
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source for manifest records.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator.
func New(logger ports.Logger, opts ...Option) *Generator {
	g := &Generator{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders req.Report and writes it unless the file on disk and the
// manifest both already carry the same content hash.
func (g *Generator) Generate(req Request) (*domain.GenerationResult, error) {
	src, err := Render(req.Report)
	if err != nil {
		return nil, err
	}

	output := req.Output
	if output == "" {
		output = domain.DefaultOutputFile
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(req.Report.Dir, output)
	}
	output = filepath.Clean(output)

	hash := Fingerprint(src)
	result := &domain.GenerationResult{
		Output: output,
		Types:  typeNames(req.Report),
		Hash:   hash,
	}

	if !req.Force {
		upToDate, err := g.upToDate(req.Store, output, hash)
		if err != nil {
			return nil, err
		}
		if upToDate {
			g.logger.Debug("up to date " + output)
			return result, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output)
	}
	//nolint:gosec // generated Go source is meant to be readable by the toolchain
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output)
	}

	err = req.Store.Put(domain.GenerationRecord{
		Output:      output,
		Package:     req.Report.Path,
		Types:       result.Types,
		Hash:        hash,
		GeneratedAt: g.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	result.Changed = true
	g.logger.Info("generated " + output)
	return result, nil
}

func (g *Generator) upToDate(store ports.ManifestStore, output, hash string) (bool, error) {
	rec, err := store.Get(output)
	if err != nil {
		return false, err
	}
	if rec == nil || rec.Hash != hash {
		return false, nil
	}

	current, err := os.ReadFile(output) //nolint:gosec // Path is controlled by caller
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output)
	}
	return Fingerprint(current) == hash, nil
}

// Fingerprint returns the hex XXHash of generated content.
func Fingerprint(src []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(src))
}

func typeNames(r *domain.PackageReport) []string {
	names := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		names = append(names, t.Name)
	}
	return names
}
