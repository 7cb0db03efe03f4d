// Package gotypes discovers readable members and no-arg methods from Go source
// using go/packages and go/types.
package gotypes

import (
	"context"
	"go/types"
	"path/filepath"
	"slices"

	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/tools/go/packages"
)

var _ ports.PackageInspector = (*Inspector)(nil)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedImports |
	packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo

// Inspector implements ports.PackageInspector.
type Inspector struct {
	logger ports.Logger
}

// New creates an Inspector.
func New(logger ports.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// Inspect loads the package named by req.Pattern and reports the requested
// types. Without requested types every exported, non-generic named type is
// reported in name order.
func (i *Inspector) Inspect(ctx context.Context, req ports.InspectRequest) (*domain.PackageReport, error) {
	pkg, err := load(ctx, req.Dir, req.Pattern)
	if err != nil {
		return nil, err
	}

	named, err := selectTypes(pkg.Types, req.Types)
	if err != nil {
		return nil, err
	}

	report := &domain.PackageReport{
		Name: pkg.Name,
		Path: pkg.PkgPath,
	}
	if len(pkg.GoFiles) > 0 {
		report.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	q := func(p *types.Package) string {
		if p == pkg.Types {
			return ""
		}
		return p.Name()
	}
	for _, n := range named {
		report.Types = append(report.Types, describe(n, req.Conventions, q))
	}

	i.logger.Debug("inspected " + pkg.PkgPath)
	return report, nil
}

func load(ctx context.Context, dir, pattern string) (*packages.Package, error) {
	if pattern == "" {
		return nil, domain.ErrNoPatternSpecified
	}

	cfg := &packages.Config{
		Mode:    loadMode,
		Context: ctx,
		Dir:     dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageLoadFailed.Error()), "pattern", pattern)
	}
	if len(pkgs) != 1 {
		return nil, zerr.With(zerr.With(domain.ErrPackageLoadFailed, "pattern", pattern), "packages", len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, zerr.With(zerr.Wrap(pkg.Errors[0], domain.ErrPackageLoadFailed.Error()), "pattern", pattern)
	}
	if pkg.Types == nil {
		return nil, zerr.With(domain.ErrPackageLoadFailed, "pattern", pattern)
	}
	return pkg, nil
}

// selectTypes resolves the requested type names, or every exported
// non-generic named type when none are requested.
func selectTypes(pkg *types.Package, requested []string) ([]*types.Named, error) {
	scope := pkg.Scope()

	if len(requested) == 0 {
		var out []*types.Named
		for _, name := range scope.Names() {
			if n, ok := lookupNamed(scope, name); ok && n.Obj().Exported() && n.TypeParams().Len() == 0 {
				out = append(out, n)
			}
		}
		return out, nil
	}

	out := make([]*types.Named, 0, len(requested))
	for _, name := range requested {
		n, ok := lookupNamed(scope, name)
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrTypeNotFound, "type", name), "package", pkg.Path())
		}
		if n.TypeParams().Len() > 0 {
			return nil, zerr.With(zerr.With(domain.ErrTypeNotFound, "type", name), "reason", "generic types are not supported")
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out, nil
}

func lookupNamed(scope *types.Scope, name string) (*types.Named, bool) {
	tn, ok := scope.Lookup(name).(*types.TypeName)
	if !ok || tn.IsAlias() {
		return nil, false
	}
	n, ok := tn.Type().(*types.Named)
	return n, ok
}
