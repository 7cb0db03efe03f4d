// Package app implements the application layer for automap.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/automap/internal/engine/codegen"
	"go.trai.ch/zerr"
)

// logConfigurer is implemented by loggers whose format and level can change at runtime.
type logConfigurer interface {
	SetJSON(enable bool)
	SetLevel(level string) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	inspector    ports.PackageInspector
	generator    *codegen.Generator
	openManifest ports.ManifestOpener
	watcher      ports.SourceWatcher
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	inspector ports.PackageInspector,
	generator *codegen.Generator,
	openManifest ports.ManifestOpener,
	watcher ports.SourceWatcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		inspector:    inspector,
		generator:    generator,
		openManifest: openManifest,
		watcher:      watcher,
		tracer:       tracer,
		logger:       log,
	}
}

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	ConfigPath string
	Dir        string
	Pattern    string
	Types      []string
}

// GenerateOptions configuration for the Generate and Watch methods.
type GenerateOptions struct {
	InspectOptions
	// Output overrides the configured output file.
	Output string
	Force  bool
}

// Inspect reports the readable members and no-arg methods of the package.
func (a *App) Inspect(ctx context.Context, opts InspectOptions) (*domain.PackageReport, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return a.inspect(ctx, cfg, opts)
}

// Generate writes the accessor tables for the package.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (*domain.GenerationResult, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	res, _, err := a.generate(ctx, cfg, opts)
	return res, err
}

// Watch generates once, then regenerates whenever a Go file of the package
// changes, until ctx is done. Failed regenerations are logged and watching
// continues.
func (a *App) Watch(ctx context.Context, opts GenerateOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	res, dir, err := a.generate(ctx, cfg, opts)
	if err != nil {
		return err
	}

	skip := func(path string) bool {
		return filepath.Clean(path) == res.Output
	}
	// The last batch is delivered after ctx is done and must still regenerate.
	live := context.WithoutCancel(ctx)
	return a.watcher.Watch(ctx, dir, skip, func(paths []string) {
		a.logger.Debug("changed " + filepath.Base(paths[0]))
		if _, _, err := a.generate(live, cfg, opts); err != nil {
			a.logger.Error(err)
		}
	})
}

func (a *App) generate(
	ctx context.Context,
	cfg *domain.Config,
	opts GenerateOptions,
) (res *domain.GenerationResult, dir string, err error) {
	ctx, span := a.tracer.Start(ctx, "generate")
	defer func() {
		if err != nil {
			span.RecordError(err)
		} else {
			span.SetAttribute("output", res.Output)
			span.SetAttribute("changed", res.Changed)
		}
		span.End()
	}()

	report, err := a.inspect(ctx, cfg, opts.InspectOptions)
	if err != nil {
		return nil, "", err
	}

	store, err := a.openManifest(cfg.Generate.Manifest)
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to open manifest")
	}

	output := opts.Output
	if output == "" {
		output = cfg.Generate.Output
	}

	res, err = a.generator.Generate(codegen.Request{
		Report: report,
		Output: output,
		Store:  store,
		Force:  opts.Force,
	})
	if err != nil {
		return nil, "", err
	}
	return res, report.Dir, nil
}

func (a *App) inspect(ctx context.Context, cfg *domain.Config, opts InspectOptions) (*domain.PackageReport, error) {
	if opts.Pattern == "" {
		return nil, domain.ErrNoPatternSpecified
	}

	ctx, span := a.tracer.Start(ctx, "inspect")
	defer span.End()
	span.SetAttribute("pattern", opts.Pattern)

	report, err := a.inspector.Inspect(ctx, ports.InspectRequest{
		Dir:         opts.Dir,
		Pattern:     opts.Pattern,
		Types:       opts.Types,
		Conventions: cfg.Conventions,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("types", len(report.Types))
	return report, nil
}

// loadConfig reads the configuration and applies its log settings.
func (a *App) loadConfig(path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if lc, ok := a.logger.(logConfigurer); ok {
		lc.SetJSON(cfg.Log.JSON)
		if err := lc.SetLevel(cfg.Log.Level); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
