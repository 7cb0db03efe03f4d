// Package config provides the configuration loader for automap.
package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path, or automap.yaml when path is
// empty. A missing file yields the defaults. Environment variables are applied
// last.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.DefaultConfigFile
	}

	file := fromDomain(domain.DefaultConfig())
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		l.Logger.Debug("no config file at " + path + ", using defaults")
	}

	if err := env.Parse(&file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}

	return toDomain(file)
}

func readAndUnmarshalYAML(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func fromDomain(cfg *domain.Config) Automapfile {
	return Automapfile{
		Conventions: ConventionsDTO{
			SetterPrefix:   cfg.Conventions.SetterPrefix,
			GetterPrefixes: slices.Clone(cfg.Conventions.GetterPrefixes),
		},
		Log: LogDTO{
			JSON:  cfg.Log.JSON,
			Level: cfg.Log.Level,
		},
		Generate: GenerateDTO{
			Output:   cfg.Generate.Output,
			Manifest: cfg.Generate.Manifest,
		},
	}
}

func toDomain(file Automapfile) (*domain.Config, error) {
	level := strings.ToLower(strings.TrimSpace(file.Log.Level))
	if level == "" {
		level = domain.DefaultConfig().Log.Level
	}
	if !slices.Contains(validLogLevels, level) {
		return nil, zerr.With(domain.ErrInvalidLogLevel, "level", file.Log.Level)
	}

	cfg := domain.DefaultConfig()
	cfg.Conventions = domain.Conventions{
		SetterPrefix:   strings.TrimSpace(file.Conventions.SetterPrefix),
		GetterPrefixes: trimAll(file.Conventions.GetterPrefixes),
	}
	cfg.Log = domain.LogConfig{JSON: file.Log.JSON, Level: level}
	if file.Generate.Output != "" {
		cfg.Generate.Output = file.Generate.Output
	}
	if file.Generate.Manifest != "" {
		cfg.Generate.Manifest = file.Generate.Manifest
	}
	return cfg, nil
}

func trimAll(strs []string) []string {
	out := make([]string, 0, len(strs))
	for _, s := range strs {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
