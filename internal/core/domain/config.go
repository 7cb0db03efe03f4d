package domain

const (
	// DefaultConfigFile is the config file looked up in the working directory.
	DefaultConfigFile = "automap.yaml"
	// DefaultOutputFile is the generated file name, relative to the inspected package.
	DefaultOutputFile = "automap_accessors.go"
	// DefaultManifestFile records generated files, relative to the working directory.
	DefaultManifestFile = ".automap/manifest.json"
)

// Config is the resolved automap configuration.
type Config struct {
	Conventions Conventions
	Log         LogConfig
	Generate    GenerateConfig
}

// LogConfig controls the logger.
type LogConfig struct {
	JSON  bool
	Level string
}

// GenerateConfig controls the accessor table generator.
type GenerateConfig struct {
	Output   string
	Manifest string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Conventions: DefaultConventions(),
		Log: LogConfig{
			Level: "info",
		},
		Generate: GenerateConfig{
			Output:   DefaultOutputFile,
			Manifest: DefaultManifestFile,
		},
	}
}
