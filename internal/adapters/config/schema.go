package config

// Automapfile represents the structure of the automap.yaml configuration file.
// Every setting can be overridden through the environment.
type Automapfile struct {
	Conventions ConventionsDTO `yaml:"conventions"`
	Log         LogDTO         `yaml:"log"`
	Generate    GenerateDTO    `yaml:"generate"`
}

// ConventionsDTO holds the naming conventions section.
type ConventionsDTO struct {
	SetterPrefix   string   `yaml:"setterPrefix"   env:"AUTOMAP_SETTER_PREFIX"`
	GetterPrefixes []string `yaml:"getterPrefixes" env:"AUTOMAP_GETTER_PREFIXES" envSeparator:","`
}

// LogDTO holds the logging section.
type LogDTO struct {
	JSON  bool   `yaml:"json"  env:"AUTOMAP_LOG_JSON"`
	Level string `yaml:"level" env:"AUTOMAP_LOG_LEVEL"`
}

// GenerateDTO holds the code generation section.
type GenerateDTO struct {
	Output   string `yaml:"output"   env:"AUTOMAP_OUTPUT"`
	Manifest string `yaml:"manifest" env:"AUTOMAP_MANIFEST"`
}
