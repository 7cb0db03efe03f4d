package domain

import "go.trai.ch/zerr"

var (
	// ErrNilType is returned when a nil type descriptor is passed to discovery.
	ErrNilType = zerr.New("nil type descriptor")

	// ErrNilInstance is returned when an accessor or method is invoked with a nil instance.
	ErrNilInstance = zerr.New("nil instance")

	// ErrTypeMismatch is returned when an instance is not compatible with the owning type of an accessor.
	ErrTypeMismatch = zerr.New("instance type does not match owning type")

	// ErrNilEmbedded is returned when a member is reached through a nil embedded pointer or interface.
	ErrNilEmbedded = zerr.New("nil embedded value on member path")

	// ErrGetterPanicked is returned when a getter or no-arg method panics during invocation.
	ErrGetterPanicked = zerr.New("method panicked")

	// ErrMethodNotFound is returned when a method cannot be resolved on the receiver at call time.
	ErrMethodNotFound = zerr.New("method not found on receiver")

	// ErrNotSettable is returned when a member cannot be written on the given instance.
	ErrNotSettable = zerr.New("member is not settable")

	// ErrIncompatibleType is returned when a value cannot be assigned to a member.
	ErrIncompatibleType = zerr.New("value is not assignable to member type")

	// ErrDestinationNotPointer is returned when a mapping destination is not a non-nil pointer.
	ErrDestinationNotPointer = zerr.New("destination must be a non-nil pointer")

	// ErrMappingFailed is returned when a member cannot be copied from source to destination.
	ErrMappingFailed = zerr.New("failed to map member")

	// ErrCyclicSource is returned when a source cycle leads back into a destination member held by value.
	ErrCyclicSource = zerr.New("cyclic source cannot be mapped into a value member")

	// ErrSourceMethodFailed is returned when a source method reports an error through its last result.
	ErrSourceMethodFailed = zerr.New("source method returned an error")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be applied.
	ErrConfigEnvFailed = zerr.New("failed to apply environment overrides")

	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrPackageLoadFailed is returned when a Go package cannot be loaded for static inspection.
	ErrPackageLoadFailed = zerr.New("failed to load package")

	// ErrTypeNotFound is returned when a requested type is not declared by the inspected package.
	ErrTypeNotFound = zerr.New("type not found")

	// ErrNoPatternSpecified is returned when no package pattern is given to inspect or gen.
	ErrNoPatternSpecified = zerr.New("no package pattern specified")

	// ErrRenderFailed is returned when generated source cannot be formatted.
	ErrRenderFailed = zerr.New("failed to render accessor tables")

	// ErrOutputWriteFailed is returned when the generated file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write generated file")

	// ErrStoreReadFailed is returned when the manifest cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read manifest")

	// ErrStoreUnmarshalFailed is returned when the manifest cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal manifest")

	// ErrStoreMarshalFailed is returned when the manifest cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrStoreWriteFailed is returned when the manifest cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write manifest")
)
