// Package config defines the resolved configuration model shared by every
// schema version: the ordered macro list, global settings, and the error
// taxonomy. Version-specific resolvers live in subpackages and register
// themselves here, so adding a schema version never touches the matching
// engine or prior resolvers.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/macrokit/midimacro/internal/document"
	"github.com/macrokit/midimacro/internal/macro"
)

// ErrorKind classifies a ConfigError.
type ErrorKind int

const (
	// KindInvalidConfig covers structurally or semantically invalid
	// documents: required field missing, wrong shape, value out of domain.
	KindInvalidConfig ErrorKind = iota

	// KindUnsupportedVersion means the document declares a schema version
	// no resolver is registered for.
	KindUnsupportedVersion
)

// ConfigError is the single error type the resolution pipeline surfaces.
// The message always names the offending field path.
type ConfigError struct {
	Kind    ErrorKind
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// InvalidConfigf constructs a KindInvalidConfig error.
func InvalidConfigf(format string, args ...any) *ConfigError {
	return &ConfigError{Kind: KindInvalidConfig, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedVersionf constructs a KindUnsupportedVersion error.
func UnsupportedVersionf(format string, args ...any) *ConfigError {
	return &ConfigError{Kind: KindUnsupportedVersion, Message: fmt.Sprintf(format, args...)}
}

// Settings holds the resolved global settings of a configuration.
type Settings struct {
	// DevicePattern is the substring used to select the MIDI input port.
	// Empty means the CLI flag or app settings must supply one.
	DevicePattern string

	// Stop is the event matcher that tears down the listening loop.
	// Resolvers substitute a documented default when the document omits it.
	Stop macro.EventMatcher
}

// Config is a fully resolved configuration: an ordered macro list whose
// declaration order equals evaluation order, plus global settings.
type Config struct {
	Macros   []*macro.Macro
	Settings Settings
}

// ResolverFunc resolves an untyped document tree into a Config.
type ResolverFunc func(doc document.Value) (*Config, error)

var resolvers = map[int64]ResolverFunc{}

// RegisterResolver registers a schema version resolver. Version packages
// call this from init; duplicate registrations are a programming error.
func RegisterResolver(version int64, fn ResolverFunc) {
	if _, exists := resolvers[version]; exists {
		panic(fmt.Sprintf("config: resolver for version %d registered twice", version))
	}
	resolvers[version] = fn
}

// SupportedVersions returns the registered schema versions, sorted.
func SupportedVersions() []int64 {
	versions := make([]int64, 0, len(resolvers))
	for v := range resolvers {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions
}

// Resolve dispatches a document to the resolver for its declared schema
// version.
func Resolve(doc document.Value) (*Config, error) {
	if _, ok := doc.AsMap(); !ok {
		return nil, InvalidConfigf("configuration root must be a map, got %s", doc.Kind())
	}

	version, ok := doc.GetInt("version")
	if !ok {
		return nil, InvalidConfigf("version: required integer field is missing or not an integer")
	}

	resolve, ok := resolvers[version]
	if !ok {
		return nil, UnsupportedVersionf("version: schema version %d is not supported (supported: %v)",
			version, SupportedVersions())
	}

	return resolve(doc)
}

// Load reads a configuration file, parses it, and resolves it. This is the
// only place the pipeline touches the filesystem; everything below works on
// the parsed document tree.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is provided by the user's own flags or settings
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	doc, err := document.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg, err := Resolve(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}
