// Package config provides configuration management for the raql CLI.
package config

// Defaults for configuration values.
const (
	DefaultGrammar   = "extended"
	DefaultSemantics = "set"
	DefaultOutput    = "text"
)

// Config holds all CLI configuration options.
type Config struct {
	// Grammar selects the syntax configuration used for parsing.
	Grammar string `koanf:"grammar"`
	// Semantics selects duplicate-row handling: "bag" or "set".
	Semantics string `koanf:"semantics"`
	// SchemaPath points at the initial schema file, either a YAML
	// mapping or definition statements.
	SchemaPath string `koanf:"schema"`
	// OutputFormat is "text" or "json".
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`
}
