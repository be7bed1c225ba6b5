package config

// DefaultConfigFile is looked up in the working directory when no
// -config flag is given.
const DefaultConfigFile = "cs2types.yaml"

// Parameter sources
const (
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
)

// DefaultParamTable is the table holding raw param definitions in a cache dump.
const DefaultParamTable = "params"

// Color modes for terminal output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
