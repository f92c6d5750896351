// Package config loads runtime configuration for the Scana CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path or DSN of the local SQLite database
//	-l string   default UI language code ("da" or "en")
//
// # JSON schema
//
//	{
//	  "database_dsn": "scana.db",
//	  "default_language": "da"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabaseDSN and DefaultLanguage
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
