package config

// Config holds runtime settings for the Scana CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database holding the
//     key-value namespace (":memory:" is accepted for throwaway runs).
//   - DefaultLanguage: UI language used until a persisted preference exists.
type Config struct {
	DatabaseDSN     string
	DefaultLanguage string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "scana.db"
	c.DefaultLanguage = "da"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
