// Package config assembles runtime settings for the askfm CLI from layered
// sources: built-in defaults, an optional JSON file, environment variables,
// and command-line flags, each later source overriding the previous one.
package config

// Config holds the runtime settings. The two data-file paths are the only
// externally configurable inputs the application has; everything else it
// needs lives inside those files.
type Config struct {
	UserFilePath     string `env:"ASKFM_USER_FILE"`
	QuestionFilePath string `env:"ASKFM_QUESTION_FILE"`
	LogLevel         int    `env:"ASKFM_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults: the data files live in the
// working directory and logging is at info level.
func (c *Config) LoadDefaults() {
	c.UserFilePath = "users.txt"
	c.QuestionFilePath = "questions.txt"
	c.LogLevel = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
