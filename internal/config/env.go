package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with values from the environment. Only variables
// that are actually set override earlier sources:
//
//	ASKFM_USER_FILE      path of the user record file
//	ASKFM_QUESTION_FILE  path of the question record file
//	ASKFM_LOG_LEVEL      slog level as an integer
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
