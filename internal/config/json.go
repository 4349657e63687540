package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/askfm/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// stay at their zero value and do not override earlier sources.
type JsonConfig struct {
	UserFilePath     string `json:"user_file_path"`
	QuestionFilePath string `json:"question_file_path"`
	LogLevel         *int   `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. Without the flag nothing is loaded. Read or unmarshal errors
// panic; the config layer runs before any state exists, so there is nothing
// to unwind.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UserFilePath != "" {
		cfg.UserFilePath = jc.UserFilePath
	}
	if jc.QuestionFilePath != "" {
		cfg.QuestionFilePath = jc.QuestionFilePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
