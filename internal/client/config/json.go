package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ekalnins/campustrade/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// given in seconds; zero values leave the corresponding Config field alone.
type jsonConfig struct {
	APIBaseURL        string `json:"api_base_url"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	DatabasePath      string `json:"database_path"`
}

// parseJSON overlays cfg with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JSONConfigFlags).
// If no path was given, nothing is loaded. Read or unmarshal errors panic;
// a broken config file should stop the program before it talks to the API.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
