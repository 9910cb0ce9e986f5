package config

import (
	"encoding/json"
	"os"

	"github.com/dberestov/microblog/internal/flagx"
	"github.com/dberestov/microblog/internal/timex"
)

// jsonConfig is the DTO for reading JSON configuration files. It uses
// timex.Duration for the validity field so JSON can specify it either as a
// string such as "24h" or as integer nanoseconds. Absent fields keep the
// value already in Config.
type jsonConfig struct {
	CategoryAddr   string         `json:"category_addr"`
	TopicAddr      string         `json:"topic_addr"`
	AdminAddr      string         `json:"admin_addr"`
	BackendAddr    string         `json:"backend_addr"`
	FrontendAddr   string         `json:"frontend_addr"`
	CategoryTarget string         `json:"category_target"`
	TopicTarget    string         `json:"topic_target"`
	AdminTarget    string         `json:"admin_target"`
	DatabaseDSN    string         `json:"database_dsn"`
	SecretKey      string         `json:"secret_key"`
	TokenIssuer    string         `json:"token_issuer"`
	TokenValidity  timex.Duration `json:"token_validity"`
}

// parseJSON overlays values from the JSON file named by the -c/-config
// flags onto config. When neither flag is set nothing is loaded. An
// unreadable or malformed file panics: a named config file that cannot be
// applied is a startup failure, not something to limp past.
func parseJSON(config *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.CategoryAddr, c.CategoryAddr)
	overlay(&config.TopicAddr, c.TopicAddr)
	overlay(&config.AdminAddr, c.AdminAddr)
	overlay(&config.BackendAddr, c.BackendAddr)
	overlay(&config.FrontendAddr, c.FrontendAddr)
	overlay(&config.CategoryTarget, c.CategoryTarget)
	overlay(&config.TopicTarget, c.TopicTarget)
	overlay(&config.AdminTarget, c.AdminTarget)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.TokenIssuer, c.TokenIssuer)
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = c.TokenValidity.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
