package config

import (
	"encoding/json"
	"fmt"
	"os"

	validator "gopkg.in/validator.v2"
)

type Config struct {
	APIURL                 string `json:"api_url" validate:"nonzero"`
	APIKey                 string `json:"api_key" validate:"nonzero"`
	SecretKey              string `json:"secret_key" validate:"nonzero"`
	RegionID               string `json:"region_id" validate:"nonzero"`
	SkipSSLValidation      bool   `json:"skip_ssl_validation"`
	LogLevel               string `json:"log_level"`
	LogPrefix              string `json:"log_prefix" validate:"nonzero"`
	MetronAddress          string `json:"metron_address"`
	JobPollIntervalSeconds int    `json:"job_poll_interval_seconds" validate:"min=0"`
	JobTimeoutSeconds      int    `json:"job_timeout_seconds" validate:"min=0"`
}

func (c *Config) Validate() error {
	return validator.Validate(c)
}

func New(path string) (*Config, error) {
	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %s", err)
	}

	cfg := Config{}
	err = json.Unmarshal(jsonBytes, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %s", err)
	}

	if err := cfg.Validate(); err != nil {
		return &cfg, fmt.Errorf("invalid config: %s", err)
	}

	return &cfg, nil
}
