package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
}

type svcConfig struct {
	Server       string        `envconfig:"QUERYJOB_SERVER" default:"http://localhost:8080"`
	LogLevel     string        `envconfig:"QUERYJOB_LOG_LEVEL" default:"info"`
	PollInterval time.Duration `envconfig:"QUERYJOB_POLL_INTERVAL" default:"5s"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

func NewDefault() (*Config, error) {
	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, err
	}
	return c, nil
}
