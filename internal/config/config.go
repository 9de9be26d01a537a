package config

import (
	"addressbook/internal/platform/logger"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// BaseConfig is shared by every binary. ENV only picks the zap preset
// (development adds caller and stack detail); it does not change the book.
type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"warn"`
	Format logger.Format `envconfig:"FORMAT" default:"json"`
}

func (c *BaseConfig) LoggerConfig() logger.Config {
	return logger.Config{
		Environment: c.Environment,
		Level:       c.Logger.Level,
		Format:      c.Logger.Format,
	}
}
