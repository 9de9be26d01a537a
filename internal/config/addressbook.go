package config

import (
	"github.com/kelseyhightower/envconfig"
)

type AddressBookConfig struct {
	BaseConfig
	Book  BookConfig  `envconfig:"ADDRESSBOOK"`
	Shell ShellConfig `envconfig:"SHELL"`
}

type BookConfig struct {
	Locale   string `envconfig:"LOCALE" default:"en" validate:"required"`
	SeedFile string `envconfig:"SEED_FILE"`
}

type ShellConfig struct {
	Prompt string `envconfig:"PROMPT" default:"addressbook> "`
	Table  bool   `envconfig:"TABLE" default:"true"`
}

func LoadAddressBook() (*AddressBookConfig, error) {
	var cfg AddressBookConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
