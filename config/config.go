// Package config resolves the command line settings from the environment.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/viant/dpgraph/profile"
)

const (
	EnvDebug   = "DPGRAPH_DEBUG"
	EnvProfile = "DPGRAPH_PROFILE"
	EnvFormat  = "DPGRAPH_FORMAT"

	DefaultProfile = "profile.yaml"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("format", func(fl validator.FieldLevel) bool {
		_, err := profile.ParseFormat(fl.Field().String())
		return err == nil
	})
}

// Config holds the settings shared by all commands
type Config struct {
	Debug   bool
	Profile string `validate:"required"`
	Format  string `validate:"required,format"`
}

// Load reads the configuration from the environment, dotenv files included
func Load(filenames ...string) (*Config, error) {
	LoadEnv(filenames...)
	cfg := &Config{
		Debug:   GetEnvBool(EnvDebug, false),
		Profile: GetEnvString(EnvProfile, DefaultProfile),
		Format:  GetEnvString(EnvFormat, string(profile.YAML)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
