// Package internal holds configuration shared by the command-line
// binaries. Library packages never read the environment.
package internal

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config drives the inspection CLI. Every field has a default so the
// binary runs without any environment at all.
type Config struct {
	Zone     string `env:"DATETIME_ZONE,default=UTC"`
	Format   string `env:"DATETIME_FORMAT,default={Y}-{M}-{D}T{h}:{m}:{s}.{ms}{Z}" validate:"required"`
	LogLevel string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// Validate checks the rules go-env cannot express on its own.
func Validate(c Config) error {
	return validate.Struct(c)
}
