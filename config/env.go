package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Env holds the overrides read from the environment.
type Env struct {
	Profile string `env:"HEXRANGE_PROFILE" envDefault:"default"`
	Strict  *bool  `env:"HEXRANGE_STRICT"`
}

// ParseEnv loads the overrides from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Wrap(err, "failed to parse environment")
	}
	return e, nil
}

// Apply overlays the environment overrides on p.
func (e Env) Apply(p Profile) Profile {
	if e.Strict != nil {
		p.Strict = *e.Strict
	}
	return p
}
