package main

import "time"

type appConfig struct {
	Name          string        `env:"APP_NAME" envDefault:"categoryd"`  // Name is the service name attached to every log record.
	Env           string        `env:"APP_ENV" envDefault:"development"` // Env selects the logging preset: development, staging or production.
	LogLevel      string        `env:"LOG_LEVEL"`                        // LogLevel overrides the preset level (debug, info, warn, error).
	AdminAddr     string        `env:"ADMIN_ADDR"`                       // AdminAddr enables the /metrics and /healthz listener when set.
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"0s"`   // LookupTimeout bounds each store round trip; 0 disables it.
}
