package main

import (
	"os"
	"strconv"

	"github.com/codercollo/linqyard/backend/internal/jsonlog"
	"github.com/codercollo/linqyard/backend/internal/validator"
)

// envString returns the environment value for key or def when unset/empty
func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt is envString for integers; unparsable values fall back to def
func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// validateConfig checks settings that flag parsing alone cannot
func validateConfig(cfg config) error {
	v := validator.New()

	v.Check(cfg.port > 0 && cfg.port <= 65535, "port", "must be between 1 and 65535")
	v.Check(validator.In(cfg.env, "development", "staging", "production"), "env", "must be development, staging or production")

	_, err := jsonlog.ParseLevel(cfg.logLevel)
	v.Check(err == nil, "log-level", "must be info, error, fatal or off")

	if cfg.health.echo {
		v.Check(validator.Matches(cfg.health.echoVar, validator.EnvVarRX), "health-echo-var", "must be a valid environment variable name")
	}

	if cfg.limiter.enabled {
		v.Check(cfg.limiter.rps > 0, "limiter-rps", "must be greater than zero")
		v.Check(cfg.limiter.burst > 0, "limiter-burst", "must be greater than zero")
	}

	for _, origin := range cfg.cors.trustedOrigins {
		v.Check(validator.IsOrigin(origin), "cors-trusted-origins", "must contain scheme://host[:port] origins only")
	}
	v.Check(validator.Unique(cfg.cors.trustedOrigins), "cors-trusted-origins", "must not contain duplicates")

	for _, host := range cfg.cors.trustedHosts {
		v.Check(validator.Matches(host, validator.HostRX), "cors-trusted-hosts", "must contain host names only")
	}

	if !v.Valid() {
		return v
	}
	return nil
}
