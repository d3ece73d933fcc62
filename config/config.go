package config

import (
	"github.com/lambda-feedback/mirror/echo"
	"github.com/lambda-feedback/mirror/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Echo is the echo handler configuration
	Echo echo.Config `conf:"echo"`
}

// DefaultConfig holds the values used when no other source sets them.
var DefaultConfig = conf.DefaultConfig{
	"log_level":              "info",
	"log_format":             "production",
	"echo.max_body_size":     echo.DefaultMaxBodySize,
	"echo.validate_response": false,
}
