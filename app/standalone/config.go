package standalone

import "github.com/lambda-feedback/mirror/internal/server"

// Config is the configuration of the serve command.
type Config struct {
	// HttpConfig is squashed so host, port and h2c are top-level keys.
	HttpConfig server.HttpConfig `conf:",squash"`
}
