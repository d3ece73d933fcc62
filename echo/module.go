package echo

import "go.uber.org/fx"

// Module provides the echo handler.
func Module(config Config) fx.Option {
	return fx.Module(
		"echo",

		// provide echo config
		fx.Supply(config),

		// provide echo handler
		fx.Provide(NewEchoHandler),
	)
}
