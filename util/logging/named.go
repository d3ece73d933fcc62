package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NamedLogger returns a decorator that appends name to the logger name.
func NamedLogger(name string) func(log *zap.Logger) *zap.Logger {
	return func(log *zap.Logger) *zap.Logger {
		return log.Named(name)
	}
}

// DecorateLogger names the logger seen by an fx module and its children.
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(NamedLogger(name))
}
