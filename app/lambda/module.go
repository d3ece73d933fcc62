package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/mirror/handler"
	"github.com/lambda-feedback/mirror/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide echo and health routes
		handler.Module(),
		// provide lambda handler
		fx.Provide(NewLifecycleHandler),
		// invoke lambda handler
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
