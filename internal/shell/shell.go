package shell

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Shell runs an fx application until the process is signalled to stop.
type Shell struct {
	log     *zap.Logger
	options []fx.Option
}

// New creates a shell. The options are shared by every Run.
func New(log *zap.Logger, options ...fx.Option) *Shell {
	return &Shell{
		log:     log,
		options: options,
	}
}

// Run starts the application composed of the shared and the given
// options, blocks until a shutdown signal arrives and stops it again.
// The returned error is always an *ExitError.
func (s *Shell) Run(ctx context.Context, options ...fx.Option) error {
	// flush the logger once the app has stopped
	defer func() { _ = s.log.Sync() }()

	// the app context is cancelled once Run returns
	appCtx, cancelApp := context.WithCancel(ctx)
	defer cancelApp()

	fxApp := s.createFxApp(appCtx, options...)

	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()

	if err := fxApp.Start(startCtx); err != nil {
		s.log.Error("failed to start", zap.Error(err))
		return NewExitError(1)
	}

	sig := <-fxApp.Wait()

	s.log.Info("shutting down", zap.Int("exit_code", sig.ExitCode))

	stopCtx, cancelStop := context.WithTimeout(ctx, fxApp.StopTimeout())
	defer cancelStop()

	if err := fxApp.Stop(stopCtx); err != nil {
		s.log.Error("failed to stop", zap.Error(err))
		return NewExitError(1)
	}

	return NewExitError(sig.ExitCode)
}

func (s *Shell) createFxApp(ctx context.Context, options ...fx.Option) *fx.App {
	return fx.New(
		// inject global execution context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),

		// inject the logger
		fx.Supply(s.log),

		// use the logger also for fx' logs
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: s.log.Named("fx")}
		}),

		// shared options
		fx.Options(s.options...),

		// run options
		fx.Options(options...),
	)
}
