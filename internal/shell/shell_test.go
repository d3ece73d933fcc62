package shell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/mirror/internal/shell"
)

func TestShell_Run_Shutdown(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return sd.Shutdown(fx.ExitCode(4))
			},
		})
	}))

	var exitErr *shell.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 4, exitErr.ExitCode)
}

func TestShell_Run_StartFailure(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	// an unsatisfied dependency fails the start
	err := s.Run(context.Background(), fx.Invoke(func(*testing.T) {}))

	var exitErr *shell.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode)
}
