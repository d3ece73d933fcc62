package conf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/mirror/config"
	"github.com/lambda-feedback/mirror/util/conf"
)

func TestConfigContext(t *testing.T) {
	ctx := conf.ContextWithConfig(context.Background(), config.Config{LogLevel: "debug"})

	cfg, err := conf.GetConfigFromContext[config.Config](ctx)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = conf.GetConfigFromContext[string](ctx)
	assert.ErrorIs(t, err, conf.ErrInvalidConfigInContext)

	_, err = conf.GetConfigFromContext[config.Config](context.Background())
	assert.ErrorIs(t, err, conf.ErrNoConfigInContext)
}
