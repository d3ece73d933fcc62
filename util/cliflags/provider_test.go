package cliflags_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/mirror/util/cliflags"
)

func TestProvider_ReadsSetFlags(t *testing.T) {
	var read map[string]any

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level"},
			&cli.Int64Flag{Name: "max-body-size"},
			&cli.BoolFlag{Name: "validate-response"},
		},
		Action: func(ctx *cli.Context) error {
			var err error
			read, err = cliflags.Provider(ctx, ".", func(s string) string {
				if s == "max-body-size" {
					return "echo.max_body_size"
				}
				return s
			}).Read()
			return err
		},
	}

	err := app.RunContext(context.Background(), []string{
		"test",
		"--log-level", "debug",
		"--max-body-size", "1024",
		"--validate-response",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", read["log-level"])
	assert.Equal(t, true, read["validate-response"])
	assert.Equal(t, map[string]any{"max_body_size": int64(1024)}, read["echo"])
}

func TestProvider_ReadBytesUnsupported(t *testing.T) {
	_, err := (&cliflags.CLIFlags{}).ReadBytes()
	assert.Error(t, err)
}
