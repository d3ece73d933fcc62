package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/mirror/app"
	"github.com/lambda-feedback/mirror/app/standalone"
	"github.com/lambda-feedback/mirror/util/conf"
	"github.com/lambda-feedback/mirror/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server that echoes every
request it receives. Use it to run the endpoint outside of
a serverless platform, e.g. behind a CDN under test.

The command will launch the http server and blocks indefin-
itely, processing incoming http requests.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and echo requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "localhost",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT", "PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

var serveDefaults = conf.DefaultConfig{
	"host": "localhost",
	"port": 8080,
	"h2c":  false,
}

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  serveDefaults,
		EnvPrefix: envPrefix,
		Log:       log,
	})
	if err != nil {
		return err
	}

	log.Info("starting http server")

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
