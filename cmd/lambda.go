package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/mirror/app"
	"github.com/lambda-feedback/mirror/app/lambda"
	"github.com/lambda-feedback/mirror/util/conf"
	"github.com/lambda-feedback/mirror/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the echo endpoint as an AWS Lambda
runtime interface client, which allows it to be directly
invoked by the AWS Lambda runtime without any additional
dependencies.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    string(lambda.ProxySourceApiGatewayV2),
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

var lambdaDefaults = conf.DefaultConfig{
	"lambda_proxy_source": string(lambda.ProxySourceApiGatewayV2),
}

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  lambdaDefaults,
		EnvPrefix: envPrefix,
		Log:       log,
	})
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
