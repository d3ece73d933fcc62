package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/mirror/config"
	"github.com/lambda-feedback/mirror/internal/shell"
	"github.com/lambda-feedback/mirror/util/conf"
	"github.com/lambda-feedback/mirror/util/logging"
)

const envPrefix = "MIRROR_"

var (
	appName  = "mirror"
	appUsage = `A request echo endpoint for serverless platforms. It replies
with the body, query, cookies and headers it received and
sets fixed CDN cache directives on every response.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a JSON file.",
				EnvVars: []string{"MIRROR_CONFIG"},
			},
			&cli.PathFlag{
				Name:    "env-file",
				Usage:   "load configuration from a dotenv file.",
				EnvVars: []string{"MIRROR_ENV_FILE"},
			},
			// echo flags
			&cli.Int64Flag{
				Name:     "max-body-size",
				Usage:    "the maximum request body size in bytes.",
				Category: "echo",
				EnvVars:  []string{"ECHO_MAX_BODY_SIZE"},
			},
			&cli.BoolFlag{
				Name:     "validate-response",
				Usage:    "validate response payloads against their JSON schema.",
				Category: "echo",
				EnvVars:  []string{"ECHO_VALIDATE_RESPONSE"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the logger
			log, err := createLogger(ctx)
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// parse config using defaults, files, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:         ctx,
				CliMap:      rootCliMap,
				Defaults:    config.DefaultConfig,
				EnvPrefix:   envPrefix,
				FileName:    ctx.Path("config"),
				EnvFileName: ctx.Path("env-file"),
				Log:         log,
			})
			if err != nil {
				return err
			}

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			// Before does not run for --help and usage errors
			if log, err := logging.LoggerFromContext(ctx.Context); err == nil {
				_ = log.Sync()
			}

			return nil
		},
	}
)

// rootCliMap maps root flags onto nested config keys.
var rootCliMap = map[string]string{
	"max-body-size":     "echo.max_body_size",
	"validate-response": "echo.validate_response",
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the app with the process arguments and returns the
// exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

// run executes the app and returns the process exit code.
func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	// if app exited with ExitError, exit with given exit code
	if code, ok := shell.ExitCode(err); ok {
		return code
	}

	fmt.Printf("exit error: %s\n", err.Error())

	// otherwise, exit with exit code 1
	return 1
}

func createLogger(ctx *cli.Context) (*zap.Logger, error) {
	level := getLogLevelFromCLI(ctx)
	format := getLogFormatFromCLI(ctx)

	var config zap.Config
	if format == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	config.InitialFields = map[string]any{
		"app": appName,
	}

	config.Level = level

	return config.Build()
}

func getLogFormatFromCLI(ctx *cli.Context) string {
	format := ctx.String("log-format")
	if format != "" {
		return format
	}

	return "production"
}

func getLogLevelFromCLI(ctx *cli.Context) zap.AtomicLevel {
	lvl := ctx.String("log-level")

	if atom, err := zap.ParseAtomicLevel(lvl); err == nil {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
