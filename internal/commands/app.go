package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/internal/config"
	"github.com/jmereardon17/fsjs-techdegree-project-3/internal/logging"
)

// NewApp builds the root command with every subcommand registered. The Before
// hook loads the config and the logger into flags; After releases the log
// file.
func NewApp(flags *Flags, version string) *cli.Command {
	var logCloser func()

	app := &cli.Command{
		Name:      "regform",
		Usage:     "Fill in, check and render the conference registration form",
		UsageText: "regform [global options] command [command options]",
		Description: `regform drives the Full Stack Conference registration form from the terminal.

Run 'regform fill' to register interactively, 'regform check answers.yaml' to
validate a prepared set of answers, 'regform render -o html' to produce the
page, and 'regform schema' to print the submission contract.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("REGFORM_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("REGFORM_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (json, console)",
				Sources:     cli.EnvVars("REGFORM_LOG_FORMAT"),
				Destination: &flags.LogFormat,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("REGFORM_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "catalog",
				Usage:       "catalog file replacing the built-in conference options",
				Sources:     cli.EnvVars("REGFORM_CATALOG"),
				Destination: &flags.Catalog,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Catalog != "" {
				cfg.Catalog = flags.Catalog
			}
			if flags.LogLevel != "" {
				cfg.LogLevel = flags.LogLevel
			}
			if flags.LogFile != "" {
				cfg.LogFile = flags.LogFile
			}
			if flags.LogFormat != "" {
				cfg.LogFormat = flags.LogFormat
			}
			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("invalid flags: %w", err)
			}
			flags.Config = cfg

			logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile, cfg.LogFormat)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			flags.Logger = logger
			logCloser = closer

			logger.Debug().
				Str("config", flags.ConfigPath).
				Str("catalog", cfg.Catalog).
				Str("output", cfg.Output).
				Msg("configuration loaded")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = NewFillCmd(flags).Register(app)
	app = NewCheckCmd(flags).Register(app)
	app = NewRenderCmd(flags).Register(app)
	app = NewSchemaCmd(flags).Register(app)

	return app
}
