package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/renderers/tui"
)

type FillCmd struct {
	flags   *Flags
	retries int
	noIntro bool

	// driver overrides the survey prompts; tests inject a scripted driver
	driver tui.PromptDriver
}

// NewFillCmd creates a new fill command.
func NewFillCmd(flags *Flags) *FillCmd {
	return &FillCmd{flags: flags, retries: -1}
}

// Register adds the fill command to the application.
func (cmd *FillCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fill",
		Usage:     "Fill in the registration form interactively",
		UsageText: "regform fill [options]",
		Description: `Prompts for each field in document order. Answers drive the same handlers
as the web form: picking a design narrows the colors, overlapping workshops
are disabled, and the card fields are only asked for when paying by card.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "retries",
				Usage:       "rounds offered to fix failed fields (defaults to the config value)",
				Value:       -1,
				Destination: &cmd.retries,
			},
			&cli.BoolFlag{
				Name:        "no-intro",
				Usage:       "skip the rendered introduction",
				Destination: &cmd.noIntro,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FillCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.config()

	f, err := cmd.flags.Orchestrator().NewForm()
	if err != nil {
		return err
	}

	retries := cfg.Retries
	if cmd.retries >= 0 {
		retries = cmd.retries
	}
	theme := tui.PlainTheme()
	if cfg.Color {
		theme = tui.DefaultTheme()
	}
	driver := cmd.driver
	if driver == nil {
		driver = tui.NewSurveyDriver(c.Root().Writer)
	}

	options := []tui.Option{
		tui.WithPromptDriver(driver),
		tui.WithTheme(theme),
		tui.WithMaxRounds(retries),
		tui.WithLogger(cmd.flags.Logger),
	}
	if cmd.noIntro {
		options = append(options, tui.WithIntroRenderer(func(markdown string) (string, error) {
			return "", nil
		}))
	}

	result, err := tui.New(options...).Run(ctx, f)
	if errors.Is(err, tui.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	if result.Prevented {
		return ErrNotSubmitted
	}
	return nil
}
