package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/orchestrator"
)

type RenderCmd struct {
	flags  *Flags
	output string
	values string
	submit bool
}

// NewRenderCmd creates a new render command.
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application.
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render a snapshot of the registration form",
		UsageText: "regform render [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output renderer (text, json, html)",
				Destination: &cmd.output,
			},
			&cli.StringFlag{
				Name:        "values",
				Usage:       "answers file to replay before rendering (- for stdin)",
				Destination: &cmd.values,
			},
			&cli.BoolFlag{
				Name:        "submit",
				Usage:       "submit after replaying answers so errors are shown",
				Destination: &cmd.submit,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	req := orchestrator.Request{
		Submit:        cmd.submit,
		Renderer:      cmd.output,
		RenderOptions: cmd.flags.RenderOptions(),
	}
	if cmd.values != "" {
		values, err := readValues(cmd.values, c.Root().Reader)
		if err != nil {
			return err
		}
		req.Values = &values
	}

	resp, err := cmd.flags.Orchestrator().Generate(ctx, req)
	if err != nil {
		return err
	}
	if resp.ApplyErr != nil {
		cmd.flags.Logger.Warn().Err(resp.ApplyErr).Msg("some answers could not be applied")
	}

	_, err = c.Root().Writer.Write(resp.Output)
	return err
}
