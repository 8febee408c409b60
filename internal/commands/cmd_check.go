package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/contract"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/orchestrator"
)

type CheckCmd struct {
	flags  *Flags
	output string
	strict bool
}

// NewCheckCmd creates a new check command.
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application.
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Validate a registration answers file",
		UsageText: "regform check [options] <values.yaml|->",
		Description: `Replays the answers through the form the way a user filling it in would,
then submits. Exits non-zero when the submission is blocked.

With --strict the answers are first checked against the registration contract.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output renderer (text, json, html)",
				Destination: &cmd.output,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "reject answers that do not satisfy the registration contract",
				Destination: &cmd.strict,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one values file, got %d", c.Args().Len())
	}

	values, err := readValues(c.Args().First(), c.Root().Reader)
	if err != nil {
		return err
	}

	gen := cmd.flags.Orchestrator()
	if cmd.strict {
		catalog, err := gen.Catalog()
		if err != nil {
			return err
		}
		if err := contract.ValidateValues(catalog, values); err != nil {
			return err
		}
	}

	resp, err := gen.Generate(ctx, orchestrator.Request{
		Values:        &values,
		Submit:        true,
		Renderer:      cmd.output,
		RenderOptions: cmd.flags.RenderOptions(),
	})
	if err != nil {
		return err
	}
	if resp.ApplyErr != nil {
		cmd.flags.Logger.Warn().Err(resp.ApplyErr).Msg("some answers could not be applied")
	}

	if _, err := c.Root().Writer.Write(resp.Output); err != nil {
		return err
	}
	if resp.Result.Prevented {
		return ErrNotSubmitted
	}
	return nil
}
