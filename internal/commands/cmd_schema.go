package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/contract"
)

type SchemaCmd struct {
	flags  *Flags
	format string
}

// NewSchemaCmd creates a new schema command.
func NewSchemaCmd(flags *Flags) *SchemaCmd {
	return &SchemaCmd{flags: flags}
}

// Register adds the schema command to the application.
func (cmd *SchemaCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "schema",
		Usage:       "Print the registration contract as OpenAPI",
		UsageText:   "regform schema [options]",
		Description: "Describes the registration submission, including the payment gated card fields, as an OpenAPI 3 document.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (json, yaml)",
				Value:       string(contract.FormatJSON),
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SchemaCmd) run(ctx context.Context, c *cli.Command) error {
	format := contract.Format(cmd.format)
	if format != contract.FormatJSON && format != contract.FormatYAML {
		return fmt.Errorf("unsupported format %q (expected json or yaml)", cmd.format)
	}

	catalog, err := cmd.flags.Orchestrator().Catalog()
	if err != nil {
		return err
	}
	doc, err := contract.Document(ctx, catalog)
	if err != nil {
		return err
	}
	data, err := contract.Marshal(doc, format)
	if err != nil {
		return err
	}
	_, err = c.Root().Writer.Write(data)
	return err
}
