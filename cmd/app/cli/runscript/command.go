package runscript

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "platinalab.dev/backend/cmd/app/cli"
	script_rebuild_aggregates "platinalab.dev/backend/cmd/app/cli/runscript/scripts/rebuild_aggregates"
)

func depsFn[T any]() func() T {
	return func() T {
		var deps T
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "run-script",
		Description: "run maintenance go scripts",
		Subcommands: []*cli.Command{
			script_rebuild_aggregates.Command(depsFn[script_rebuild_aggregates.CommandDeps]()),
		},
	}
}
