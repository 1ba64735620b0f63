package script_rebuild_aggregates

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"platinalab.dev/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	AggregationService *service.Aggregation
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "rebuild_aggregates",
		Description: "rescan the result store and rebuild player stats & leaderboards for every line category",
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}
