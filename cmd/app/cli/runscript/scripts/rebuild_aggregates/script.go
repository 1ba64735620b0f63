package script_rebuild_aggregates

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	log.Info().Msg("rebuilding aggregates for all line categories")

	if err := deps.AggregationService.RebuildAll(ctx.Context); err != nil {
		return err
	}

	log.Info().Msg("rebuild finished")
	return nil
}
