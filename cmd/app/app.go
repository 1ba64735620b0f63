package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"platinalab.dev/backend/cmd/app/cli/runscript"
	"platinalab.dev/backend/cmd/app/server"
	"platinalab.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "platinabackend",
		Description: "The PLATiNA::LAB record ingestion & leaderboard backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS as MQ and Redis as state synchronization.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			runscript.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
