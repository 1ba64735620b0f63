package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"platinalab.dev/backend/internal/app"
	"platinalab.dev/backend/internal/app/appconfig"
	"platinalab.dev/backend/internal/app/appcontext"
)

func Run() {
	fxApp := app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(serve))

	if err := fxApp.Start(context.Background()); err != nil {
		panic(err)
	}

	<-fxApp.Done()

	if err := fxApp.Stop(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to gracefully stop app")
	}
}

func serve(app *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			go func() {
				if err := app.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}
