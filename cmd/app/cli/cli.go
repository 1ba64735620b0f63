package cli

import (
	"context"

	"go.uber.org/fx"

	"platinalab.dev/backend/internal/app"
	"platinalab.dev/backend/internal/app/appcontext"
)

func Start(module fx.Option) {
	app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
