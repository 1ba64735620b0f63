package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/server/svr"
	"platinalab.dev/backend/internal/service"
)

type PlayerController struct {
	fx.In

	ArchiveService     *service.Archive
	PlayerStatsService *service.PlayerStats
}

func RegisterPlayer(v1 *svr.V1, c PlayerController) {
	v1.Get("/players/:playerId/results", c.GetPlayerArchive)
	v1.Get("/players/:playerId/stats/:line", c.GetPlayerStats)
	v1.Get("/players/:playerId/progress/:line", c.GetPlayerProgress)
}

func (c *PlayerController) GetPlayerArchive(ctx *fiber.Ctx) error {
	playerId := ctx.Params("playerId")

	archive, err := c.ArchiveService.GetPlayerArchive(ctx.UserContext(), playerId)
	if err != nil {
		return err
	}

	return ctx.JSON(archive)
}

func (c *PlayerController) GetPlayerStats(ctx *fiber.Ctx) error {
	playerId := ctx.Params("playerId")
	line := types.LineCategory(ctx.Params("line"))

	stats, err := c.PlayerStatsService.GetStats(ctx.UserContext(), playerId, line)
	if err != nil {
		return err
	}

	return ctx.JSON(stats)
}

func (c *PlayerController) GetPlayerProgress(ctx *fiber.Ctx) error {
	playerId := ctx.Params("playerId")
	line := types.LineCategory(ctx.Params("line"))

	history, err := c.PlayerStatsService.GetProgressHistory(ctx.UserContext(), playerId, line)
	if err != nil {
		return err
	}

	return ctx.JSON(history)
}
