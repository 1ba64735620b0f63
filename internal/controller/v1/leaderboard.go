package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/server/svr"
	"platinalab.dev/backend/internal/service"
)

type LeaderboardController struct {
	fx.In

	LeaderboardService *service.Leaderboard
}

func RegisterLeaderboard(v1 *svr.V1, c LeaderboardController) {
	v1.Get("/leaderboard/:line", c.GetLeaderboard)
}

func (c *LeaderboardController) GetLeaderboard(ctx *fiber.Ctx) error {
	line := types.LineCategory(ctx.Params("line"))

	entries, err := c.LeaderboardService.GetLeaderboard(ctx.UserContext(), line)
	if err != nil {
		return err
	}

	return ctx.JSON(entries)
}
