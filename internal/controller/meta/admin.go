package meta

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"platinalab.dev/backend/internal/model/cache"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/server/svr"
	"platinalab.dev/backend/internal/service"
	"platinalab.dev/backend/internal/util/rekuest"
)

type AdminController struct {
	fx.In

	CatalogService     *service.Catalog
	AggregationService *service.Aggregation
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/rebuild", c.RebuildAggregates)
	admin.Delete("/patterns/:patternId", c.RemovePattern)
	admin.Delete("/cache", c.PurgeCache)
}

func (c *AdminController) RebuildAggregates(ctx *fiber.Ctx) error {
	if err := c.AggregationService.RebuildAll(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}

func (c *AdminController) RemovePattern(ctx *fiber.Ctx) error {
	patternId, err := ctx.ParamsInt("patternId")
	if err != nil {
		return plerr.ErrInvalidInput.Msg("invalid or missing patternId")
	}

	if err := c.CatalogService.RemovePattern(ctx.UserContext(), patternId); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *AdminController) PurgeCache(ctx *fiber.Ctx) error {
	if len(ctx.Body()) == 0 {
		return cache.FlushAll()
	}

	var request types.PurgeCacheRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	if request.Name == "" {
		return cache.FlushAll()
	}
	return cache.Flush(request.Name)
}
