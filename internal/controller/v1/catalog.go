package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/server/svr"
	"platinalab.dev/backend/internal/service"
	"platinalab.dev/backend/internal/util/rekuest"
)

type CatalogController struct {
	fx.In

	CatalogService *service.Catalog
}

func RegisterCatalog(v1 *svr.V1, c CatalogController) {
	v1.Get("/songs", c.GetSongs)
	v1.Get("/songs/:songId/patterns", c.GetPatternsBySongId)
	v1.Get("/patterns/:patternId/edits", c.GetLevelEdits)

	v1.Post("/songs", c.ProposeSong)
	v1.Post("/patterns", c.ProposePattern)
	v1.Post("/patterns/:patternId/level", c.ProposeLevelEdit)
}

func (c *CatalogController) GetSongs(ctx *fiber.Ctx) error {
	songs, err := c.CatalogService.GetSongs(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(songs)
}

func (c *CatalogController) GetPatternsBySongId(ctx *fiber.Ctx) error {
	songId, err := ctx.ParamsInt("songId")
	if err != nil {
		return plerr.ErrInvalidInput.Msg("invalid or missing songId")
	}

	patterns, err := c.CatalogService.GetPatternsBySongID(ctx.UserContext(), songId)
	if err != nil {
		return err
	}

	return ctx.JSON(patterns)
}

func (c *CatalogController) GetLevelEdits(ctx *fiber.Ctx) error {
	patternId, err := ctx.ParamsInt("patternId")
	if err != nil {
		return plerr.ErrInvalidInput.Msg("invalid or missing patternId")
	}

	edits, err := c.CatalogService.GetLevelEdits(ctx.UserContext(), patternId)
	if err != nil {
		return err
	}

	return ctx.JSON(edits)
}

func (c *CatalogController) ProposeSong(ctx *fiber.Ctx) error {
	var request types.ProposeSongRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	song, err := c.CatalogService.ProposeSong(ctx.UserContext(), &request)
	if err != nil {
		return err
	}

	return ctx.JSON(song)
}

func (c *CatalogController) ProposePattern(ctx *fiber.Ctx) error {
	var request types.ProposePatternRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	pattern, err := c.CatalogService.ProposePattern(ctx.UserContext(), &request)
	if err != nil {
		return err
	}

	return ctx.JSON(pattern)
}

func (c *CatalogController) ProposeLevelEdit(ctx *fiber.Ctx) error {
	patternId, err := ctx.ParamsInt("patternId")
	if err != nil {
		return plerr.ErrInvalidInput.Msg("invalid or missing patternId")
	}

	var request types.ProposeLevelEditRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	pattern, err := c.CatalogService.ProposeLevelEdit(ctx.UserContext(), patternId, &request)
	if err != nil {
		return err
	}

	return ctx.JSON(pattern)
}
