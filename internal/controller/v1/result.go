package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/server/svr"
	"platinalab.dev/backend/internal/service"
	"platinalab.dev/backend/internal/util/rekuest"
)

type ResultController struct {
	fx.In

	SubmissionService *service.Submission
}

func RegisterResult(v1 *svr.V1, c ResultController) {
	v1.Post("/results", c.SubmitResult)
}

func (c *ResultController) SubmitResult(ctx *fiber.Ctx) error {
	var request types.SubmitRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	outcome, err := c.SubmissionService.Submit(ctx.UserContext(), &request, time.Now().UTC())
	if err != nil {
		return err
	}

	return ctx.JSON(outcome)
}
