package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/andreyxaxa/Image-Transformer/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Image-Transformer/internal/dto"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// @Summary 	Convert images to WEBP
// @Description Queues a batch of paths for lossy WEBP conversion. Outcomes are collected from /v1/results/{id} or the events topic.
// @Tags 		transform
// @Accept 		json
// @Produce 	json
// @Param 		request body dto.ConvertRequest true "Paths and quality(0-100)"
// @Success 	202 {object} response.Accepted
// @Failure 	400 {object} response.Error "Invalid body"
// @Failure 	503 {object} response.Error "Queue is busy or shutting down"
// @Router 		/v1/convert [post]
func (r *V1) convert(ctx *fiber.Ctx) error {
	req, err := dto.Unmarshal[dto.ConvertRequest](ctx.Body())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	id := uuid.New()

	submitCtx, cancel := context.WithTimeout(ctx.UserContext(), r.submitTimeout)
	defer cancel()

	err = r.conv.Submit(submitCtx, req.ToEntity(id))
	if err != nil {
		return r.submitError(ctx, err, "restapi - v1 - convert")
	}

	return ctx.Status(http.StatusAccepted).JSON(response.Accepted{
		RequestID: id.String(),
		Operation: dto.OperationConvert,
		Paths:     len(req.Paths),
	})
}

// @Summary 	Resize images in place
// @Description Queues a batch of paths for resizing by factors. Each file is overwritten in its own format.
// @Tags 		transform
// @Accept 		json
// @Produce 	json
// @Param 		request body dto.ResizeRequest true "Paths and width/height factors(>0)"
// @Success 	202 {object} response.Accepted
// @Failure 	400 {object} response.Error "Invalid body"
// @Failure 	503 {object} response.Error "Queue is busy or shutting down"
// @Router 		/v1/resize [post]
func (r *V1) resize(ctx *fiber.Ctx) error {
	req, err := dto.Unmarshal[dto.ResizeRequest](ctx.Body())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	id := uuid.New()

	submitCtx, cancel := context.WithTimeout(ctx.UserContext(), r.submitTimeout)
	defer cancel()

	err = r.rs.Submit(submitCtx, req.ToEntity(id))
	if err != nil {
		return r.submitError(ctx, err, "restapi - v1 - resize")
	}

	return ctx.Status(http.StatusAccepted).JSON(response.Accepted{
		RequestID: id.String(),
		Operation: dto.OperationResize,
		Paths:     len(req.Paths),
	})
}

func (r *V1) submitError(ctx *fiber.Ctx, err error, where string) error {
	if errors.Is(err, errs.ErrListenerClosed) {
		return errorResponse(ctx, http.StatusServiceUnavailable, "shutting down")
	}
	r.logger.Error(err, where)

	return errorResponse(ctx, http.StatusServiceUnavailable, "queue is busy")
}
