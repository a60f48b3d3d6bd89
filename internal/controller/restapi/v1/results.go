package v1

import (
	"net/http"

	"github.com/andreyxaxa/Image-Transformer/internal/controller/restapi/v1/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// @Summary 	Get request outcomes
// @Description Returns the outcome events recorded so far for a request, in emission order. Converted images are base64 in "output".
// @Tags 		transform
// @Produce 	json
// @Param 		id path string true "Request ID(uuid)"
// @Success 	200 {object} response.Results
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "No outcomes yet or expired"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/results/{id} [get]
func (r *V1) getResults(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request id")
	}

	events, err := r.results.Results(ctx.UserContext(), id.String())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - getResults")

		return errorResponse(ctx, http.StatusInternalServerError, "internal error")
	}

	if len(events) == 0 {
		return errorResponse(ctx, http.StatusNotFound, "no results for request")
	}

	outcomes := make([]response.Outcome, 0, len(events))
	for _, e := range events {
		outcomes = append(outcomes, response.Outcome{
			Type:   string(e.Type),
			Input:  e.Input,
			Output: e.Output,
			Error:  e.Error,
		})
	}

	return ctx.Status(http.StatusOK).JSON(response.Results{
		RequestID: id.String(),
		Outcomes:  outcomes,
	})
}
