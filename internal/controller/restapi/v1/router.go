package v1

import (
	"time"

	"github.com/andreyxaxa/Image-Transformer/internal/controller"
	"github.com/andreyxaxa/Image-Transformer/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

const _defaultSubmitTimeout = 5 * time.Second

func NewTransformRoutes(
	apiV1Group fiber.Router,
	conv controller.ConversionSubmitter,
	rs controller.ResizeSubmitter,
	results controller.ResultReader,
	l logger.Interface,
	submitTimeout time.Duration,
) {
	if submitTimeout <= 0 {
		submitTimeout = _defaultSubmitTimeout
	}

	r := &V1{conv: conv, rs: rs, results: results, logger: l, submitTimeout: submitTimeout}

	{
		apiV1Group.Post("/convert", r.convert)
		apiV1Group.Post("/resize", r.resize)
		apiV1Group.Get("/results/:id", r.getResults)
	}
}
