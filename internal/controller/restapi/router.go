package restapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/andreyxaxa/Image-Transformer/config"
	_ "github.com/andreyxaxa/Image-Transformer/docs" // swagger spec
	"github.com/andreyxaxa/Image-Transformer/internal/controller"
	v1 "github.com/andreyxaxa/Image-Transformer/internal/controller/restapi/v1"
	"github.com/andreyxaxa/Image-Transformer/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Image-Transformer/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// @title Image transformer
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	conv controller.ConversionSubmitter,
	rs controller.ResizeSubmitter,
	results controller.ResultReader,
	l logger.Interface,
) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestLogger(l))

	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewTransformRoutes(apiV1Group, conv, rs, results, l, cfg.HTTP.SubmitTimeout)
	}
}

// ErrorHandler renders errors that escape the handlers (unknown routes, recovered
// panics) in the same JSON shape the handlers use.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return ctx.Status(code).JSON(response.Error{Error: err.Error()})
}

func requestLogger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		l.Debug("restapi - %s %s - %d - %s", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start))

		return err
	}
}
