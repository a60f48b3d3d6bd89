package v1

import (
	"time"

	"github.com/andreyxaxa/Image-Transformer/internal/controller"
	"github.com/andreyxaxa/Image-Transformer/pkg/logger"
)

type V1 struct {
	conv    controller.ConversionSubmitter
	rs      controller.ResizeSubmitter
	results controller.ResultReader
	logger  logger.Interface

	submitTimeout time.Duration
}
