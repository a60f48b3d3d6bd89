package dto

import (
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	OperationConvert = "convert"
	OperationResize  = "resize"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Envelope carries the operation of a request message; the rest of the document is
// decoded into ConvertRequest or ResizeRequest.
type Envelope struct {
	Operation string `json:"operation"`
}

type ConvertRequest struct {
	Paths   []string `json:"paths" validate:"required,min=1,dive,required"`
	Quality *float64 `json:"quality" validate:"required,gte=0,lte=100"`
}

func (r ConvertRequest) ToEntity(id uuid.UUID) entity.ConversionRequest {
	return entity.ConversionRequest{
		ID:      id,
		Paths:   r.Paths,
		Quality: *r.Quality,
	}
}

type ResizeRequest struct {
	Paths        []string `json:"paths" validate:"required,min=1,dive,required"`
	WidthFactor  *float64 `json:"width_factor" validate:"required,gt=0"`
	HeightFactor *float64 `json:"height_factor" validate:"required,gt=0"`
}

func (r ResizeRequest) ToEntity(id uuid.UUID) entity.ResizeRequest {
	return entity.ResizeRequest{
		ID:           id,
		Paths:        r.Paths,
		WidthFactor:  *r.WidthFactor,
		HeightFactor: *r.HeightFactor,
	}
}

func Validate(v any) error {
	err := validate.Struct(v)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return nil
}

// Unmarshal decodes and validates one request document.
func Unmarshal[T ConvertRequest | ResizeRequest](data []byte) (T, error) {
	var req T

	err := json.Unmarshal(data, &req)
	if err != nil {
		return req, fmt.Errorf("dto - Unmarshal - json.Unmarshal: %w: %w", errs.ErrInvalidPayload, err)
	}

	err = Validate(req)
	if err != nil {
		return req, fmt.Errorf("dto - Unmarshal: %w", err)
	}

	return req, nil
}
