package entity

import "github.com/google/uuid"

type ConversionRequest struct {
	ID      uuid.UUID `json:"id"`
	Paths   []string  `json:"paths"`
	Quality float64   `json:"quality"`
}

type ResizeRequest struct {
	ID           uuid.UUID `json:"id"`
	Paths        []string  `json:"paths"`
	WidthFactor  float64   `json:"width_factor"`
	HeightFactor float64   `json:"height_factor"`
}
