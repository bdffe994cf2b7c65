// Package service defines interfaces for external collaborator capabilities
// the core consumes, keeping the domain free of transport concerns.
package service

import (
	"context"

	"github.com/pkg/errors"
)

// Errors shared by all external food sources.
var (
	// ErrNotFoundInSource is returned when the external database has no
	// record for the requested item.
	ErrNotFoundInSource = errors.New("food not found in external source")
	// ErrSourceUnavailable is returned when the external database could not
	// be reached or answered with a failure.
	ErrSourceUnavailable = errors.New("external food source unavailable")
)

// RawFood is the normalization target every adapter maps its own response
// shape onto. Nutrient values are per one serving as described by
// ServingSize; missing optional numerics are zero. Sodium is in milligrams.
type RawFood struct {
	Name             string
	Brand            string
	Barcode          string
	ServingSize      string
	ServingSizeGrams float64
	Calories         float64
	Protein          float64
	Carbohydrates    float64
	Fat              float64
	Fiber            float64
	Sugar            float64
	Sodium           float64
	SourceID         string
}

// BarcodeSource looks a single product up by its barcode.
type BarcodeSource interface {
	// LookupBarcode returns the normalized record for barcode, or
	// ErrNotFoundInSource / ErrSourceUnavailable.
	LookupBarcode(ctx context.Context, barcode string) (*RawFood, error)
}

// TextSearchSource searches a food database by free-text query.
type TextSearchSource interface {
	// SearchFoods returns normalized records matching query; an empty result
	// is not an error.
	SearchFoods(ctx context.Context, query string) ([]*RawFood, error)
}
