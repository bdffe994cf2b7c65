// Package openfoodfacts looks up packaged foods by barcode against the
// Open Food Facts public API.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"intellieats/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the Open Food Facts v0 API root.
	DefaultBaseURL = "https://world.openfoodfacts.org/api/v0"

	defaultTimeout = 10 * time.Second

	// Nutriments are reported per 100g; a product without serving
	// information is treated as one 100g serving.
	defaultServingSize      = "100g"
	defaultServingSizeGrams = 100
)

// Client calls the Open Food Facts product endpoint. It implements
// service.BarcodeSource.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an Open Food Facts client. An empty baseURL selects the
// public API; a zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type productResponse struct {
	Status  int     `json:"status"`
	Product product `json:"product"`
}

type product struct {
	ProductName     string      `json:"product_name"`
	Brands          string      `json:"brands"`
	ServingSize     string      `json:"serving_size"`
	ServingQuantity json.Number `json:"serving_quantity"`
	Nutriments      nutriments  `json:"nutriments"`
}

type nutriments struct {
	EnergyKcal100g    float64 `json:"energy-kcal_100g"`
	Proteins100g      float64 `json:"proteins_100g"`
	Carbohydrates100g float64 `json:"carbohydrates_100g"`
	Fat100g           float64 `json:"fat_100g"`
	Fiber100g         float64 `json:"fiber_100g"`
	Sugars100g        float64 `json:"sugars_100g"`
	Sodium100g        float64 `json:"sodium_100g"`
}

// LookupBarcode fetches the product for the given barcode. A product the
// database does not know returns service.ErrNotFoundInSource; transport and
// server failures return service.ErrSourceUnavailable.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (*service.RawFood, error) {
	url := fmt.Sprintf("%s/product/%s.json", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build Open Food Facts request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrSourceUnavailable, err.Error())
	}
	defer resp.Body.Close()

	// The v0 endpoint answers 404 for barcodes it has never seen and 200
	// with status 0 for known-but-empty ones.
	if resp.StatusCode == http.StatusNotFound {
		return nil, service.ErrNotFoundInSource
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(service.ErrSourceUnavailable, "unexpected status %d", resp.StatusCode)
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(service.ErrSourceUnavailable, err.Error())
	}

	if body.Status != 1 {
		return nil, service.ErrNotFoundInSource
	}

	return normalizeProduct(barcode, &body.Product), nil
}

func normalizeProduct(barcode string, p *product) *service.RawFood {
	name := p.ProductName
	if name == "" {
		name = "Unknown Product"
	}

	servingSize := p.ServingSize
	if servingSize == "" {
		servingSize = defaultServingSize
	}

	servingGrams := float64(defaultServingSizeGrams)
	if grams, err := p.ServingQuantity.Float64(); err == nil && grams > 0 {
		servingGrams = grams
	}

	return &service.RawFood{
		Name:             name,
		Brand:            p.Brands,
		Barcode:          barcode,
		ServingSize:      servingSize,
		ServingSizeGrams: servingGrams,
		Calories:         p.Nutriments.EnergyKcal100g,
		Protein:          p.Nutriments.Proteins100g,
		Carbohydrates:    p.Nutriments.Carbohydrates100g,
		Fat:              p.Nutriments.Fat100g,
		Fiber:            p.Nutriments.Fiber100g,
		Sugar:            p.Nutriments.Sugars100g,
		// Open Food Facts reports sodium in grams.
		Sodium:   p.Nutriments.Sodium100g * 1000,
		SourceID: barcode,
	}
}
