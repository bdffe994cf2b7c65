// Package usda searches the USDA FoodData Central database for generic and
// branded foods by name.
package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"intellieats/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the FoodData Central API root.
	DefaultBaseURL = "https://api.nal.usda.gov/fdc"

	// DefaultPageSize caps how many hits one search pulls from the API.
	DefaultPageSize = 10

	defaultTimeout = 30 * time.Second

	// FoodData Central allows 1000 requests per hour per key, which is
	// roughly 0.278 requests per second.
	requestsPerSecond = 0.278
	burstSize         = 10
)

// searchDataTypes restricts results to the survey, foundation and legacy
// datasets, skipping the noisier branded-product listings.
const searchDataTypes = "Survey (FNDDS),Foundation,SR Legacy"

// Client handles communication with the USDA FoodData Central API. It
// implements service.TextSearchSource.
type Client struct {
	httpClient  *http.Client
	logger      *slog.Logger
	apiKey      string
	baseURL     string
	pageSize    int
	rateLimiter *rate.Limiter
}

// NewClient creates a new FoodData Central client. An empty baseURL selects
// the public API; a pageSize below 1 selects the default.
func NewClient(logger *slog.Logger, apiKey, baseURL string, pageSize int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
		apiKey:      apiKey,
		baseURL:     baseURL,
		pageSize:    pageSize,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type searchFood struct {
	FdcID         json.Number    `json:"fdcId"`
	Description   string         `json:"description"`
	BrandOwner    string         `json:"brandOwner"`
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
	UnitName     string  `json:"unitName"`
}

// SearchFoods queries FoodData Central by name. An empty result set is a
// valid answer, not an error; transport and server failures return
// service.ErrSourceUnavailable.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]*service.RawFood, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter wait failed")
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("api_key", c.apiKey)
	params.Add("dataType", searchDataTypes)
	params.Add("pageSize", strconv.Itoa(c.pageSize))

	reqURL := fmt.Sprintf("%s/v1/foods/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build FoodData Central request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrSourceUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "FoodData Central search failed",
				slog.Int("status", resp.StatusCode),
				slog.String("query", query),
			)
		}

		return nil, errors.Wrapf(service.ErrSourceUnavailable, "unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(service.ErrSourceUnavailable, err.Error())
	}

	foods := make([]*service.RawFood, 0, len(body.Foods))
	for i := range body.Foods {
		foods = append(foods, normalizeSearchFood(&body.Foods[i]))
	}

	return foods, nil
}

func normalizeSearchFood(f *searchFood) *service.RawFood {
	raw := &service.RawFood{
		Name:             f.Description,
		Brand:            f.BrandOwner,
		ServingSize:      "100g",
		ServingSizeGrams: 100,
		SourceID:         f.FdcID.String(),
	}

	// Nutrient rows carry free-form names; the first matching row per
	// nutrient wins. Values are per 100g.
	for _, n := range f.FoodNutrients {
		name := strings.ToLower(n.NutrientName)
		switch {
		case strings.Contains(name, "energy") || strings.Contains(name, "calor"):
			if raw.Calories == 0 && strings.EqualFold(n.UnitName, "kcal") {
				raw.Calories = n.Value
			}
		case strings.Contains(name, "protein"):
			if raw.Protein == 0 {
				raw.Protein = n.Value
			}
		case strings.Contains(name, "carbohydrate"):
			if raw.Carbohydrates == 0 {
				raw.Carbohydrates = n.Value
			}
		case strings.Contains(name, "total lipid") || strings.Contains(name, "fat"):
			if raw.Fat == 0 {
				raw.Fat = n.Value
			}
		case strings.Contains(name, "fiber"):
			if raw.Fiber == 0 {
				raw.Fiber = n.Value
			}
		case strings.Contains(name, "sugars"):
			if raw.Sugar == 0 {
				raw.Sugar = n.Value
			}
		case strings.Contains(name, "sodium"):
			if raw.Sodium == 0 {
				raw.Sodium = n.Value
			}
		}
	}

	return raw
}
