package usda

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"intellieats/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(logger, "test-key", baseURL, 10, time.Second)
}

func TestClient_SearchFoods_MapsNutrients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/foods/search", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "chicken breast", r.URL.Query().Get("query"))
		assert.Equal(t, "Survey (FNDDS),Foundation,SR Legacy", r.URL.Query().Get("dataType"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"foods": [
				{
					"fdcId": 171077,
					"description": "Chicken, broilers or fryers, breast, meat only, cooked, roasted",
					"foodNutrients": [
						{"nutrientName": "Energy", "value": 165, "unitName": "KCAL"},
						{"nutrientName": "Energy", "value": 690, "unitName": "kJ"},
						{"nutrientName": "Protein", "value": 31, "unitName": "G"},
						{"nutrientName": "Carbohydrate, by difference", "value": 0, "unitName": "G"},
						{"nutrientName": "Total lipid (fat)", "value": 3.6, "unitName": "G"},
						{"nutrientName": "Fiber, total dietary", "value": 0, "unitName": "G"},
						{"nutrientName": "Sugars, total including NLEA", "value": 0, "unitName": "G"},
						{"nutrientName": "Sodium, Na", "value": 74, "unitName": "MG"}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	foods, err := client.SearchFoods(context.Background(), "chicken breast")
	require.NoError(t, err)
	require.Len(t, foods, 1)

	raw := foods[0]
	assert.Equal(t, "171077", raw.SourceID)
	assert.InDelta(t, 165, raw.Calories, 1e-9)
	assert.InDelta(t, 31, raw.Protein, 1e-9)
	assert.InDelta(t, 3.6, raw.Fat, 1e-9)
	assert.InDelta(t, 74, raw.Sodium, 1e-9)
	assert.Equal(t, "100g", raw.ServingSize)
	assert.InDelta(t, 100, raw.ServingSizeGrams, 1e-9)
}

func TestClient_SearchFoods_EmptyResultIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	foods, err := client.SearchFoods(context.Background(), "nonexistent food xyz")
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestClient_SearchFoods_ServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchFoods(context.Background(), "chicken")
	require.ErrorIs(t, err, service.ErrSourceUnavailable)
}

func TestClient_SearchFoods_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchFoods(context.Background(), "chicken")
	require.ErrorIs(t, err, service.ErrSourceUnavailable)
}

func TestNormalizeSearchFood_FirstMatchingNutrientWins(t *testing.T) {
	f := &searchFood{
		Description: "Cheddar cheese",
		FoodNutrients: []foodNutrient{
			{NutrientName: "Total lipid (fat)", Value: 33, UnitName: "G"},
			{NutrientName: "Fatty acids, total saturated", Value: 19, UnitName: "G"},
		},
	}

	raw := normalizeSearchFood(f)

	assert.InDelta(t, 33, raw.Fat, 1e-9)
}
