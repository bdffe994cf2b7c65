package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"intellieats/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LookupBarcode_NormalizesProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/0123456789012.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Oat Drink",
				"brands": "Oatly",
				"serving_size": "250ml",
				"serving_quantity": 250,
				"nutriments": {
					"energy-kcal_100g": 46,
					"proteins_100g": 1.1,
					"carbohydrates_100g": 6.6,
					"fat_100g": 1.5,
					"fiber_100g": 0.8,
					"sugars_100g": 4.1,
					"sodium_100g": 0.04
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	raw, err := client.LookupBarcode(context.Background(), "0123456789012")
	require.NoError(t, err)
	assert.Equal(t, "Oat Drink", raw.Name)
	assert.Equal(t, "Oatly", raw.Brand)
	assert.Equal(t, "0123456789012", raw.Barcode)
	assert.Equal(t, "250ml", raw.ServingSize)
	assert.InDelta(t, 250, raw.ServingSizeGrams, 1e-9)
	assert.InDelta(t, 46, raw.Calories, 1e-9)
	assert.InDelta(t, 1.1, raw.Protein, 1e-9)
	// Sodium arrives in grams per 100g and is converted to milligrams.
	assert.InDelta(t, 40, raw.Sodium, 1e-9)
	assert.Equal(t, "0123456789012", raw.SourceID)
}

func TestClient_LookupBarcode_DefaultsServingInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 1, "product": {"product_name": "Mystery Snack", "nutriments": {}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	raw, err := client.LookupBarcode(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "100g", raw.ServingSize)
	assert.InDelta(t, 100, raw.ServingSizeGrams, 1e-9)
}

func TestClient_LookupBarcode_StatusZeroIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.LookupBarcode(context.Background(), "0000000000000")
	require.ErrorIs(t, err, service.ErrNotFoundInSource)
}

func TestClient_LookupBarcode_HTTPNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.LookupBarcode(context.Background(), "0000000000000")
	require.ErrorIs(t, err, service.ErrNotFoundInSource)
}

func TestClient_LookupBarcode_ServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.LookupBarcode(context.Background(), "0123456789012")
	require.ErrorIs(t, err, service.ErrSourceUnavailable)
}

func TestClient_LookupBarcode_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.LookupBarcode(context.Background(), "0123456789012")
	require.ErrorIs(t, err, service.ErrSourceUnavailable)
}
