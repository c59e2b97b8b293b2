package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"instock/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetCatalogItems(t *testing.T) {
	items := []models.CatalogItem{
		{ID: uuid.New(), Name: "Gloves", Barcode: "4603934000274", Category: models.Category{Name: "Clothing"}},
		{ID: uuid.New(), Name: "Plates", Barcode: "4870007380032", Category: models.Category{Name: "Household"}},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/catalog", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	fetched, err := client.GetCatalogItems(context.Background())
	assert.NoError(t, err)
	assert.Len(t, fetched, 2)
	assert.Equal(t, items[0].ID, fetched[0].ID)
	assert.Equal(t, "Plates", fetched[1].Name)
}

func TestGetCatalogItemsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.GetCatalogItems(context.Background())
	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestGetCatalogItemsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.GetCatalogItems(context.Background())
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestGetCatalogItemsTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", nil)

	_, err := client.GetCatalogItems(context.Background())
	assert.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestAddCatalogItem(t *testing.T) {
	item := models.CatalogItem{ID: uuid.New(), Name: "Tires", Barcode: "4620001180059"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/catalog", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received models.CatalogItem
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, item.ID, received.ID)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	assert.NoError(t, client.AddCatalogItem(context.Background(), item))
}

func TestUpdateCatalogItem(t *testing.T) {
	item := models.CatalogItem{ID: uuid.New(), Name: "Tires"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/catalog/"+item.ID.String(), r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	assert.NoError(t, client.UpdateCatalogItem(context.Background(), item))
}

func TestDeleteCatalogItem(t *testing.T) {
	id := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/catalog/"+id.String(), r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	assert.NoError(t, client.DeleteCatalogItem(context.Background(), id))
}

func TestDeleteCatalogItemNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	err := client.DeleteCatalogItem(context.Background(), uuid.New())
	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
