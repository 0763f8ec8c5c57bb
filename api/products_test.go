package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leftovermart/client-go/models"
)

func TestCreateProduct_CodeUnavailable(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{}`)
	}))

	err := c.CreateProduct(context.Background(), 1, models.CreateProduct{
		ID:   "WATT-420",
		Name: "Watties Baked Beans",
	})
	assert.EqualError(t, err, "Product code unavailable")
}

func TestGetProducts_Success(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{id}/products", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, `{"count":1,"results":[{"id":"WATT-420","name":"Watties Baked Beans","images":[]}]}`)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	results, err := c.GetProducts(context.Background(), 1, 1, 10, ProductOrderByName, false)
	require.NoError(t, err)
	require.Len(t, results.Results, 1)
	assert.Equal(t, "WATT-420", results.Results[0].ID)
}

func TestGetProducts_NotAdmin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{}`)
	}))

	_, err := c.GetProducts(context.Background(), 1, 1, 10, ProductOrderByName, false)
	assert.EqualError(t, err, "Not an admin of the business")
}

func TestGetProducts_InvalidShape(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"count":1,"results":[{"name":"no id"}]}`)
	}))

	_, err := c.GetProducts(context.Background(), 1, 1, 10, ProductOrderByName, false)
	assert.EqualError(t, err, "Response is not product array")
}

func TestUploadProductImage_SendsMultipart(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{id}/products/{code}/images", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))
		file, header, err := req.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "beans.png", header.Filename)
		w.WriteHeader(http.StatusCreated)
	}).Methods(http.MethodPost)

	c := newTestClient(t, r)

	err := c.UploadProductImage(context.Background(), 1, "WATT-420", "beans.png", strings.NewReader("png bytes"))
	assert.NoError(t, err)
}

func TestUploadProductImage_TooLarge(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusRequestEntityTooLarge, `{}`)
	}))

	err := c.UploadProductImage(context.Background(), 1, "WATT-420", "beans.png", strings.NewReader("png bytes"))
	assert.EqualError(t, err, "Image too large")
}

func TestDeleteProductImage_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotAcceptable, `{}`)
	}))

	err := c.DeleteProductImage(context.Background(), 1, "WATT-420", 3)
	assert.EqualError(t, err, "Product/Business not found")
}

func TestUploadImage_ReturnsRecord(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":3,"filename":"beans.png","thumbnailFilename":"beans_thumb.png"}`)
	}))

	img, err := c.UploadImage(context.Background(), "beans.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, 3, img.ID)
	assert.Equal(t, "beans.png", img.Filename)
}

func TestUploadImage_InvalidImageDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"message":"unsupported format"}`)
	}))

	_, err := c.UploadImage(context.Background(), "beans.bmp", strings.NewReader("bmp bytes"))
	assert.EqualError(t, err, "Invalid image: unsupported format")
}

func TestGetInventory_Success(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{id}/inventory", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, `{"count":1,"results":[{"id":1,"product":{"id":"WATT-420","name":"Watties Baked Beans","images":[]},"quantity":10,"remainingQuantity":4,"expires":"2021-12-01"}]}`)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	results, err := c.GetInventory(context.Background(), 1, 1, 10, InventoryOrderByExpires, false)
	require.NoError(t, err)
	require.Len(t, results.Results, 1)
	assert.Equal(t, "2021-12-01", results.Results[0].Expires)
}

func TestModifyInventoryItem_DetailPrefix(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"message":"quantity too low"}`)
	}))

	err := c.ModifyInventoryItem(context.Background(), 1, 2, models.CreateInventoryItem{
		ProductID: "WATT-420",
		Quantity:  1,
		Expires:   "2021-12-01",
	})
	assert.EqualError(t, err, "Invalid parameters: quantity too low")
}
