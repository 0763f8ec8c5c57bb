package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leftovermart/client-go/models"
)

const validSaleJSON = `{
	"id": 2,
	"inventoryItem": {
		"id": 1,
		"product": {"id":"WATT-420","name":"Watties Baked Beans","images":[]},
		"quantity": 10,
		"remainingQuantity": 4,
		"expires": "2021-12-01"
	},
	"quantity": 4,
	"price": 17.99,
	"created": "2021-05-01T08:00:00Z"
}`

func TestCreateSaleItem_InvalidData(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{}`)
	}))

	err := c.CreateSaleItem(context.Background(), 1, models.CreateSaleItem{
		InventoryItemID: 1,
		Quantity:        4,
		Price:           17.99,
	})
	assert.EqualError(t, err, "Invalid data with the Sale Item")
}

func TestGetBusinessSales_Success(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{id}/listings", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "1", mux.Vars(req)["id"])
		writeJSON(w, http.StatusOK, `{"count":1,"results":[`+validSaleJSON+`]}`)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	results, err := c.GetBusinessSales(context.Background(), 1, 1, 10, SalesOrderByCreated, false)
	require.NoError(t, err)
	require.Len(t, results.Results, 1)
	assert.Equal(t, 17.99, results.Results[0].Price)
}

func TestGetBusinessSales_MissingBusiness(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotAcceptable, `{}`)
	}))

	_, err := c.GetBusinessSales(context.Background(), 1, 1, 10, SalesOrderByCreated, false)
	assert.EqualError(t, err, "The given business does not exist")
}

func TestGetBusinessSales_InvalidShape(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"count":1,"results":[{"id":2}]}`)
	}))

	_, err := c.GetBusinessSales(context.Background(), 1, 1, 10, SalesOrderByCreated, false)
	assert.EqualError(t, err, "Response is not Sale array")
}

func TestSetListingInterest_SendsBody(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/listings/{id}/interest", func(w http.ResponseWriter, req *http.Request) {
		var body models.SaleInterest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, 3, body.UserID)
		assert.True(t, body.Interested)
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPut)

	c := newTestClient(t, r)
	assert.NoError(t, c.SetListingInterest(context.Background(), 2, models.SaleInterest{UserID: 3, Interested: true}))
}

func TestGetListingInterest_Success(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/listings/{id}/interest", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "3", req.URL.Query().Get("userId"))
		writeJSON(w, http.StatusOK, `{"isInterested":true}`)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	interested, err := c.GetListingInterest(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.True(t, interested)
}

func TestGetListingInterest_MalformedResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"isInterested":"yes"}`)
	}))

	_, err := c.GetListingInterest(context.Background(), 2, 3)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindInvalidResponse, apiErr.Kind)
}

func TestGenerateReport_Success(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{id}/reports", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, "2021-01-01", q.Get("startDate"))
		assert.Equal(t, "2021-02-01", q.Get("endDate"))
		assert.Equal(t, "weekly", q.Get("granularity"))
		writeJSON(w, http.StatusOK, `[{"date":"2021-01-04","totalValue":120.5}]`)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	records, err := c.GenerateReport(context.Background(), 1, "2021-01-01", "2021-02-01", models.GranularityWeekly)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2021-01-04", records[0].Date)
}

func TestGenerateReport_MissingBusiness(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotAcceptable, `{}`)
	}))

	_, err := c.GenerateReport(context.Background(), 1, "2021-01-01", "2021-02-01", models.GranularityDaily)
	assert.EqualError(t, err, "Business not found")
}
