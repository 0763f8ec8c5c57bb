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

const validBusinessJSON = `{
	"id": 1,
	"primaryAdministratorId": 1,
	"name": "Lada Wreckers",
	"address": {"country":"New Zealand"},
	"businessType": "Retail Trade"
}`

func TestCreateBusiness_RawServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"message":"Business name is mandatory"}`)
	}))

	err := c.CreateBusiness(context.Background(), models.CreateBusiness{
		PrimaryAdministratorID: 1,
		Name:                   "Lada Wreckers",
		Address:                models.Location{Country: "New Zealand"},
		BusinessType:           models.BusinessRetailTrade,
	})
	assert.EqualError(t, err, "Business name is mandatory")
}

func TestGetBusiness_Success(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, validBusinessJSON)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	business, err := c.GetBusiness(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Lada Wreckers", business.Name)
	assert.Equal(t, models.BusinessRetailTrade, business.BusinessType)
}

func TestGetBusiness_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotAcceptable, `{}`)
	}))

	_, err := c.GetBusiness(context.Background(), 1)
	assert.EqualError(t, err, "Business not found")
}

func TestGetBusiness_UnknownType(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":1,"primaryAdministratorId":1,"name":"x","address":{"country":"NZ"},"businessType":"Bottomless Pit"}`)
	}))

	_, err := c.GetBusiness(context.Background(), 1)
	assert.EqualError(t, err, "Invalid response type")
}

func TestSearchBusinesses_OmitsEmptyFilters(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/search", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.False(t, q.Has("searchQuery"))
		assert.False(t, q.Has("businessType"))
		writeJSON(w, http.StatusOK, `{"count":0,"results":[]}`)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	_, err := c.SearchBusinesses(context.Background(), "", "", 1, 10, BusinessOrderByName, false)
	assert.NoError(t, err)
}

func TestSearchBusinesses_BadQueryDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"message":"unbalanced quotes"}`)
	}))

	_, err := c.SearchBusinesses(context.Background(), `"lada`, "", 1, 10, BusinessOrderByName, false)
	assert.EqualError(t, err, "Invalid search query: unbalanced quotes")
}

func TestMakeBusinessAdmin_SendsUserID(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{id}/makeAdministrator", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]int
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, 7, body["userId"])
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPut)

	c := newTestClient(t, r)
	assert.NoError(t, c.MakeBusinessAdmin(context.Background(), 1, 7))
}

func TestMakeBusinessAdmin_AlreadyAdmin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{}`)
	}))

	err := c.MakeBusinessAdmin(context.Background(), 1, 7)
	assert.EqualError(t, err, "User doesn't exist or is already an admin")
}

func TestRemoveBusinessAdmin_MessageTable(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "User doesn't exist or is not an admin"},
		{http.StatusForbidden, "Current user cannot perform this action"},
		{http.StatusNotAcceptable, "The new business admin should be at least 16 years old"},
	}
	for _, tt := range tests {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, tt.status, `{}`)
		}))

		err := c.RemoveBusinessAdmin(context.Background(), 1, 7)
		assert.EqualError(t, err, tt.want)
	}
}
