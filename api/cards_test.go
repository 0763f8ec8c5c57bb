package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leftovermart/client-go/models"
)

const validCardJSON = `{
	"id": 9,
	"creator": ` + validUserJSON + `,
	"section": "ForSale",
	"created": "2021-04-01T10:00:00Z",
	"lastRenewed": "2021-04-01T10:00:00Z",
	"title": "1982 Lada Samara",
	"keywords": [{"id":1,"name":"vehicle","created":"2021-03-01T10:00:00Z"}]
}`

func TestCreateMarketplaceCard_ReturnsCardID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"cardId":9}`)
	}))

	id, err := c.CreateMarketplaceCard(context.Background(), models.CreateMarketplaceCard{
		CreatorID: 1,
		Section:   models.SectionForSale,
		Title:     "1982 Lada Samara",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, id)
}

func TestCreateMarketplaceCard_MessageTable(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   string
	}{
		{http.StatusBadRequest, `{"message":"title too long"}`, "Incorrect marketplace card format: title too long"},
		{http.StatusForbidden, `{}`, "A user cannot create a marketplace card for another user"},
		{http.StatusUnauthorized, `{}`, "You have been logged out. Please login again and retry"},
	}
	for _, tt := range tests {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, tt.status, tt.body)
		}))

		_, err := c.CreateMarketplaceCard(context.Background(), models.CreateMarketplaceCard{
			CreatorID: 1,
			Section:   models.SectionForSale,
			Title:     "x",
		})
		assert.EqualError(t, err, tt.want)
	}
}

func TestGetMarketplaceCardsBySection_Success(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/cards", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, "Wanted", q.Get("section"))
		assert.Equal(t, "created", q.Get("orderBy"))
		assert.Equal(t, "true", q.Get("reverse"))
		writeJSON(w, http.StatusOK, `{"count":1,"results":[`+validCardJSON+`]}`)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	results, err := c.GetMarketplaceCardsBySection(context.Background(), models.SectionWanted, 1, 10, CardOrderByCreated, true)
	require.NoError(t, err)
	assert.Equal(t, 1, results.Count)
	require.Len(t, results.Results, 1)
	assert.Equal(t, "1982 Lada Samara", results.Results[0].Title)
}

func TestGetMarketplaceCardsBySection_BadSection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{}`)
	}))

	_, err := c.GetMarketplaceCardsBySection(context.Background(), "Imaginary", 1, 10, CardOrderByCreated, false)
	assert.EqualError(t, err, "The given section does not exist")
}

func TestGetMarketplaceCardsBySectionAndKeywords_Query(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/cards/search", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, []string{"4", "7"}, q["keywordIds"])
		assert.Equal(t, "Exchange", q.Get("section"))
		assert.Equal(t, "true", q.Get("union"))
		writeJSON(w, http.StatusOK, `{"count":0,"results":[]}`)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r)

	results, err := c.GetMarketplaceCardsBySectionAndKeywords(context.Background(), []int{4, 7}, models.SectionExchange, true, 1, 10, CardOrderByTitle, false)
	require.NoError(t, err)
	assert.Zero(t, results.Count)
}

func TestGetMarketplaceCardsByUser_MessageTable(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "The page does not exist"},
		{http.StatusNotAcceptable, "The user does not exist"},
	}
	for _, tt := range tests {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, tt.status, `{}`)
		}))

		_, err := c.GetMarketplaceCardsByUser(context.Background(), 3, 10, 1)
		assert.EqualError(t, err, tt.want)
	}
}

func TestGetMarketplaceCardsByUser_InvalidShape(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"count":1,"results":[{"id":"not a number"}]}`)
	}))

	_, err := c.GetMarketplaceCardsByUser(context.Background(), 3, 10, 1)
	assert.EqualError(t, err, "Response is not card array")
}

func TestDeleteMarketplaceCard_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotAcceptable, `{}`)
	}))

	err := c.DeleteMarketplaceCard(context.Background(), 9)
	assert.EqualError(t, err, "Marketplace card not found")
}

func TestExtendMarketplaceCardExpiry_Success(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/cards/{id}/extenddisplayperiod", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "9", mux.Vars(req)["id"])
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPut)

	c := newTestClient(t, r)
	assert.NoError(t, c.ExtendMarketplaceCardExpiry(context.Background(), 9))
}
