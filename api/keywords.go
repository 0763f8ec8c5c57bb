package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// SearchKeywords retrieves all keywords matching the given query by name.
func (c *Client) SearchKeywords(ctx context.Context, query string) ([]models.Keyword, error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   "/keywords/search",
		query:  singleValue("searchQuery", query),
		statuses: map[int]string{
			http.StatusUnauthorized: loggedOutMessage,
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return nil, err
	}
	return parseAs[[]models.Keyword](data, schema.Array(schema.Keyword), "Response is not Keyword array")
}

// CreateKeyword registers a new keyword for tagging marketplace cards and
// returns its id.
func (c *Client) CreateKeyword(ctx context.Context, keyword models.CreateKeyword) (int, error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   "/keywords",
		body:   keyword,
		statuses: map[int]string{
			http.StatusBadRequest:   "This keyword already exists or is of invalid format",
			http.StatusUnauthorized: loggedOutMessage,
		},
		fallback: fallbackServerMessage,
	})
	if err != nil {
		return 0, err
	}
	return intField(data, "keywordId", "Invalid response format")
}

// DeleteKeyword removes a keyword from the keyword list.
func (c *Client) DeleteKeyword(ctx context.Context, keywordID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/keywords/%d", keywordID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Invalid authorization for keyword deletion",
			http.StatusNotAcceptable: "Keyword not found",
		},
		fallback: fallbackServerMessage,
	})
	return err
}
