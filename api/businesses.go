package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// BusinessOrderBy keys accepted by the business search endpoint.
type BusinessOrderBy string

const (
	BusinessOrderByCreated  BusinessOrderBy = "created"
	BusinessOrderByName     BusinessOrderBy = "name"
	BusinessOrderByLocation BusinessOrderBy = "location"
	BusinessOrderByType     BusinessOrderBy = "businessType"
)

// CreateBusiness registers a new business.
func (c *Client) CreateBusiness(ctx context.Context, business models.CreateBusiness) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   "/businesses",
		body:   business,
		statuses: map[int]string{
			http.StatusUnauthorized: loggedOutMessage,
		},
		fallback: fallbackRawServerMessage,
	})
	return err
}

// GetBusiness fetches a business with the given id.
func (c *Client) GetBusiness(ctx context.Context, businessID int) (models.Business, error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/businesses/%d", businessID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusNotAcceptable: "Business not found",
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return models.Business{}, err
	}
	return parseAs[models.Business](data, schema.Business, "Invalid response type")
}

// SearchBusinesses queries the backend for businesses by name and/or type.
// Pass an empty query or business type to leave that filter unset.
func (c *Client) SearchBusinesses(ctx context.Context, query string, businessType models.BusinessType, page, resultsPerPage int, orderBy BusinessOrderBy, reverse bool) (models.SearchResults[models.Business], error) {
	q := pageQuery(page, resultsPerPage)
	if query != "" {
		q.Set("searchQuery", query)
	}
	if businessType != "" {
		q.Set("businessType", string(businessType))
	}
	q.Set("orderBy", string(orderBy))
	q.Set("reverse", strconv.FormatBool(reverse))

	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   "/businesses/search",
		query:  q,
		statuses: map[int]string{
			http.StatusUnauthorized: loggedOutMessage,
		},
		detail: map[int]string{
			http.StatusBadRequest: "Invalid search query: ",
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return models.SearchResults[models.Business]{}, err
	}
	return parseAs[models.SearchResults[models.Business]](data, schema.SearchResultsOf(schema.Business), "Response is not business array")
}

// MakeBusinessAdmin makes the provided user an administrator of the business.
func (c *Client) MakeBusinessAdmin(ctx context.Context, businessID, userID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/businesses/%d/makeAdministrator", businessID),
		body:   map[string]int{"userId": userID},
		statuses: map[int]string{
			http.StatusBadRequest:    "User doesn't exist or is already an admin",
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Current user cannot perform this action",
			http.StatusNotAcceptable: "Business not found",
		},
		fallback: fallbackStatus,
	})
	return err
}

// RemoveBusinessAdmin strips a user's administrator status from the business.
func (c *Client) RemoveBusinessAdmin(ctx context.Context, businessID, userID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/businesses/%d/removeAdministrator", businessID),
		body:   map[string]int{"userId": userID},
		statuses: map[int]string{
			http.StatusBadRequest:    "User doesn't exist or is not an admin",
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Current user cannot perform this action",
			http.StatusNotAcceptable: "The new business admin should be at least 16 years old",
		},
		fallback: fallbackStatus,
	})
	return err
}

// ModifyBusiness updates a business's details.
func (c *Client) ModifyBusiness(ctx context.Context, businessID int, business models.ModifyBusiness) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/businesses/%d", businessID),
		body:   business,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Invalid authorization for modifying this business",
			http.StatusNotAcceptable: "Business does not exist",
		},
		detail: map[int]string{
			http.StatusBadRequest: "Invalid details entered: ",
		},
		fallback: fallbackServerMessage,
	})
	return err
}
