package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// UserOrderBy keys accepted by the user search endpoint.
type UserOrderBy string

const (
	UserOrderByID         UserOrderBy = "userId"
	UserOrderByRelevance  UserOrderBy = "relevance"
	UserOrderByFirstName  UserOrderBy = "firstName"
	UserOrderByMiddleName UserOrderBy = "middleName"
	UserOrderByLastName   UserOrderBy = "lastName"
	UserOrderByNickname   UserOrderBy = "nickname"
	UserOrderByEmail      UserOrderBy = "email"
)

const loggedOutMessage = "You have been logged out. Please login again and retry"

// UserSearch queries the backend for users matching the search query and
// returns the requested page of results.
func (c *Client) UserSearch(ctx context.Context, query string, page, resultsPerPage int, orderBy UserOrderBy, reverse bool) (models.SearchResults[models.User], error) {
	q := pageQuery(page, resultsPerPage)
	q.Set("searchQuery", query)
	q.Set("orderBy", string(orderBy))
	q.Set("reverse", strconv.FormatBool(reverse))

	data, err := c.execute(ctx, endpoint{
		method:   http.MethodGet,
		path:     "/users/search",
		query:    q,
		fallback: fallbackServerMessage,
	})
	if err != nil {
		return models.SearchResults[models.User]{}, err
	}
	return parseAs[models.SearchResults[models.User]](data, schema.SearchResultsOf(schema.User), "Response is not user array")
}

// GetUser fetches a specific user by their id.
func (c *Client) GetUser(ctx context.Context, id int) (models.User, error) {
	data, err := c.execute(ctx, endpoint{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/users/%d", id),
		fallback: fallbackStatus,
	})
	if err != nil {
		return models.User{}, err
	}
	return parseAs[models.User](data, schema.User, "Response is not user")
}

// Login authenticates with the given credentials. The session cookie set by
// the backend lands in the client's jar; the logged-in user's id is returned.
func (c *Client) Login(ctx context.Context, email, password string) (int, error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   "/login",
		body: map[string]string{
			"email":    email,
			"password": password,
		},
		statuses: map[int]string{
			http.StatusBadRequest: "Invalid credentials",
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return 0, err
	}
	return intField(data, "userId", "Invalid response")
}

// CreateUser registers a new account. It does not log the user in.
func (c *Client) CreateUser(ctx context.Context, user models.CreateUser) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   "/users",
		body:   user,
		statuses: map[int]string{
			http.StatusConflict: "Email in use",
		},
		fallback: fallbackRawServerMessage,
	})
	return err
}

// ModifyUser updates an existing account's details.
func (c *Client) ModifyUser(ctx context.Context, userID int, user models.ModifyUser) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/users/%d", userID),
		body:   user,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusNotAcceptable: "User does not exist",
		},
		detail: map[int]string{
			http.StatusBadRequest: "Invalid details entered: ",
			http.StatusForbidden:  "Cannot update user: ",
		},
		fallback: fallbackServerMessage,
	})
	return err
}

// MakeAdmin grants the given user global admin rights.
func (c *Client) MakeAdmin(ctx context.Context, userID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/users/%d/makeAdmin", userID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "User does not exist",
		},
		fallback: fallbackStatus,
	})
	return err
}

// RevokeAdmin removes the given user's global admin rights.
func (c *Client) RevokeAdmin(ctx context.Context, userID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/users/%d/revokeAdmin", userID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "User does not exist",
		},
		fallback: fallbackStatus,
	})
	return err
}
