package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// GetEvents fetches the newsfeed for a user. A non-empty modifiedSince
// restricts the result to events modified after that timestamp; empty fetches
// the whole feed.
func (c *Client) GetEvents(ctx context.Context, userID int, modifiedSince string) ([]models.Event, error) {
	ep := endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/users/%d/feed", userID),
		statuses: map[int]string{
			http.StatusBadRequest:    "Invalid 'modified since' date",
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     fmt.Sprintf("Invalid authorisation for getting events associated with user %d", userID),
			http.StatusNotAcceptable: "User does not exist",
		},
		fallback: fallbackServerMessage,
	}
	if modifiedSince != "" {
		ep.query = singleValue("modifiedSince", modifiedSince)
	}

	data, err := c.execute(ctx, ep)
	if err != nil {
		return nil, err
	}
	return parseAs[[]models.Event](data, schema.Array(schema.Event), "Response is not an event array")
}

// MarkEventAsRead flips a feed entry to read. Read state never goes back to
// unread, so callers skip the call when the entry is already read.
func (c *Client) MarkEventAsRead(ctx context.Context, eventID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/feed/%d/read", eventID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Invalid authorization for marking this event",
			http.StatusNotAcceptable: "Event does not exist",
		},
		fallback: fallbackServerMessage,
	})
	return err
}

// UpdateEventStatus shelves a feed entry as normal, starred or archived.
func (c *Client) UpdateEventStatus(ctx context.Context, eventID int, status models.EventStatus) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/feed/%d/status", eventID),
		body:   map[string]string{"value": string(status)},
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Invalid authorization for modifying event status",
			http.StatusNotAcceptable: "Event does not exist",
		},
		fallback: fallbackServerMessage,
	})
	return err
}

// SetEventTag tags a feed entry with a coloured tag.
func (c *Client) SetEventTag(ctx context.Context, eventID int, colour models.EventTag) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/feed/%d/tag", eventID),
		body:   map[string]string{"value": string(colour)},
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Invalid authorization for Event tagging",
			http.StatusNotAcceptable: "Event not found",
		},
		fallback: fallbackServerMessage,
	})
	return err
}

// DeleteNotification permanently removes a feed entry. A backend 406 means
// the entry is already gone and is treated as success.
func (c *Client) DeleteNotification(ctx context.Context, eventID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/feed/%d", eventID),
		statuses: map[int]string{
			http.StatusUnauthorized: loggedOutMessage,
			http.StatusForbidden:    "Invalid authorization for notification removal",
		},
		successStatuses: []int{http.StatusNotAcceptable},
		fallback:        fallbackServerMessage,
	})
	return err
}
