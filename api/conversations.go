package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// MessageConversation adds a message to a conversation about a marketplace
// card between its creator and a prospective buyer.
func (c *Client) MessageConversation(ctx context.Context, cardID, senderID, buyerID int, message string) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   fmt.Sprintf("/cards/%d/conversations/%d", cardID, buyerID),
		body: map[string]any{
			"senderId": senderID,
			"message":  message,
		},
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "You do not have permission to edit this conversation",
			http.StatusNotAcceptable: "Unable to post message, the card does not exist",
		},
		fallback: fallbackServerMessage,
	})
	return err
}

// GetMessagesInConversation fetches a page of messages in a card
// conversation, newest first.
func (c *Client) GetMessagesInConversation(ctx context.Context, cardID, buyerID, page, resultsPerPage int) (models.SearchResults[models.Message], error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/cards/%d/conversations/%d", cardID, buyerID),
		query:  pageQuery(page, resultsPerPage),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "You do not have permission to view this conversation",
			http.StatusNotAcceptable: "Unable to get messages, conversation does not exist",
		},
		fallback: fallbackRawServerMessage,
	})
	if err != nil {
		return models.SearchResults[models.Message]{}, err
	}
	return parseAs[models.SearchResults[models.Message]](data, schema.SearchResultsOf(schema.Message), "Response is not page of messages")
}
