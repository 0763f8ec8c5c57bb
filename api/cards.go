package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// CardOrderBy keys accepted by the marketplace card endpoints.
type CardOrderBy string

const (
	CardOrderByCreated          CardOrderBy = "created"
	CardOrderByTitle            CardOrderBy = "title"
	CardOrderByCloses           CardOrderBy = "closes"
	CardOrderByCreatorFirstName CardOrderBy = "creatorFirstName"
	CardOrderByCreatorLastName  CardOrderBy = "creatorLastName"
)

// CreateMarketplaceCard posts a card to the community marketplace and
// returns its id.
func (c *Client) CreateMarketplaceCard(ctx context.Context, card models.CreateMarketplaceCard) (int, error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   "/cards",
		body:   card,
		statuses: map[int]string{
			http.StatusUnauthorized: loggedOutMessage,
			http.StatusForbidden:    "A user cannot create a marketplace card for another user",
		},
		detail: map[int]string{
			http.StatusBadRequest: "Incorrect marketplace card format: ",
		},
		fallback: fallbackServerMessage,
	})
	if err != nil {
		return 0, err
	}
	return intField(data, "cardId", "Invalid response format")
}

// ModifyMarketplaceCard updates an existing card.
func (c *Client) ModifyMarketplaceCard(ctx context.Context, cardID int, card models.ModifyMarketplaceCard) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/cards/%d", cardID),
		body:   card,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "Marketplace card not found",
		},
		detail: map[int]string{
			http.StatusBadRequest: "Invalid parameters: ",
		},
		fallback: fallbackStatus,
	})
	return err
}

// GetMarketplaceCardsBySection fetches a page of cards in the given section.
func (c *Client) GetMarketplaceCardsBySection(ctx context.Context, section models.MarketplaceSection, page, resultsPerPage int, orderBy CardOrderBy, reverse bool) (models.SearchResults[models.MarketplaceCard], error) {
	q := pageQuery(page, resultsPerPage)
	q.Set("section", string(section))
	q.Set("orderBy", string(orderBy))
	q.Set("reverse", strconv.FormatBool(reverse))

	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   "/cards",
		query:  q,
		statuses: map[int]string{
			http.StatusBadRequest:   "The given section does not exist",
			http.StatusUnauthorized: loggedOutMessage,
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return models.SearchResults[models.MarketplaceCard]{}, err
	}
	return parseAs[models.SearchResults[models.MarketplaceCard]](data, schema.SearchResultsOf(schema.MarketplaceCard), "Response is not card array")
}

// GetMarketplaceCardsBySectionAndKeywords fetches a page of cards in the
// section matching the keyword filter. Union selects any-keyword matching;
// otherwise every keyword must match.
func (c *Client) GetMarketplaceCardsBySectionAndKeywords(ctx context.Context, keywordIDs []int, section models.MarketplaceSection, union bool, page, resultsPerPage int, orderBy CardOrderBy, reverse bool) (models.SearchResults[models.MarketplaceCard], error) {
	q := pageQuery(page, resultsPerPage)
	for _, id := range keywordIDs {
		q.Add("keywordIds", strconv.Itoa(id))
	}
	q.Set("section", string(section))
	q.Set("union", strconv.FormatBool(union))
	q.Set("orderBy", string(orderBy))
	q.Set("reverse", strconv.FormatBool(reverse))

	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   "/cards/search",
		query:  q,
		statuses: map[int]string{
			http.StatusBadRequest:   "The given section does not exist",
			http.StatusUnauthorized: loggedOutMessage,
		},
		fallback: fallbackServerMessage,
	})
	if err != nil {
		return models.SearchResults[models.MarketplaceCard]{}, err
	}
	return parseAs[models.SearchResults[models.MarketplaceCard]](data, schema.SearchResultsOf(schema.MarketplaceCard), "Response is not card array")
}

// DeleteMarketplaceCard removes a card from the community marketplace.
func (c *Client) DeleteMarketplaceCard(ctx context.Context, cardID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/cards/%d", cardID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Invalid authorization for card deletion",
			http.StatusNotAcceptable: "Marketplace card not found",
		},
		fallback: fallbackServerMessage,
	})
	return err
}

// ExtendMarketplaceCardExpiry renews a card so it displays for another two
// weeks.
func (c *Client) ExtendMarketplaceCardExpiry(ctx context.Context, cardID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/cards/%d/extenddisplayperiod", cardID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Invalid authorization for card expiry extension",
			http.StatusNotAcceptable: "Marketplace card not found",
		},
		fallback: fallbackServerMessage,
	})
	return err
}

// GetMarketplaceCardsByUser retrieves a page of the cards created by a user.
func (c *Client) GetMarketplaceCardsByUser(ctx context.Context, userID, resultsPerPage, page int) (models.SearchResults[models.MarketplaceCard], error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/users/%d/cards", userID),
		query:  pageQuery(page, resultsPerPage),
		statuses: map[int]string{
			http.StatusBadRequest:    "The page does not exist",
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusNotAcceptable: "The user does not exist",
		},
		fallback: fallbackServerMessage,
	})
	if err != nil {
		return models.SearchResults[models.MarketplaceCard]{}, err
	}
	return parseAs[models.SearchResults[models.MarketplaceCard]](data, schema.SearchResultsOf(schema.MarketplaceCard), "Response is not card array")
}
