package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// SalesOrderBy keys accepted by the sale listing endpoint.
type SalesOrderBy string

const (
	SalesOrderByCreated     SalesOrderBy = "created"
	SalesOrderByClosing     SalesOrderBy = "closing"
	SalesOrderByProductCode SalesOrderBy = "productCode"
	SalesOrderByProductName SalesOrderBy = "productName"
	SalesOrderByQuantity    SalesOrderBy = "quantity"
	SalesOrderByPrice       SalesOrderBy = "price"
)

// CreateSaleItem adds a listing to the business's sales section.
func (c *Client) CreateSaleItem(ctx context.Context, businessID int, saleItem models.CreateSaleItem) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   fmt.Sprintf("/businesses/%d/listings", businessID),
		body:   saleItem,
		statuses: map[int]string{
			http.StatusBadRequest: "Invalid data with the Sale Item",
			http.StatusForbidden:  "Operation not permitted",
		},
		fallback: fallbackStatus,
	})
	return err
}

// GetBusinessSales fetches a page of the business's sale listings.
func (c *Client) GetBusinessSales(ctx context.Context, businessID, page, resultsPerPage int, orderBy SalesOrderBy, reverse bool) (models.SearchResults[models.Sale], error) {
	q := pageQuery(page, resultsPerPage)
	q.Set("orderBy", string(orderBy))
	q.Set("reverse", strconv.FormatBool(reverse))

	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/businesses/%d/listings", businessID),
		query:  q,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusNotAcceptable: "The given business does not exist",
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return models.SearchResults[models.Sale]{}, err
	}
	return parseAs[models.SearchResults[models.Sale]](data, schema.SearchResultsOf(schema.Sale), "Response is not Sale array")
}

// SetListingInterest sets the liked/unliked state of a listing for a user.
func (c *Client) SetListingInterest(ctx context.Context, listingID int, interest models.SaleInterest) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/listings/%d/interest", listingID),
		body:   interest,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "Listing does not exist",
		},
		fallback: fallbackRawServerMessage,
	})
	return err
}

// GetListingInterest reports whether the given user has liked the listing.
func (c *Client) GetListingInterest(ctx context.Context, listingID, userID int) (bool, error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/listings/%d/interest", listingID),
		query:  singleValue("userId", strconv.Itoa(userID)),
		statuses: map[int]string{
			http.StatusBadRequest:    "Invalid user provided",
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "Listing does not exist",
		},
		fallback: fallbackRawServerMessage,
	})
	if err != nil {
		return false, err
	}
	return boolField(data, "isInterested", "Invalid response")
}

// GenerateReport builds a sales report for the business over the given
// period at the given granularity.
func (c *Client) GenerateReport(ctx context.Context, businessID int, startDate, endDate string, granularity models.ReportGranularity) ([]models.ReportRecord, error) {
	q := singleValue("startDate", startDate)
	q.Set("endDate", endDate)
	q.Set("granularity", string(granularity))

	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/businesses/%d/reports", businessID),
		query:  q,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusNotAcceptable: "Business not found",
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return nil, err
	}
	return parseAs[[]models.ReportRecord](data, schema.Array(schema.ReportRecord), "Invalid response type")
}
