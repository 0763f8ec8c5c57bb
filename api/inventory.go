package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// InventoryOrderBy keys accepted by the inventory endpoint.
type InventoryOrderBy string

const (
	InventoryOrderByName         InventoryOrderBy = "name"
	InventoryOrderByDescription  InventoryOrderBy = "description"
	InventoryOrderByManufacturer InventoryOrderBy = "manufacturer"
	InventoryOrderByRRP          InventoryOrderBy = "recommendedRetailPrice"
	InventoryOrderByCreated      InventoryOrderBy = "created"
	InventoryOrderByQuantity     InventoryOrderBy = "quantity"
	InventoryOrderByPricePerItem InventoryOrderBy = "pricePerItem"
	InventoryOrderByTotalPrice   InventoryOrderBy = "totalPrice"
	InventoryOrderByManufactured InventoryOrderBy = "manufactured"
	InventoryOrderBySellBy       InventoryOrderBy = "sellBy"
	InventoryOrderByBestBefore   InventoryOrderBy = "bestBefore"
	InventoryOrderByExpires      InventoryOrderBy = "expires"
	InventoryOrderByProductCode  InventoryOrderBy = "productCode"
)

// GetInventory fetches a page of the business's inventory.
func (c *Client) GetInventory(ctx context.Context, businessID, page, resultsPerPage int, orderBy InventoryOrderBy, reverse bool) (models.SearchResults[models.InventoryItem], error) {
	q := pageQuery(page, resultsPerPage)
	q.Set("orderBy", string(orderBy))
	q.Set("reverse", strconv.FormatBool(reverse))

	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/businesses/%d/inventory", businessID),
		query:  q,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Not an admin of the business",
			http.StatusNotAcceptable: "Business not found",
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return models.SearchResults[models.InventoryItem]{}, err
	}
	return parseAs[models.SearchResults[models.InventoryItem]](data, schema.SearchResultsOf(schema.InventoryItem), "Response is not inventory array")
}

// CreateInventoryItem adds a stock batch to the business's inventory.
func (c *Client) CreateInventoryItem(ctx context.Context, businessID int, item models.CreateInventoryItem) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   fmt.Sprintf("/businesses/%d/inventory", businessID),
		body:   item,
		statuses: map[int]string{
			http.StatusForbidden: "Operation not permitted",
		},
		fallback: fallbackServerMessage,
	})
	return err
}

// ModifyInventoryItem updates an existing stock batch's properties.
func (c *Client) ModifyInventoryItem(ctx context.Context, businessID, inventoryItemID int, item models.CreateInventoryItem) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/businesses/%d/inventory/%d", businessID, inventoryItemID),
		body:   item,
		statuses: map[int]string{
			http.StatusUnauthorized:  "Missing/Invalid access token",
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "Inventory item/Business not found",
		},
		detail: map[int]string{
			http.StatusBadRequest: "Invalid parameters: ",
		},
		fallback: fallbackStatus,
	})
	return err
}
