package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// ProductOrderBy keys accepted by the catalogue endpoints.
type ProductOrderBy string

const (
	ProductOrderByName         ProductOrderBy = "name"
	ProductOrderByDescription  ProductOrderBy = "description"
	ProductOrderByManufacturer ProductOrderBy = "manufacturer"
	ProductOrderByRRP          ProductOrderBy = "recommendedRetailPrice"
	ProductOrderByCreated      ProductOrderBy = "created"
	ProductOrderByProductCode  ProductOrderBy = "productCode"
)

// ProductSearchBy names the product properties the catalogue search matches.
type ProductSearchBy string

const (
	ProductSearchByName         ProductSearchBy = "name"
	ProductSearchByDescription  ProductSearchBy = "description"
	ProductSearchByManufacturer ProductSearchBy = "manufacturer"
	ProductSearchByProductCode  ProductSearchBy = "productCode"
)

// CreateProduct adds a product to a business's catalogue.
func (c *Client) CreateProduct(ctx context.Context, businessID int, product models.CreateProduct) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   fmt.Sprintf("/businesses/%d/products", businessID),
		body:   product,
		statuses: map[int]string{
			http.StatusBadRequest:   "Invalid parameters",
			http.StatusUnauthorized: loggedOutMessage,
			http.StatusForbidden:    "Operation not permitted",
			http.StatusConflict:     "Product code unavailable",
		},
		fallback: fallbackStatus,
	})
	return err
}

// ModifyProduct updates an existing catalogue entry's properties.
func (c *Client) ModifyProduct(ctx context.Context, businessID int, productCode string, product models.CreateProduct) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/businesses/%d/products/%s", businessID, url.PathEscape(productCode)),
		body:   product,
		statuses: map[int]string{
			http.StatusBadRequest:    "Invalid parameters",
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "Product/Business not found",
			http.StatusConflict:      "Product code unavailable",
		},
		fallback: fallbackStatus,
	})
	return err
}

// GetProducts fetches a page of the business's catalogue.
func (c *Client) GetProducts(ctx context.Context, businessID, page, resultsPerPage int, orderBy ProductOrderBy, reverse bool) (models.SearchResults[models.Product], error) {
	q := pageQuery(page, resultsPerPage)
	q.Set("orderBy", string(orderBy))
	q.Set("reverse", strconv.FormatBool(reverse))

	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/businesses/%d/products", businessID),
		query:  q,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Not an admin of the business",
			http.StatusNotAcceptable: "Business not found",
		},
		fallback: fallbackStatus,
	})
	if err != nil {
		return models.SearchResults[models.Product]{}, err
	}
	return parseAs[models.SearchResults[models.Product]](data, schema.SearchResultsOf(schema.Product), "Response is not product array")
}

// SearchCatalogue searches a business's product catalogue by the given
// properties.
func (c *Client) SearchCatalogue(ctx context.Context, businessID int, query string, page, resultsPerPage int, searchBy []ProductSearchBy, orderBy ProductOrderBy, reverse bool) (models.SearchResults[models.Product], error) {
	q := pageQuery(page, resultsPerPage)
	for _, field := range searchBy {
		q.Add("searchBy", string(field))
	}
	q.Set("searchQuery", query)
	q.Set("orderBy", string(orderBy))
	q.Set("reverse", strconv.FormatBool(reverse))

	data, err := c.execute(ctx, endpoint{
		method: http.MethodGet,
		path:   fmt.Sprintf("/businesses/%d/products/search", businessID),
		query:  q,
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "You do not have permission to access this product catalogue",
			http.StatusNotAcceptable: "Business does not exist",
		},
		detail: map[int]string{
			http.StatusBadRequest: "Invalid search query: ",
		},
		fallback: fallbackServerMessage,
	})
	if err != nil {
		return models.SearchResults[models.Product]{}, err
	}
	return parseAs[models.SearchResults[models.Product]](data, schema.SearchResultsOf(schema.Product), "Response is not product array")
}

// UploadProductImage attaches an image to the given catalogue entry.
func (c *Client) UploadProductImage(ctx context.Context, businessID int, productCode, filename string, content io.Reader) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   fmt.Sprintf("/businesses/%d/products/%s/images", businessID, url.PathEscape(productCode)),
		upload: &upload{field: "file", filename: filename, content: content},
		statuses: map[int]string{
			http.StatusBadRequest:            "Invalid image",
			http.StatusUnauthorized:          loggedOutMessage,
			http.StatusForbidden:             "Operation not permitted",
			http.StatusNotAcceptable:         "Product/Business not found",
			http.StatusRequestEntityTooLarge: "Image too large",
		},
		fallback: fallbackStatus,
		media:    true,
	})
	return err
}

// MakeProductImagePrimary promotes an image to the product's primary image.
func (c *Client) MakeProductImagePrimary(ctx context.Context, businessID int, productCode string, imageID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodPut,
		path:   fmt.Sprintf("/businesses/%d/products/%s/images/%d/makeprimary", businessID, url.PathEscape(productCode), imageID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "Product/Business not found",
		},
		fallback: fallbackStatus,
	})
	return err
}

// DeleteProductImage removes an image from a product.
func (c *Client) DeleteProductImage(ctx context.Context, businessID int, productCode string, imageID int) error {
	_, err := c.execute(ctx, endpoint{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/businesses/%d/products/%s/images/%d", businessID, url.PathEscape(productCode), imageID),
		statuses: map[int]string{
			http.StatusUnauthorized:  loggedOutMessage,
			http.StatusForbidden:     "Operation not permitted",
			http.StatusNotAcceptable: "Product/Business not found",
		},
		fallback: fallbackStatus,
	})
	return err
}
