package api

import (
	"context"
	"io"
	"net/http"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/schema"
)

// UploadImage uploads an image to the media store and returns the stored
// image record. Uses the longer media timeout.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (models.Image, error) {
	data, err := c.execute(ctx, endpoint{
		method: http.MethodPost,
		path:   "/media/images",
		upload: &upload{field: "file", filename: filename, content: content},
		statuses: map[int]string{
			http.StatusUnauthorized:          loggedOutMessage,
			http.StatusForbidden:             "Operation not permitted",
			http.StatusRequestEntityTooLarge: "Image too large",
		},
		detail: map[int]string{
			http.StatusBadRequest: "Invalid image: ",
		},
		fallback: fallbackServerMessage,
		media:    true,
	})
	if err != nil {
		return models.Image{}, err
	}
	return parseAs[models.Image](data, schema.Image, "Image was not received")
}
