package models

// Image is an uploaded media item addressed by filename.
type Image struct {
	ID                int    `json:"id"`
	Filename          string `json:"filename"`
	ThumbnailFilename string `json:"thumbnailFilename"`
}

// Product is a catalogue entry. Product ids are business-scoped codes, not
// numeric keys.
type Product struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	Description             *string   `json:"description,omitempty"`
	Manufacturer            *string   `json:"manufacturer,omitempty"`
	RecommendedRetailPrice  *float64  `json:"recommendedRetailPrice,omitempty"`
	Created                 *string   `json:"created,omitempty"`
	Images                  []Image   `json:"images"`
	CountryOfSale           *string   `json:"countryOfSale,omitempty"`
	Business                *Business `json:"business,omitempty"`
}

// CreateProduct is the catalogue-entry payload, also used for modification.
type CreateProduct struct {
	ID                     string   `json:"id" validate:"required,max=15,product_code"`
	Name                   string   `json:"name" validate:"required,max=50"`
	Description            *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	Manufacturer           *string  `json:"manufacturer,omitempty" validate:"omitempty,max=100"`
	RecommendedRetailPrice *float64 `json:"recommendedRetailPrice,omitempty" validate:"omitempty,gte=0"`
	CountryOfSale          *string  `json:"countryOfSale,omitempty"`
}
