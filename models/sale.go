package models

// Sale is a live listing in a business's sales section.
type Sale struct {
	ID            int           `json:"id"`
	InventoryItem InventoryItem `json:"inventoryItem"`
	Quantity      int           `json:"quantity"`
	Price         float64       `json:"price"`
	MoreInfo      *string       `json:"moreInfo,omitempty"`
	Created       string        `json:"created"`
	Closes        *string       `json:"closes,omitempty"`
	InterestCount *int          `json:"interestCount,omitempty"`
}

// CreateSaleItem is the listing payload.
type CreateSaleItem struct {
	InventoryItemID int     `json:"inventoryItemId" validate:"required"`
	Quantity        int     `json:"quantity" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	MoreInfo        *string `json:"moreInfo,omitempty" validate:"omitempty,max=200"`
	Closes          *string `json:"closes,omitempty"`
}

// BoughtSale is a completed purchase as reported on the feed and in reports.
type BoughtSale struct {
	ID            int     `json:"id"`
	Buyer         *User   `json:"buyer"`
	Product       Product `json:"product"`
	InterestCount int     `json:"interestCount"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	SaleDate      string  `json:"saleDate"`
	ListingDate   string  `json:"listingDate"`
}

// SaleInterest flips the liked state of a listing for a user.
type SaleInterest struct {
	UserID     int  `json:"userId"`
	Interested bool `json:"interested"`
}
