package models

// InventoryItem is a batch of stock for a catalogue product.
type InventoryItem struct {
	ID                int      `json:"id"`
	Product           Product  `json:"product"`
	Quantity          int      `json:"quantity"`
	RemainingQuantity int      `json:"remainingQuantity"`
	PricePerItem      *float64 `json:"pricePerItem,omitempty"`
	TotalPrice        *float64 `json:"totalPrice,omitempty"`
	Manufactured      *string  `json:"manufactured,omitempty"`
	SellBy            *string  `json:"sellBy,omitempty"`
	BestBefore        *string  `json:"bestBefore,omitempty"`
	Expires           string   `json:"expires"`
}

// CreateInventoryItem is the stock-entry payload, also used for modification.
type CreateInventoryItem struct {
	ProductID    string   `json:"productId" validate:"required"`
	Quantity     int      `json:"quantity" validate:"required,gt=0"`
	PricePerItem *float64 `json:"pricePerItem,omitempty" validate:"omitempty,gte=0"`
	TotalPrice   *float64 `json:"totalPrice,omitempty" validate:"omitempty,gte=0"`
	Manufactured *string  `json:"manufactured,omitempty"`
	SellBy       *string  `json:"sellBy,omitempty"`
	BestBefore   *string  `json:"bestBefore,omitempty"`
	Expires      string   `json:"expires" validate:"required"`
}
