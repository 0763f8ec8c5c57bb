package models

// MarketplaceSection values accepted by the backend.
type MarketplaceSection string

const (
	SectionForSale  MarketplaceSection = "ForSale"
	SectionWanted   MarketplaceSection = "Wanted"
	SectionExchange MarketplaceSection = "Exchange"
)

// MarketplaceSections lists every community marketplace section.
var MarketplaceSections = []MarketplaceSection{SectionForSale, SectionWanted, SectionExchange}

// Keyword tags marketplace cards for searching.
type Keyword struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

// CreateKeyword is the new-keyword payload.
type CreateKeyword struct {
	Name string `json:"name" validate:"required,max=25"`
}

// MarketplaceCard is a community marketplace posting.
type MarketplaceCard struct {
	ID               int                `json:"id"`
	Creator          User               `json:"creator"`
	Section          MarketplaceSection `json:"section"`
	Created          string             `json:"created"`
	LastRenewed      string             `json:"lastRenewed"`
	DisplayPeriodEnd *string            `json:"displayPeriodEnd,omitempty"`
	Title            string             `json:"title"`
	Description      *string            `json:"description,omitempty"`
	Keywords         []Keyword          `json:"keywords"`
}

// ModifyMarketplaceCard is the card-update payload.
type ModifyMarketplaceCard struct {
	Section     MarketplaceSection `json:"section" validate:"required,marketplace_section"`
	Title       string             `json:"title" validate:"required,max=50"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=200"`
	KeywordIDs  []int              `json:"keywordIds"`
}

// CreateMarketplaceCard is the card-creation payload.
type CreateMarketplaceCard struct {
	CreatorID   int                `json:"creatorId" validate:"required"`
	Section     MarketplaceSection `json:"section" validate:"required,marketplace_section"`
	Title       string             `json:"title" validate:"required,max=50"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=200"`
	KeywordIDs  []int              `json:"keywordIds"`
}

// Message is one entry in a conversation about a marketplace card.
type Message struct {
	ID       int    `json:"id"`
	Created  string `json:"created"`
	SenderID int    `json:"senderId"`
	Content  string `json:"content"`
}
