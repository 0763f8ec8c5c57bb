package schema

// eventEnvelope holds the fields common to every feed entry variant.
var eventEnvelope = Object{
	"id":      Number,
	"type":    String,
	"created": String,
	"tag": OneOf(
		"none", "red", "orange", "yellow", "green", "blue", "purple",
	),
	"status":       OneOf("normal", "starred", "archived"),
	"read":         Boolean,
	"lastModified": String,
}

// eventPayloads maps the type discriminator to the variant's extra fields.
var eventPayloads = map[string]Object{
	"GlobalMessageEvent": {
		"message": String,
	},
	"ExpiryEvent": {
		"card": MarketplaceCard,
	},
	"DeleteEvent": {
		"title":   String,
		"section": OneOf("ForSale", "Wanted", "Exchange"),
	},
	"KeywordCreatedEvent": {
		"keyword": Keyword,
		"creator": User,
	},
	"MessageEvent": {
		"conversationMessage": Message,
		"conversation": Object{
			"card":  MarketplaceCard,
			"buyer": User,
		},
	},
	"InterestEvent": {
		"card":       MarketplaceCard,
		"interested": Boolean,
	},
	"PurchasedEvent": {
		"boughtSaleItem": BoughtSale,
	},
	"InterestPurchasedEvent": {
		"boughtSaleItem": BoughtSale,
	},
}

type eventSchema struct{}

func (eventSchema) Validate(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if !eventEnvelope.Validate(v) {
		return false
	}
	kind, _ := m["type"].(string)
	payload, known := eventPayloads[kind]
	if !known {
		return false
	}
	return payload.Validate(v)
}

// Event matches any feed entry, narrowing the payload by its type
// discriminator.
var Event Schema = eventSchema{}
