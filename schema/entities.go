package schema

// Entity schemas, one per backend resource shape. These mirror the documented
// response contract, not the request payloads.

// Location requires only a country.
var Location Schema = Object{
	"streetNumber": Optional(String),
	"streetName":   Optional(String),
	"district":     Optional(String),
	"city":         Optional(String),
	"region":       Optional(String),
	"country":      String,
	"postcode":     Optional(String),
}

// Image is an uploaded media record.
var Image Schema = Object{
	"id":                Number,
	"filename":          String,
	"thumbnailFilename": String,
}

// User is an account record. businessesAdministered is resolved lazily since
// Business refers back to User through its administrator list.
var User Schema = Object{
	"id":          Number,
	"firstName":   String,
	"lastName":    String,
	"middleName":  Optional(String),
	"nickname":    Optional(String),
	"bio":         Optional(String),
	"email":       String,
	"dateOfBirth": Optional(String),
	"phoneNumber": Optional(String),
	"homeAddress": Location,
	"created":     Optional(String),
	"role": Optional(OneOf(
		"user",
		"globalApplicationAdmin",
		"defaultGlobalApplicationAdmin",
	)),
	"businessesAdministered": Optional(Array(Lazy(func() Schema { return Business }))),
	"images":                 Optional(Array(Image)),
}

// Business is a registered business record. It is assigned in init rather
// than in its declaration because Go's initialization dependency analysis
// follows the Lazy closures and would otherwise report a User/Business cycle;
// every reference to Business is lazy, so the later assignment is safe.
var Business Schema

func init() {
	Business = Object{
		"id":                     Number,
		"primaryAdministratorId": Number,
		"administrators":         Optional(Array(Lazy(func() Schema { return User }))),
		"name":                   String,
		"description":            Optional(String),
		"address":                Location,
		"businessType": OneOf(
			"Accommodation and Food Services",
			"Retail Trade",
			"Charitable organisation",
			"Non-profit organisation",
		),
		"created": Optional(String),
		"images":  Optional(Array(Image)),
	}
}

// Product is a catalogue entry.
var Product Schema = Object{
	"id":                     String,
	"name":                   String,
	"description":            Optional(String),
	"manufacturer":           Optional(String),
	"recommendedRetailPrice": Optional(Number),
	"created":                Optional(String),
	"images":                 Array(Image),
	"countryOfSale":          Optional(String),
	"business":               Optional(Lazy(func() Schema { return Business })),
}

// InventoryItem is a stock batch.
var InventoryItem Schema = Object{
	"id":                Number,
	"product":           Product,
	"quantity":          Number,
	"remainingQuantity": Number,
	"pricePerItem":      Optional(Number),
	"totalPrice":        Optional(Number),
	"manufactured":      Optional(String),
	"sellBy":            Optional(String),
	"bestBefore":        Optional(String),
	"expires":           String,
}

// Sale is a live listing.
var Sale Schema = Object{
	"id":            Number,
	"inventoryItem": InventoryItem,
	"quantity":      Number,
	"price":         Number,
	"moreInfo":      Optional(String),
	"created":       String,
	"closes":        Optional(String),
	"interestCount": Optional(Number),
}

// BoughtSale is a completed purchase record. The buyer is null for
// anonymised purchases.
var BoughtSale Schema = Object{
	"id":            Number,
	"buyer":         Nullable(User),
	"product":       Product,
	"interestCount": Number,
	"price":         Number,
	"quantity":      Number,
	"saleDate":      String,
	"listingDate":   String,
}

// Keyword tags marketplace cards.
var Keyword Schema = Object{
	"id":      Number,
	"name":    String,
	"created": String,
}

// MarketplaceCard is a community marketplace posting.
var MarketplaceCard Schema = Object{
	"id":               Number,
	"creator":          User,
	"section":          OneOf("ForSale", "Wanted", "Exchange"),
	"created":          String,
	"lastRenewed":      String,
	"displayPeriodEnd": Optional(String),
	"title":            String,
	"description":      Optional(String),
	"keywords":         Array(Keyword),
}

// Message is a conversation entry.
var Message Schema = Object{
	"id":       Number,
	"created":  String,
	"senderId": Number,
	"content":  String,
}

// ReportRecord is one bucket of a sales report.
var ReportRecord Schema = Object{
	"date":                 String,
	"uniqueListingsSold":   Optional(Number),
	"uniqueBuyers":         Optional(Number),
	"uniqueProducts":       Optional(Number),
	"totalInterestCount":   Optional(Number),
	"averageInterestCount": Optional(Number),
	"totalQuantitySold":    Optional(Number),
	"averageTimeToSell":    Optional(Number),
	"averageListingPrice":  Optional(Number),
	"totalValue":           Optional(Number),
}

// SearchResultsOf matches the paginated {count, results} envelope.
func SearchResultsOf(elem Schema) Schema {
	return Object{
		"count":   Number,
		"results": Array(elem),
	}
}
