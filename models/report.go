package models

// ReportGranularity values accepted by the sales report endpoint.
type ReportGranularity string

const (
	GranularityDaily   ReportGranularity = "daily"
	GranularityWeekly  ReportGranularity = "weekly"
	GranularityMonthly ReportGranularity = "monthly"
	GranularityYearly  ReportGranularity = "yearly"
)

// ReportRecord is one bucket of a generated sales report.
type ReportRecord struct {
	Date                 string   `json:"date"`
	UniqueListingsSold   *int     `json:"uniqueListingsSold,omitempty"`
	UniqueBuyers         *int     `json:"uniqueBuyers,omitempty"`
	UniqueProducts       *int     `json:"uniqueProducts,omitempty"`
	TotalInterestCount   *int     `json:"totalInterestCount,omitempty"`
	AverageInterestCount *float64 `json:"averageInterestCount,omitempty"`
	TotalQuantitySold    *int     `json:"totalQuantitySold,omitempty"`
	AverageTimeToSell    *float64 `json:"averageTimeToSell,omitempty"`
	AverageListingPrice  *float64 `json:"averageListingPrice,omitempty"`
	TotalValue           *float64 `json:"totalValue,omitempty"`
}
