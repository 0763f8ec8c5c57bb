package models

// SearchResults is the paginated envelope every search/list endpoint returns.
type SearchResults[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}
