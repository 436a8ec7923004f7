package model

// Paginated is the envelope of every list endpoint. Total is the size of the
// full (possibly filtered) collection, independent of the requested window.
type Paginated[T any] struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Items []T `json:"items"`
}

type Message struct {
	Message string `json:"message"`
}
