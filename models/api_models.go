package models

// APIError is the JSON error body returned by every endpoint.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DeleteResponse reports how many documents a delete touched. Deleting a
// nonexistent id is a no-op success with DeletedCount 0, not an error.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// InsertResponse acknowledges a single-document insert.
type InsertResponse struct {
	InsertedID string `json:"insertedId"`
}

// AdminCheckResponse answers the "is this email an admin" query.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

// PaymentIntentResponse carries the Stripe client secret back to the caller.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// AdminStats aggregates cross-collection counts and total revenue.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStat is one per-category row of the order report.
type CategoryStat struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}
