package models

import "github.com/shopspring/decimal"

// Product is a validated catalog entry shown to clients.
// Position in the catalog slice is the display order and the index
// clients select quantities against.
type Product struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

// ProductInput is an operator-submitted candidate record, not yet
// validated or normalized.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}
