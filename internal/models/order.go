package models

import "github.com/shopspring/decimal"

// OrderRequest represents an incoming order request
type OrderRequest struct {
	Items    []Selection `json:"items"`
	Customer Customer    `json:"customer"`
}

// Selection is a quantity chosen against a catalog position.
type Selection struct {
	Index    int `json:"index"`
	Quantity int `json:"quantity"`
}

// Customer identifies who is placing the order. Both fields are
// required before an order can be exported.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderLine is one priced row of an order. Product fields are copied
// at compute time so the line survives later catalog edits.
type OrderLine struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Order is a computed quote: the positive-quantity lines plus total.
type Order struct {
	ID       string          `json:"id"`
	Lines    []OrderLine     `json:"lines"`
	Total    decimal.Decimal `json:"total"`
	Customer Customer        `json:"customer"`
}
