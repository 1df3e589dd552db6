package model

import "github.com/shopspring/decimal"

// Property is a rental property in the registry. Value is a reference
// figure for display; aggregation never reads it. Transactions point at
// properties by ID, never the reverse.
type Property struct {
	ID    string
	Name  string
	Value decimal.Decimal
}
