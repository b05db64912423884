package domain

import "strings"

// ProductInput is the validated input shape accepted by the
// create-product usecase. InStock is a pointer so an omitted value can
// default to true without conflating it with an explicit false.
type ProductInput struct {
	Title       string
	Description *string
	Price       float64
	Category    string
	InStock     *bool
}

// Validate checks the required-field constraints. Price carries no
// constraint: the store accepts any numeric value, including zero.
func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ValidationError("title is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return ValidationError("category is required")
	}
	return nil
}

// Stocked returns the in_stock value, defaulting to true when absent.
func (in ProductInput) Stocked() bool {
	if in.InStock == nil {
		return true
	}
	return *in.InStock
}
