package contracts

import (
	"context"

	"github.com/shopease/catalog-service/internal/app/catalog/dto"
)

// ReadModel groups the read-side catalog queries.
type ReadModel interface {
	// ListProducts returns normalized products, filtered by exact
	// category and/or case-insensitive substring search when given.
	// An unavailable store yields an empty slice, not an error.
	ListProducts(ctx context.Context, category, q *string) ([]*dto.ProductDTO, error)

	// ListCategories returns the distinct category facets, sorted
	// ascending. An unavailable store yields an empty slice.
	ListCategories(ctx context.Context) ([]string, error)

	// StoreStatus reports connection diagnostics; it never fails, any
	// store error is folded into the payload as a truncated string.
	StoreStatus(ctx context.Context) (*dto.StoreStatusDTO, error)
}
