// Package normalize maps raw stored documents into the stable public
// product representation, applying defaults for absent optional fields.
package normalize

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopease/catalog-service/internal/app/catalog/domain"
	"github.com/shopease/catalog-service/internal/app/catalog/dto"
	"github.com/shopease/catalog-service/internal/models/m_product"
)

// Product converts a stored document into its public form.
//
// Defaulting: a missing price normalizes to 0, a missing in_stock to
// true, a missing description stays absent. A price that is present
// but not numeric is surfaced as a data-integrity failure rather than
// silently defaulted. Pure transformation, no side effects.
func Product(raw m_product.RawProduct) (*dto.ProductDTO, error) {
	price, err := coercePrice(raw.Price)
	if err != nil {
		return nil, err
	}

	inStock := true
	if raw.InStock != nil {
		inStock = *raw.InStock
	}

	return &dto.ProductDTO{
		ID:          raw.ID.Hex(),
		Title:       raw.Title,
		Description: raw.Description,
		Price:       price,
		Category:    raw.Category,
		InStock:     inStock,
	}, nil
}

// coercePrice converts the stored price into a float64. BSON numbers
// decode as int32, int64 or float64 depending on how they were written,
// and sloppy writers have stored prices as strings or booleans; those
// coerce too, and only a value no reading yields a number from is an
// integrity failure.
func coercePrice(v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: price %q is not numeric", domain.ErrDataIntegrity, n)
		}
		return f, nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: price %q is not a finite number", domain.ErrDataIntegrity, n.String())
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: price has non-numeric type %T", domain.ErrDataIntegrity, v)
	}
}
