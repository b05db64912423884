package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/shopease/catalog-service/internal/app/catalog/usecases/create_product"
)

var validate = validator.New()

// createProductRequest is the JSON binding for POST /api/products.
// Price is a pointer so required can tell an explicit zero price apart
// from an absent one.
type createProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	InStock     *bool    `json:"in_stock"`
}

// decodeCreateProduct parses and validates the request body and maps it
// to the application-level request.
func decodeCreateProduct(r *http.Request) (create_product.Request, error) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return create_product.Request{}, fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(req); err != nil {
		return create_product.Request{}, fmt.Errorf("invalid product: %w", err)
	}
	return create_product.Request{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		InStock:     req.InStock,
	}, nil
}
