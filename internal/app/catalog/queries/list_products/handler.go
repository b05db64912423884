package list_products

import (
	"context"

	contracts "github.com/shopease/catalog-service/internal/app/catalog/contracts"
	"github.com/shopease/catalog-service/internal/app/catalog/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, category, q *string) ([]*dto.ProductDTO, error) {
	return h.readModel.ListProducts(ctx, category, q)
}
