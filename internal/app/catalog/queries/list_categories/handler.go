package list_categories

import (
	"context"

	contracts "github.com/shopease/catalog-service/internal/app/catalog/contracts"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context) ([]string, error) {
	return h.readModel.ListCategories(ctx)
}
