package store_status

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

func (h *Handler) Execute(ctx context.Context) (*dto.StoreStatusDTO, error) {
	return h.readModel.StoreStatus(ctx)
}
