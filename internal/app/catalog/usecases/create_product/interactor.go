package create_product

import (
	"context"

	contracts "github.com/shopease/catalog-service/internal/app/catalog/contracts"
	"github.com/shopease/catalog-service/internal/app/catalog/domain"
	"github.com/shopease/catalog-service/internal/models/m_product"
	"github.com/shopease/catalog-service/internal/pkg/clock"
)

// Request is the application-level create-product request.
type Request struct {
	Title       string
	Description *string
	Price       float64
	Category    string
	InStock     *bool
}

// Interactor implements the create-product usecase. Writes never
// degrade: an unavailable store is a hard failure, unlike reads.
type Interactor struct {
	Store contracts.Store
	Clock clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(store contracts.Store, clk clock.Clock) *Interactor {
	return &Interactor{Store: store, Clock: clk}
}

// Execute validates the input, inserts the stored document and returns
// the store-assigned identifier.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	in := domain.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     req.InStock,
	}
	if err := in.Validate(); err != nil {
		return "", err
	}

	doc := m_product.BuildInsertMap(in.Title, in.Description, in.Price, in.Category, in.Stocked(), it.Clock.Now())
	return it.Store.InsertOne(ctx, m_product.CollectionName, doc)
}
