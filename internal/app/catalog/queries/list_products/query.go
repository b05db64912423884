package list_products

import (
	"context"

	contracts "github.com/shopease/catalog-service/internal/app/catalog/contracts"
	"github.com/shopease/catalog-service/internal/app/catalog/dto"
	"github.com/shopease/catalog-service/internal/app/catalog/normalize"
	"github.com/shopease/catalog-service/internal/models/m_product"
)

// MongoListProductsQuery lists products with optional category and
// search filters, normalizing each stored document into its public
// form. Result order is whatever the store returns; no sort is applied.
type MongoListProductsQuery struct {
	Store contracts.Store
}

func NewMongoListProductsQuery(store contracts.Store) *MongoListProductsQuery {
	return &MongoListProductsQuery{Store: store}
}

func (q *MongoListProductsQuery) ListProducts(ctx context.Context, category, search *string) ([]*dto.ProductDTO, error) {
	var raws []m_product.RawProduct
	if err := q.Store.Find(ctx, m_product.CollectionName, BuildFilter(category, search), &raws); err != nil {
		return nil, err
	}

	out := make([]*dto.ProductDTO, 0, len(raws))
	for _, raw := range raws {
		p, err := normalize.Product(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
