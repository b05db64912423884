package queries

import (
	"context"

	contracts "github.com/shopease/catalog-service/internal/app/catalog/contracts"
	"github.com/shopease/catalog-service/internal/app/catalog/dto"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/store_status"
)

// MongoReadModel is an infrastructure adapter that satisfies
// contracts.ReadModel. It composes the individual query implementations.
type MongoReadModel struct {
	listQ   *list_products.MongoListProductsQuery
	catsQ   *list_categories.MongoListCategoriesQuery
	statusQ *store_status.MongoStoreStatusQuery
}

func NewMongoReadModel(store contracts.Store, databaseURLSet bool) *MongoReadModel {
	return &MongoReadModel{
		listQ:   list_products.NewMongoListProductsQuery(store),
		catsQ:   list_categories.NewMongoListCategoriesQuery(store),
		statusQ: store_status.NewMongoStoreStatusQuery(store, databaseURLSet),
	}
}

func (rm *MongoReadModel) ListProducts(ctx context.Context, category, q *string) ([]*dto.ProductDTO, error) {
	return rm.listQ.ListProducts(ctx, category, q)
}

func (rm *MongoReadModel) ListCategories(ctx context.Context) ([]string, error) {
	return rm.catsQ.ListCategories(ctx)
}

func (rm *MongoReadModel) StoreStatus(ctx context.Context) (*dto.StoreStatusDTO, error) {
	return rm.statusQ.StoreStatus(ctx)
}
