package list_categories

import (
	"context"
	"slices"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	contracts "github.com/shopease/catalog-service/internal/app/catalog/contracts"
	"github.com/shopease/catalog-service/internal/models/m_product"
)

// MongoListCategoriesQuery returns the distinct category facets across
// all product documents, sorted lexicographically ascending.
type MongoListCategoriesQuery struct {
	Store contracts.Store
}

func NewMongoListCategoriesQuery(store contracts.Store) *MongoListCategoriesQuery {
	return &MongoListCategoriesQuery{Store: store}
}

func (q *MongoListCategoriesQuery) ListCategories(ctx context.Context) ([]string, error) {
	vals, err := q.Store.Distinct(ctx, m_product.CollectionName, m_product.FieldCategory, bson.D{})
	if err != nil {
		return nil, err
	}
	sort.Strings(vals)
	// The store already deduplicates; Compact keeps the invariant even
	// against a collaborator that does not.
	out := slices.Compact(vals)
	if out == nil {
		out = []string{}
	}
	return out, nil
}
