package store_status

import (
	"context"

	contracts "github.com/shopease/catalog-service/internal/app/catalog/contracts"
	"github.com/shopease/catalog-service/internal/app/catalog/domain"
	"github.com/shopease/catalog-service/internal/app/catalog/dto"
)

// maxListedCollections caps the collection names echoed back by the
// diagnostics payload.
const maxListedCollections = 10

// MongoStoreStatusQuery reports store connection diagnostics. It never
// returns an error: failures are folded into the payload as truncated
// strings so the status endpoint stays useful when the store is not.
type MongoStoreStatusQuery struct {
	Store  contracts.Store
	URLSet bool
}

func NewMongoStoreStatusQuery(store contracts.Store, urlSet bool) *MongoStoreStatusQuery {
	return &MongoStoreStatusQuery{Store: store, URLSet: urlSet}
}

func (q *MongoStoreStatusQuery) StoreStatus(ctx context.Context) (*dto.StoreStatusDTO, error) {
	st := &dto.StoreStatusDTO{
		Backend:          "running",
		Database:         "not available",
		DatabaseURLSet:   q.URLSet,
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if !q.Store.Available() {
		return st, nil
	}

	name := q.Store.DatabaseName()
	st.DatabaseName = &name
	st.ConnectionStatus = "connected"

	names, err := q.Store.Collections(ctx)
	if err != nil {
		st.Database = "connected but error: " + domain.Truncate(err.Error(), 50)
		return st, nil
	}

	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if len(names) > 0 {
		st.Collections = names
	}
	st.Database = "connected"
	return st, nil
}
