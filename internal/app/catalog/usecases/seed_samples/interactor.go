package seed_samples

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/singleflight"

	contracts "github.com/shopease/catalog-service/internal/app/catalog/contracts"
	"github.com/shopease/catalog-service/internal/app/catalog/domain"
	"github.com/shopease/catalog-service/internal/app/catalog/dto"
	"github.com/shopease/catalog-service/internal/models/m_product"
	"github.com/shopease/catalog-service/internal/pkg/clock"
)

// Interactor implements the idempotent seed usecase: insert the sample
// catalog only when the collection is empty.
//
// The count-then-insert sequence is serialized through a singleflight
// group keyed by collection name, so concurrent seed calls within one
// process collapse into a single execution. Two separate processes can
// still race; deduplicating across processes would need a unique
// constraint at the store.
type Interactor struct {
	Store contracts.Store
	Clock clock.Clock

	group singleflight.Group
}

// NewInteractor constructs the interactor.
func NewInteractor(store contracts.Store, clk clock.Clock) *Interactor {
	return &Interactor{Store: store, Clock: clk}
}

// Execute seeds the sample products unless documents already exist.
// Seeding against an unavailable store fails explicitly: the zero count
// a missing handle reports must not be mistaken for an empty catalog.
func (it *Interactor) Execute(ctx context.Context) (*dto.SeedResultDTO, error) {
	v, err, _ := it.group.Do(m_product.CollectionName, func() (interface{}, error) {
		return it.seed(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.SeedResultDTO), nil
}

func (it *Interactor) seed(ctx context.Context) (*dto.SeedResultDTO, error) {
	if !it.Store.Available() {
		return nil, domain.ErrStoreUnavailable
	}

	count, err := it.Store.Count(ctx, m_product.CollectionName, bson.D{})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &dto.SeedResultDTO{Seeded: false, Existing: count}, nil
	}

	now := it.Clock.Now()
	docs := make([]interface{}, 0, len(sampleProducts))
	for _, s := range sampleProducts {
		desc := s.description
		docs = append(docs, m_product.BuildInsertMap(s.title, &desc, s.price, s.category, true, now))
	}

	if _, err := it.Store.InsertMany(ctx, m_product.CollectionName, docs); err != nil {
		return nil, err
	}
	return &dto.SeedResultDTO{Seeded: true, Count: len(docs)}, nil
}
