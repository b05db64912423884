package list_products

import (
	"context"

	"github.com/shopease/catalog-service/internal/models/m_product"
)

// fakeStore satisfies contracts.Store for query tests. Only Find
// carries behavior here; the unavailable-handle contract (empty reads)
// is emulated by leaving raws empty.
type fakeStore struct {
	raws      []m_product.RawProduct
	findErr   error
	gotFilter interface{}
}

func (f *fakeStore) Available() bool     { return true }
func (f *fakeStore) DatabaseName() string { return "testdb" }

func (f *fakeStore) Find(_ context.Context, _ string, filter, out interface{}) error {
	f.gotFilter = filter
	if f.findErr != nil {
		return f.findErr
	}
	*(out.(*[]m_product.RawProduct)) = f.raws
	return nil
}

func (f *fakeStore) Distinct(context.Context, string, string, interface{}) ([]string, error) {
	return nil, nil
}
func (f *fakeStore) Count(context.Context, string, interface{}) (int64, error) { return 0, nil }
func (f *fakeStore) InsertOne(context.Context, string, interface{}) (string, error) {
	return "", nil
}
func (f *fakeStore) InsertMany(context.Context, string, []interface{}) ([]string, error) {
	return nil, nil
}
func (f *fakeStore) Collections(context.Context) ([]string, error) { return nil, nil }
