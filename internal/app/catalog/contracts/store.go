package contracts

import "context"

// Store is the document-store collaborator boundary. Implementations
// wrap a connection that may be absent: when Available reports false,
// read methods behave as if the matching set were empty and write
// methods return domain.ErrStoreUnavailable. Individual call failures
// against an available store surface as domain.ErrStoreOperation with
// a bounded diagnostic.
type Store interface {
	// Available reports whether the underlying handle is initialized.
	Available() bool

	// Find decodes every document matching filter into out, a pointer
	// to a slice. An empty result set is not an error.
	Find(ctx context.Context, collection string, filter interface{}, out interface{}) error

	// Distinct returns the distinct string values of field across
	// documents matching filter. Non-string values are skipped.
	Distinct(ctx context.Context, collection, field string, filter interface{}) ([]string, error)

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter interface{}) (int64, error)

	// InsertOne inserts a document and returns the assigned identifier.
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)

	// InsertMany inserts documents in bulk and returns the assigned
	// identifiers in input order.
	InsertMany(ctx context.Context, collection string, docs []interface{}) ([]string, error)

	// Collections lists the collection names of the underlying database.
	Collections(ctx context.Context) ([]string, error)

	// DatabaseName returns the connected database name, "" when unavailable.
	DatabaseName() string
}
