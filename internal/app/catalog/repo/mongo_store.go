// Package repo contains the MongoDB implementation of the store
// collaborator.
package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopease/catalog-service/internal/app/catalog/domain"
)

// MongoStore adapts a *mongo.Database to the contracts.Store interface.
// The handle may be nil (connection never established): reads then
// behave as if the matching set were empty, writes fail with
// domain.ErrStoreUnavailable.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps db, which may be nil for degraded mode.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Available() bool {
	return s.db != nil
}

func (s *MongoStore) DatabaseName() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter interface{}, out interface{}) error {
	if s.db == nil {
		return nil
	}
	cur, err := s.db.Collection(collection).Find(ctx, orEmpty(filter))
	if err != nil {
		return domain.StoreOpError("find", err)
	}
	if err := cur.All(ctx, out); err != nil {
		return domain.StoreOpError("find", err)
	}
	return nil
}

func (s *MongoStore) Distinct(ctx context.Context, collection, field string, filter interface{}) ([]string, error) {
	if s.db == nil {
		return nil, nil
	}
	vals, err := s.db.Collection(collection).Distinct(ctx, field, orEmpty(filter))
	if err != nil {
		return nil, domain.StoreOpError("distinct", err)
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if sv, ok := v.(string); ok {
			out = append(out, sv)
		}
	}
	return out, nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter interface{}) (int64, error) {
	if s.db == nil {
		return 0, nil
	}
	n, err := s.db.Collection(collection).CountDocuments(ctx, orEmpty(filter))
	if err != nil {
		return 0, domain.StoreOpError("count", err)
	}
	return n, nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", domain.ErrStoreUnavailable
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", domain.StoreOpError("insert", err)
	}
	return idString(res.InsertedID), nil
}

func (s *MongoStore) InsertMany(ctx context.Context, collection string, docs []interface{}) ([]string, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	res, err := s.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return nil, domain.StoreOpError("insert many", err)
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, idString(id))
	}
	return ids, nil
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, nil
	}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, domain.StoreOpError("list collections", err)
	}
	return names, nil
}

// orEmpty substitutes the match-all filter for a nil one; the driver
// rejects nil filters.
func orEmpty(filter interface{}) interface{} {
	if filter == nil {
		return bson.D{}
	}
	return filter
}

// idString renders a store-assigned identifier. ObjectIDs become their
// hex form, anything else its natural string representation.
func idString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
