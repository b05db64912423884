package m_product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RawProduct is the stored shape of a product document. The collection
// enforces no schema, so every field besides the identifier is optional
// and may be absent or hold an unexpected BSON type. Price stays
// untyped because existing documents carry it as int32, int64, double
// or worse; coercion is the normalizer's job.
type RawProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       *string            `bson:"title,omitempty"`
	Description *string            `bson:"description,omitempty"`
	Price       interface{}        `bson:"price,omitempty"`
	Category    string             `bson:"category,omitempty"`
	InStock     *bool              `bson:"in_stock,omitempty"`
}

// BuildInsertMap prepares the canonical fields for an insert.
// The identifier is assigned by the store; description is written only
// when present so absent stays absent in the stored document.
func BuildInsertMap(title string, description *string, price float64, category string, inStock bool, createdAt time.Time) bson.M {
	m := bson.M{
		FieldTitle:     title,
		FieldPrice:     price,
		FieldCategory:  category,
		FieldInStock:   inStock,
		FieldCreatedAt: createdAt.UTC(),
	}
	if description != nil {
		m[FieldDescription] = *description
	}
	return m
}
