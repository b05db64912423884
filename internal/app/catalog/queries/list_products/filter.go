package list_products

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopease/catalog-service/internal/models/m_product"
)

// BuildFilter translates client query parameters into a store filter.
// A category must match exactly (case-sensitive); a search term must
// appear as a case-insensitive substring of title or description. Both
// conditions combine with AND; with neither present the filter matches
// every document.
//
// The search term goes through regexp.QuoteMeta so arbitrary input is
// always a literal substring, never an executable pattern.
func BuildFilter(category, q *string) bson.D {
	filter := bson.D{}
	if category != nil && *category != "" {
		filter = append(filter, bson.E{Key: m_product.FieldCategory, Value: *category})
	}
	if q != nil && *q != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(*q), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: m_product.FieldTitle, Value: pattern}},
			bson.D{{Key: m_product.FieldDescription, Value: pattern}},
		}})
	}
	return filter
}
