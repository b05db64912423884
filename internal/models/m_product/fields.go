package m_product

// Field constants for the product collection.
const (
	CollectionName = "product"

	FieldID          = "_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldInStock     = "in_stock"
	FieldCreatedAt   = "created_at"
)
