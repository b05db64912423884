package dto

// ProductDTO is the public form of a product returned by read queries.
// Title is a pointer because the store enforces no schema: a document
// without a title normalizes to a null title, not an error.
// Description is omitted entirely when absent upstream.
type ProductDTO struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
}

// SeedResultDTO reports the outcome of a seeding attempt.
// Exactly one of Count (fresh seed) and Existing (no-op) is meaningful.
type SeedResultDTO struct {
	Seeded   bool  `json:"seeded"`
	Count    int   `json:"count,omitempty"`
	Existing int64 `json:"existing,omitempty"`
}

// StoreStatusDTO carries connection diagnostics for the status endpoint.
type StoreStatusDTO struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
