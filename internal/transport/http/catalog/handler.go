// Package catalog is the HTTP transport adapter for the catalog
// service. It parses query parameters and request bodies, delegates to
// the application-layer handlers and maps typed failures onto status
// codes. No catalog logic lives here.
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shopease/catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/store_status"
	"github.com/shopease/catalog-service/internal/app/catalog/usecases/create_product"
	"github.com/shopease/catalog-service/internal/app/catalog/usecases/seed_samples"
)

// Commands groups write interactors.
// Keep the transport layer depending on the application layer only.
type Commands struct {
	Create *create_product.Interactor
	Seed   *seed_samples.Interactor
}

// Queries groups read handlers.
type Queries struct {
	List       *list_products.Handler
	Categories *list_categories.Handler
	Status     *store_status.Handler
}

// Handler is a thin HTTP transport adapter.
type Handler struct {
	commands Commands
	queries  Queries
	logger   *zap.Logger
}

func NewHandler(cmd Commands, qry Queries, logger *zap.Logger) *Handler {
	return &Handler{commands: cmd, queries: qry, logger: logger}
}

// Routes registers the storefront API surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.root)
	r.Get("/test", h.storeStatus)
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Post("/products", h.createProduct)
		r.Get("/categories", h.listCategories)
		r.Post("/seed", h.seed)
	})
	return r
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ShopEase backend running"})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := optionalQueryParam(r, "category")
	q := optionalQueryParam(r, "q")

	items, err := h.queries.List.Execute(r.Context(), category, q)
	if err != nil {
		h.respondError(w, r, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.queries.Categories.Execute(r.Context())
	if err != nil {
		h.respondError(w, r, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateProduct(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	id, err := h.commands.Create.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "create product", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	res, err := h.commands.Seed.Execute(r.Context())
	if err != nil {
		h.respondError(w, r, "seed", err)
		return
	}
	writeJSON(w, http.StatusOK, seedReply{
		Status:   "ok",
		Seeded:   res.Seeded,
		Count:    res.Count,
		Existing: res.Existing,
	})
}

func (h *Handler) storeStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.queries.Status.Execute(r.Context())
	if err != nil {
		h.respondError(w, r, "store status", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// seedReply is the seed endpoint's response body.
type seedReply struct {
	Status   string `json:"status"`
	Seeded   bool   `json:"seeded"`
	Count    int    `json:"count,omitempty"`
	Existing int64  `json:"existing,omitempty"`
}

// optionalQueryParam returns nil for an absent or empty parameter.
func optionalQueryParam(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}
