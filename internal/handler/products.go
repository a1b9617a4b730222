package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/furnistore/api/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ProductStore defines the database methods needed by product handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type ProductStore interface {
	ListProducts(ctx context.Context, arg database.ListProductsParams) ([]database.Product, error)
	ListProductsWithCategory(ctx context.Context) ([]database.ListProductsWithCategoryRow, error)
	GetProduct(ctx context.Context, id uuid.UUID) (database.Product, error)
	CreateProduct(ctx context.Context, arg database.CreateProductParams) (database.Product, error)
	UpdateProduct(ctx context.Context, arg database.UpdateProductParams) (database.Product, error)
	SoftDeleteProduct(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// ImageSaver stores uploaded product images and returns their public URL.
// Satisfied by *imagestore.Store.
type ImageSaver interface {
	Save(data []byte, ext string) (string, error)
	Remove(url string) error
}

// ProductHandler handles product CRUD endpoints.
type ProductHandler struct {
	store  ProductStore
	images ImageSaver
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store ProductStore, images ImageSaver) *ProductHandler {
	return &ProductHandler{store: store, images: images}
}

// RegisterReadRoutes registers the product read endpoints. Every
// authenticated role can browse the catalog.
func (h *ProductHandler) RegisterReadRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/overview", h.Overview)
	r.Get("/{id}", h.Get)
}

// RegisterWriteRoutes registers the product mutation endpoints. The
// router restricts these to the warehouse role.
func (h *ProductHandler) RegisterWriteRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type productPayload struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    int32  `json:"quantity"`
	// Optional inline upload. When both are set the image is stored on disk
	// and the product gets the resulting URL.
	ImageData string `json:"image_data"` // base64
	ImageExt  string `json:"image_ext"`
}

type productResponse struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	Quantity    int32     `json:"quantity"`
	ImageURL    *string   `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type productOverviewResponse struct {
	productResponse
	CategoryName string `json:"category_name"`
}

func toProductResponse(p database.Product) productResponse {
	resp := productResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Price:      numericToString(p.Price),
		Quantity:   p.Quantity,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Description.Valid {
		resp.Description = &p.Description.String
	}
	if p.ImageUrl.Valid {
		resp.ImageURL = &p.ImageUrl.String
	}
	return resp
}

// --- Helpers ---

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

var errNegativePrice = errors.New("negative price")

func parsePrice(s string) (pgtype.Numeric, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return pgtype.Numeric{}, err
	}
	if d.IsNegative() {
		return pgtype.Numeric{}, errNegativePrice
	}
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return n, nil
}

// validateProductPayload checks the shared required fields and returns the
// parsed category ID and price.
func validateProductPayload(w http.ResponseWriter, req productPayload) (uuid.UUID, pgtype.Numeric, bool) {
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return uuid.Nil, pgtype.Numeric{}, false
	}
	if req.CategoryID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category_id is required"})
		return uuid.Nil, pgtype.Numeric{}, false
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category_id"})
		return uuid.Nil, pgtype.Numeric{}, false
	}
	if req.Price == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price is required"})
		return uuid.Nil, pgtype.Numeric{}, false
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		if errors.Is(err, errNegativePrice) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price must be >= 0"})
		} else {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid price"})
		}
		return uuid.Nil, pgtype.Numeric{}, false
	}
	if req.Quantity < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity must be >= 0"})
		return uuid.Nil, pgtype.Numeric{}, false
	}
	return categoryID, price, true
}

// saveImage stores an inline upload if present. Returns the image URL as a
// nullable text column value.
func (h *ProductHandler) saveImage(w http.ResponseWriter, req productPayload) (pgtype.Text, bool) {
	if req.ImageData == "" {
		return pgtype.Text{}, true
	}
	data, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid image_data"})
		return pgtype.Text{}, false
	}
	url, err := h.images.Save(data, req.ImageExt)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported image format"})
		return pgtype.Text{}, false
	}
	return pgtype.Text{String: url, Valid: true}, true
}

// --- Handlers ---

// List returns active products, newest changes first.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePageParams(r)

	products, err := h.store.ListProducts(r.Context(), database.ListProductsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.Printf("ERROR: list products: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Overview returns all active products joined with their category name,
// grouped for the storefront view.
func (h *ProductHandler) Overview(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListProductsWithCategory(r.Context())
	if err != nil {
		log.Printf("ERROR: product overview: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]productOverviewResponse, len(rows))
	for i, row := range rows {
		resp[i] = productOverviewResponse{
			productResponse: toProductResponse(database.Product{
				ID:          row.ID,
				CategoryID:  row.CategoryID,
				Name:        row.Name,
				Description: row.Description,
				Price:       row.Price,
				Quantity:    row.Quantity,
				ImageUrl:    row.ImageUrl,
				IsActive:    row.IsActive,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			}),
			CategoryName: row.CategoryName,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	prodID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
		return
	}

	product, err := h.store.GetProduct(r.Context(), prodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ERROR: get product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// Create adds a new product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	categoryID, price, ok := validateProductPayload(w, req)
	if !ok {
		return
	}

	imageURL, ok := h.saveImage(w, req)
	if !ok {
		return
	}

	desc := pgtype.Text{}
	if req.Description != "" {
		desc = pgtype.Text{String: req.Description, Valid: true}
	}

	product, err := h.store.CreateProduct(r.Context(), database.CreateProductParams{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: desc,
		Price:       price,
		Quantity:    req.Quantity,
		ImageUrl:    imageURL,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category_id"})
			return
		}
		log.Printf("ERROR: create product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// Update modifies an existing product. The stored image is kept unless the
// request carries a new upload.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	prodID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
		return
	}

	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	categoryID, price, ok := validateProductPayload(w, req)
	if !ok {
		return
	}

	imageURL, ok := h.saveImage(w, req)
	if !ok {
		return
	}

	desc := pgtype.Text{}
	if req.Description != "" {
		desc = pgtype.Text{String: req.Description, Valid: true}
	}

	product, err := h.store.UpdateProduct(r.Context(), database.UpdateProductParams{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: desc,
		Price:       price,
		Quantity:    req.Quantity,
		ImageUrl:    imageURL,
		ID:          prodID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		if isForeignKeyViolation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category_id"})
			return
		}
		log.Printf("ERROR: update product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// Delete soft-deletes a product by setting is_active=false. The row stays
// so past order details keep their reference.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	prodID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
		return
	}

	_, err = h.store.SoftDeleteProduct(r.Context(), prodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ERROR: delete product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
