package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/furnistore/api/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const latestOrdersLimit = 5

// DashboardStore defines the database methods needed by the dashboard.
// Satisfied by *database.Queries; narrow interface for testability.
type DashboardStore interface {
	CountAllProducts(ctx context.Context) (int64, error)
	CountAllOrders(ctx context.Context) (int64, error)
	CountAllCustomers(ctx context.Context) (int64, error)
	GetConfirmedRevenue(ctx context.Context) (pgtype.Numeric, error)
	CountOrdersByStatus(ctx context.Context) ([]database.CountOrdersByStatusRow, error)
	ListLatestOrders(ctx context.Context, limit int32) ([]database.ListLatestOrdersRow, error)
}

// DashboardHandler serves the director's overview stats.
type DashboardHandler struct {
	store DashboardStore
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store DashboardStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// RegisterRoutes registers the dashboard endpoint on the given Chi router.
// Mounted under /dashboard; director only.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Stats)
}

// --- Response types ---

type latestOrderResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	OrderDate    time.Time `json:"order_date"`
	TotalAmount  string    `json:"total_amount"`
}

type dashboardResponse struct {
	TotalProducts    int64                 `json:"total_products"`
	TotalOrders      int64                 `json:"total_orders"`
	TotalCustomers   int64                 `json:"total_customers"`
	ConfirmedRevenue string                `json:"confirmed_revenue"`
	OrdersByStatus   map[string]int64      `json:"orders_by_status"`
	LatestOrders     []latestOrderResponse `json:"latest_orders"`
}

// --- Handlers ---

// Stats handles GET /dashboard.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.store.CountAllProducts(ctx)
	if err != nil {
		log.Printf("ERROR: dashboard: count products: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	orders, err := h.store.CountAllOrders(ctx)
	if err != nil {
		log.Printf("ERROR: dashboard: count orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	customers, err := h.store.CountAllCustomers(ctx)
	if err != nil {
		log.Printf("ERROR: dashboard: count customers: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	revenue, err := h.store.GetConfirmedRevenue(ctx)
	if err != nil {
		log.Printf("ERROR: dashboard: revenue: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	byStatus, err := h.store.CountOrdersByStatus(ctx)
	if err != nil {
		log.Printf("ERROR: dashboard: orders by status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	latest, err := h.store.ListLatestOrders(ctx, latestOrdersLimit)
	if err != nil {
		log.Printf("ERROR: dashboard: latest orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	statusCounts := make(map[string]int64, len(byStatus))
	for _, row := range byStatus {
		statusCounts[string(row.Status)] = row.Count
	}

	latestResp := make([]latestOrderResponse, len(latest))
	for i, o := range latest {
		latestResp[i] = latestOrderResponse{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			Status:       string(o.Status),
			OrderDate:    o.OrderDate,
			TotalAmount:  numericToString(o.TotalAmount),
		}
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		TotalProducts:    products,
		TotalOrders:      orders,
		TotalCustomers:   customers,
		ConfirmedRevenue: numericToString(revenue),
		OrdersByStatus:   statusCounts,
		LatestOrders:     latestResp,
	})
}
