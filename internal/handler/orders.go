package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/furnistore/api/internal/database"
	"github.com/furnistore/api/internal/enum"
	"github.com/furnistore/api/internal/middleware"
	"github.com/furnistore/api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// OrderServicer defines the service methods needed by order handlers.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderServicer interface {
	CreateOrder(ctx context.Context, req service.CreateOrderRequest) (*service.OrderResult, error)
	UpdateOrder(ctx context.Context, req service.UpdateOrderRequest) (*service.OrderResult, error)
	CancelOrder(ctx context.Context, req service.CancelOrderRequest) (*service.OrderResult, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

// OrderStore defines the database methods needed by order read handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type OrderStore interface {
	GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error)
	ListOrders(ctx context.Context, arg database.ListOrdersParams) ([]database.ListOrdersRow, error)
	CountOrders(ctx context.Context, arg database.CountOrdersParams) (int64, error)
	ListOrderDetailsWithProduct(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderDetailsWithProductRow, error)
}

// OrderEventPublisher pushes order lifecycle events to connected clients.
// Satisfied by *ws.Hub.
type OrderEventPublisher interface {
	PublishOrderEvent(event string, orderID uuid.UUID, status string)
}

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc    OrderServicer
	store  OrderStore
	events OrderEventPublisher
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc OrderServicer, store OrderStore, events OrderEventPublisher) *OrderHandler {
	return &OrderHandler{svc: svc, store: store, events: events}
}

// RegisterReadRoutes registers the order read and cancel endpoints.
// Sales staff and the director can view and cancel orders.
func (h *OrderHandler) RegisterReadRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/cancel", h.Cancel)
}

// RegisterWriteRoutes registers the order mutation endpoints. Only
// sales staff create, edit, and delete orders.
func (h *OrderHandler) RegisterWriteRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type orderPayload struct {
	CustomerID   string             `json:"customer_id"`
	Status       string             `json:"status"`
	InternalNote string             `json:"internal_note"`
	CustomerNote string             `json:"customer_note"`
	Items        []orderItemRequest `json:"items"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
	Note   string `json:"note"`
}

type orderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int32     `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
}

type orderResponse struct {
	ID           uuid.UUID           `json:"id"`
	CustomerID   uuid.UUID           `json:"customer_id"`
	CustomerName string              `json:"customer_name,omitempty"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"order_date"`
	TotalAmount  string              `json:"total_amount"`
	InternalNote *string             `json:"internal_note"`
	CustomerNote *string             `json:"customer_note"`
	CancelReason *string             `json:"cancel_reason"`
	CancelNote   *string             `json:"cancel_note"`
	CancelledAt  *time.Time          `json:"cancelled_at"`
	CancelledBy  *string             `json:"cancelled_by"`
	CreatedBy    uuid.UUID           `json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Items        []orderItemResponse `json:"items,omitempty"`
}

// orderListResponse wraps a list of orders with pagination metadata.
type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

func dbOrderToResponse(o database.Order) orderResponse {
	resp := orderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		OrderDate:   o.OrderDate,
		TotalAmount: numericToString(o.TotalAmount),
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.InternalNote.Valid {
		resp.InternalNote = &o.InternalNote.String
	}
	if o.CustomerNote.Valid {
		resp.CustomerNote = &o.CustomerNote.String
	}
	if o.CancelReason.Valid {
		s := string(o.CancelReason.CancelReason)
		resp.CancelReason = &s
	}
	if o.CancelNote.Valid {
		resp.CancelNote = &o.CancelNote.String
	}
	if o.CancelledAt.Valid {
		resp.CancelledAt = &o.CancelledAt.Time
	}
	if o.CancelledBy.Valid {
		s := uuid.UUID(o.CancelledBy.Bytes).String()
		resp.CancelledBy = &s
	}
	return resp
}

func toOrderResponse(result *service.OrderResult) orderResponse {
	resp := dbOrderToResponse(result.Order)
	resp.Items = make([]orderItemResponse, len(result.Details))
	for i, d := range result.Details {
		resp.Items[i] = orderItemResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: numericToString(d.UnitPrice),
		}
	}
	return resp
}

func listRowToResponse(row database.ListOrdersRow) orderResponse {
	resp := dbOrderToResponse(database.Order{
		ID:           row.ID,
		CustomerID:   row.CustomerID,
		CreatedBy:    row.CreatedBy,
		Status:       row.Status,
		OrderDate:    row.OrderDate,
		TotalAmount:  row.TotalAmount,
		InternalNote: row.InternalNote,
		CustomerNote: row.CustomerNote,
		CancelReason: row.CancelReason,
		CancelNote:   row.CancelNote,
		CancelledAt:  row.CancelledAt,
		CancelledBy:  row.CancelledBy,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	})
	resp.CustomerName = row.CustomerName
	return resp
}

// --- Helpers ---

func numericToString(n pgtype.Numeric) string {
	if !n.Valid {
		return "0.00"
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return "0.00"
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return "0.00"
	}
	return d.StringFixed(2)
}

// parsePageParams reads limit/offset query params. Default 20, cap 100.
func parsePageParams(r *http.Request) (int32, int32) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > 100 {
		limit = 100
	}

	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}
	return int32(limit), int32(offset)
}

// isOrderValidationError checks if the error is a known validation error
// from the service layer that should result in 400 Bad Request.
func isOrderValidationError(err error) bool {
	return errors.Is(err, service.ErrEmptyItems) ||
		errors.Is(err, service.ErrInvalidQuantity) ||
		errors.Is(err, service.ErrInvalidProductID) ||
		errors.Is(err, service.ErrInvalidCustomerID) ||
		errors.Is(err, service.ErrInvalidStatus) ||
		errors.Is(err, service.ErrInvalidCancelReason) ||
		errors.Is(err, service.ErrDuplicateProduct) ||
		errors.Is(err, service.ErrInvalidUnitPrice) ||
		errors.Is(err, service.ErrProductNotFound) ||
		errors.Is(err, service.ErrCustomerNotFound)
}

// writeOrderError maps order service errors to HTTP responses.
func writeOrderError(w http.ResponseWriter, action string, err error) {
	var stockErr *service.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":     stockErr.Error(),
			"product":   stockErr.ProductName,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.Is(err, service.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
	case errors.Is(err, service.ErrOrderAlreadyCancelled):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "order is already cancelled"})
	case errors.Is(err, service.ErrCreatorInactive):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "account is inactive"})
	case isOrderValidationError(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Printf("ERROR: %s: %v", action, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func toServiceItems(items []orderItemRequest) []service.OrderItemRequest {
	svcItems := make([]service.OrderItemRequest, len(items))
	for i, item := range items {
		svcItems[i] = service.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return svcItems
}

// --- Handlers ---

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req orderPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.CustomerID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "customer_id is required"})
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "items are required"})
		return
	}

	result, err := h.svc.CreateOrder(r.Context(), service.CreateOrderRequest{
		CustomerID:   req.CustomerID,
		CreatedBy:    claims.UserID,
		Status:       req.Status,
		InternalNote: req.InternalNote,
		CustomerNote: req.CustomerNote,
		Items:        toServiceItems(req.Items),
	})
	if err != nil {
		writeOrderError(w, "create order", err)
		return
	}

	h.events.PublishOrderEvent("order.created", result.Order.ID, string(result.Order.Status))
	writeJSON(w, http.StatusCreated, toOrderResponse(result))
}

// List handles GET /orders with optional status and customer name filters.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePageParams(r)

	status := database.NullOrderStatus{}
	if s := r.URL.Query().Get("status"); s != "" {
		switch s {
		case enum.OrderStatusPending, enum.OrderStatusConfirmed, enum.OrderStatusCancelled:
			status = database.NullOrderStatus{OrderStatus: database.OrderStatus(s), Valid: true}
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status filter"})
			return
		}
	}
	customerName := pgtype.Text{}
	if s := r.URL.Query().Get("customer"); s != "" {
		customerName = pgtype.Text{String: s, Valid: true}
	}

	orders, err := h.store.ListOrders(r.Context(), database.ListOrdersParams{
		Status:       status,
		CustomerName: customerName,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	total, err := h.store.CountOrders(r.Context(), database.CountOrdersParams{
		Status:       status,
		CustomerName: customerName,
	})
	if err != nil {
		log.Printf("ERROR: count orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = listRowToResponse(o)
	}

	writeJSON(w, http.StatusOK, orderListResponse{
		Orders: resp,
		Total:  total,
		Limit:  int(limit),
		Offset: int(offset),
	})
}

// Get handles GET /orders/{id}, returning the order with its line items.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.store.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	details, err := h.store.ListOrderDetailsWithProduct(r.Context(), orderID)
	if err != nil {
		log.Printf("ERROR: list order details: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := dbOrderToResponse(order)
	resp.Items = make([]orderItemResponse, len(details))
	for i, d := range details {
		resp.Items[i] = orderItemResponse{
			ID:          d.ID,
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			Quantity:    d.Quantity,
			UnitPrice:   numericToString(d.UnitPrice),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /orders/{id}, replacing the order's line items.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var req orderPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.CustomerID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "customer_id is required"})
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "items are required"})
		return
	}

	result, err := h.svc.UpdateOrder(r.Context(), service.UpdateOrderRequest{
		OrderID:      orderID,
		CustomerID:   req.CustomerID,
		Status:       req.Status,
		InternalNote: req.InternalNote,
		CustomerNote: req.CustomerNote,
		Items:        toServiceItems(req.Items),
	})
	if err != nil {
		writeOrderError(w, "update order", err)
		return
	}

	h.events.PublishOrderEvent("order.updated", result.Order.ID, string(result.Order.Status))
	writeJSON(w, http.StatusOK, toOrderResponse(result))
}

// Cancel handles POST /orders/{id}/cancel. Stock held by the order goes
// back to the warehouse.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var req cancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Reason == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reason is required"})
		return
	}

	result, err := h.svc.CancelOrder(r.Context(), service.CancelOrderRequest{
		OrderID:     orderID,
		Reason:      req.Reason,
		Note:        req.Note,
		CancelledBy: claims.UserID,
	})
	if err != nil {
		writeOrderError(w, "cancel order", err)
		return
	}

	h.events.PublishOrderEvent("order.cancelled", result.Order.ID, string(result.Order.Status))
	writeJSON(w, http.StatusOK, toOrderResponse(result))
}

// Delete handles DELETE /orders/{id}. Permanent; does not return stock.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), orderID); err != nil {
		writeOrderError(w, "delete order", err)
		return
	}

	h.events.PublishOrderEvent("order.deleted", orderID, "")
	w.WriteHeader(http.StatusNoContent)
}
