package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/furnistore/api/internal/auth"
	"github.com/furnistore/api/internal/database"
	"github.com/furnistore/api/internal/enum"
	"github.com/furnistore/api/internal/handler"
	"github.com/furnistore/api/internal/middleware"
	"github.com/furnistore/api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const testJWTSecret = "test-secret-for-orders"

// --- Mock service ---

type mockOrderService struct {
	createFn func(ctx context.Context, req service.CreateOrderRequest) (*service.OrderResult, error)
	updateFn func(ctx context.Context, req service.UpdateOrderRequest) (*service.OrderResult, error)
	cancelFn func(ctx context.Context, req service.CancelOrderRequest) (*service.OrderResult, error)
	deleteFn func(ctx context.Context, orderID uuid.UUID) error
}

func (m *mockOrderService) CreateOrder(ctx context.Context, req service.CreateOrderRequest) (*service.OrderResult, error) {
	return m.createFn(ctx, req)
}

func (m *mockOrderService) UpdateOrder(ctx context.Context, req service.UpdateOrderRequest) (*service.OrderResult, error) {
	return m.updateFn(ctx, req)
}

func (m *mockOrderService) CancelOrder(ctx context.Context, req service.CancelOrderRequest) (*service.OrderResult, error) {
	return m.cancelFn(ctx, req)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return m.deleteFn(ctx, orderID)
}

// --- Mock read store ---

type mockOrderReadStore struct {
	orders  map[uuid.UUID]database.Order
	details map[uuid.UUID][]database.ListOrderDetailsWithProductRow
	names   map[uuid.UUID]string // customer ID -> name
}

func newMockOrderReadStore() *mockOrderReadStore {
	return &mockOrderReadStore{
		orders:  make(map[uuid.UUID]database.Order),
		details: make(map[uuid.UUID][]database.ListOrderDetailsWithProductRow),
		names:   make(map[uuid.UUID]string),
	}
}

func (m *mockOrderReadStore) GetOrder(_ context.Context, id uuid.UUID) (database.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return database.Order{}, pgx.ErrNoRows
	}
	return o, nil
}

func (m *mockOrderReadStore) ListOrders(_ context.Context, arg database.ListOrdersParams) ([]database.ListOrdersRow, error) {
	var result []database.ListOrdersRow
	for _, o := range m.orders {
		if arg.Status.Valid && o.Status != arg.Status.OrderStatus {
			continue
		}
		result = append(result, database.ListOrdersRow{
			ID:           o.ID,
			CustomerID:   o.CustomerID,
			CreatedBy:    o.CreatedBy,
			Status:       o.Status,
			OrderDate:    o.OrderDate,
			TotalAmount:  o.TotalAmount,
			InternalNote: o.InternalNote,
			CustomerNote: o.CustomerNote,
			CancelReason: o.CancelReason,
			CancelNote:   o.CancelNote,
			CancelledAt:  o.CancelledAt,
			CancelledBy:  o.CancelledBy,
			CreatedAt:    o.CreatedAt,
			UpdatedAt:    o.UpdatedAt,
			CustomerName: m.names[o.CustomerID],
		})
	}
	return result, nil
}

func (m *mockOrderReadStore) CountOrders(_ context.Context, arg database.CountOrdersParams) (int64, error) {
	var count int64
	for _, o := range m.orders {
		if arg.Status.Valid && o.Status != arg.Status.OrderStatus {
			continue
		}
		count++
	}
	return count, nil
}

func (m *mockOrderReadStore) ListOrderDetailsWithProduct(_ context.Context, orderID uuid.UUID) ([]database.ListOrderDetailsWithProductRow, error) {
	return m.details[orderID], nil
}

// --- Mock event publisher ---

type mockPublisher struct {
	events []publishedEvent
}

type publishedEvent struct {
	event   string
	orderID uuid.UUID
	status  string
}

func (m *mockPublisher) PublishOrderEvent(event string, orderID uuid.UUID, status string) {
	m.events = append(m.events, publishedEvent{event: event, orderID: orderID, status: status})
}

// --- Helpers ---

func setupOrderRouter(svc *mockOrderService, store *mockOrderReadStore, events *mockPublisher) *chi.Mux {
	h := handler.NewOrderHandler(svc, store, events)
	r := chi.NewRouter()
	r.Use(middleware.Authenticate(testJWTSecret))
	r.Route("/orders", func(r chi.Router) {
		h.RegisterReadRoutes(r)
		h.RegisterWriteRoutes(r)
	})
	return r
}

func doAuthRequest(t *testing.T, router http.Handler, method, path string, body interface{}, claims *auth.Claims) *httptest.ResponseRecorder {
	t.Helper()

	// Generate a real JWT token from claims
	token, err := auth.GenerateToken(testJWTSecret, claims.UserID, claims.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeOrderResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

// --- Helpers to build test data ---

func salesClaims() *auth.Claims {
	return &auth.Claims{
		UserID: uuid.New(),
		Role:   enum.UserRoleSales,
	}
}

func testNumeric(s string) pgtype.Numeric {
	var n pgtype.Numeric
	n.Scan(s)
	return n
}

func testOrderResult(createdBy uuid.UUID, status database.OrderStatus) *service.OrderResult {
	orderID := uuid.New()
	now := time.Now()

	return &service.OrderResult{
		Order: database.Order{
			ID:          orderID,
			CustomerID:  uuid.New(),
			CreatedBy:   createdBy,
			Status:      status,
			OrderDate:   now,
			TotalAmount: testNumeric("3000.00"),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Details: []database.OrderDetail{
			{
				ID:        uuid.New(),
				OrderID:   orderID,
				ProductID: uuid.New(),
				Quantity:  2,
				UnitPrice: testNumeric("1500.00"),
			},
		},
	}
}

func validOrderBody() map[string]interface{} {
	return map[string]interface{}{
		"customer_id": uuid.New().String(),
		"items": []map[string]interface{}{
			{"product_id": uuid.New().String(), "quantity": 2},
		},
	}
}

// --- Create ---

func TestOrderCreate(t *testing.T) {
	claims := salesClaims()
	events := &mockPublisher{}

	var captured service.CreateOrderRequest
	svc := &mockOrderService{
		createFn: func(_ context.Context, req service.CreateOrderRequest) (*service.OrderResult, error) {
			captured = req
			return testOrderResult(req.CreatedBy, database.OrderStatusPENDING), nil
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), events)

	rr := doAuthRequest(t, router, http.MethodPost, "/orders", validOrderBody(), claims)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d; body: %s", rr.Code, rr.Body.String())
	}

	if captured.CreatedBy != claims.UserID {
		t.Errorf("expected creator %s from token claims, got %s", claims.UserID, captured.CreatedBy)
	}

	resp := decodeOrderResponse(t, rr)
	if resp["status"] != "PENDING" {
		t.Errorf("expected status PENDING, got %v", resp["status"])
	}
	if resp["total_amount"] != "3000.00" {
		t.Errorf("expected total_amount 3000.00, got %v", resp["total_amount"])
	}
	items := resp["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	if len(events.events) != 1 || events.events[0].event != "order.created" {
		t.Errorf("expected order.created event, got %+v", events.events)
	}
}

func TestOrderCreateNegotiatedPrice(t *testing.T) {
	var captured service.CreateOrderRequest
	svc := &mockOrderService{
		createFn: func(_ context.Context, req service.CreateOrderRequest) (*service.OrderResult, error) {
			captured = req
			return testOrderResult(req.CreatedBy, database.OrderStatusPENDING), nil
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	body := map[string]interface{}{
		"customer_id": uuid.New().String(),
		"items": []map[string]interface{}{
			{"product_id": uuid.New().String(), "quantity": 2, "unit_price": "1350.00"},
		},
	}
	rr := doAuthRequest(t, router, http.MethodPost, "/orders", body, salesClaims())

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d; body: %s", rr.Code, rr.Body.String())
	}
	if len(captured.Items) != 1 || captured.Items[0].UnitPrice != "1350.00" {
		t.Errorf("expected unit_price 1350.00 passed through, got %+v", captured.Items)
	}
}

func TestOrderCreateInvalidUnitPrice(t *testing.T) {
	svc := &mockOrderService{
		createFn: func(_ context.Context, req service.CreateOrderRequest) (*service.OrderResult, error) {
			return nil, service.ErrInvalidUnitPrice
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	body := validOrderBody()
	rr := doAuthRequest(t, router, http.MethodPost, "/orders", body, salesClaims())

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d; body: %s", rr.Code, rr.Body.String())
	}
}

func TestOrderCreateUnauthenticated(t *testing.T) {
	svc := &mockOrderService{}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	b, _ := json.Marshal(validOrderBody())
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(b))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestOrderCreateMissingCustomer(t *testing.T) {
	svc := &mockOrderService{}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": uuid.New().String(), "quantity": 2},
		},
	}
	rr := doAuthRequest(t, router, http.MethodPost, "/orders", body, salesClaims())

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestOrderCreateEmptyItems(t *testing.T) {
	svc := &mockOrderService{}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	body := map[string]interface{}{
		"customer_id": uuid.New().String(),
		"items":       []map[string]interface{}{},
	}
	rr := doAuthRequest(t, router, http.MethodPost, "/orders", body, salesClaims())

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestOrderCreateInsufficientStock(t *testing.T) {
	events := &mockPublisher{}
	svc := &mockOrderService{
		createFn: func(_ context.Context, _ service.CreateOrderRequest) (*service.OrderResult, error) {
			return nil, &service.InsufficientStockError{
				ProductName: "Oak Dining Table",
				Available:   3,
				Requested:   5,
			}
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), events)

	rr := doAuthRequest(t, router, http.MethodPost, "/orders", validOrderBody(), salesClaims())

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeOrderResponse(t, rr)
	if resp["product"] != "Oak Dining Table" {
		t.Errorf("expected product 'Oak Dining Table', got %v", resp["product"])
	}
	if resp["available"].(float64) != 3 {
		t.Errorf("expected available 3, got %v", resp["available"])
	}
	if resp["requested"].(float64) != 5 {
		t.Errorf("expected requested 5, got %v", resp["requested"])
	}

	if len(events.events) != 0 {
		t.Errorf("no event should be published on failure, got %+v", events.events)
	}
}

func TestOrderCreateCustomerNotFound(t *testing.T) {
	svc := &mockOrderService{
		createFn: func(_ context.Context, _ service.CreateOrderRequest) (*service.OrderResult, error) {
			return nil, service.ErrCustomerNotFound
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodPost, "/orders", validOrderBody(), salesClaims())

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestOrderCreateInactiveCreator(t *testing.T) {
	svc := &mockOrderService{
		createFn: func(_ context.Context, _ service.CreateOrderRequest) (*service.OrderResult, error) {
			return nil, service.ErrCreatorInactive
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodPost, "/orders", validOrderBody(), salesClaims())

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", rr.Code)
	}
}

// --- List / Get ---

func TestOrderList(t *testing.T) {
	store := newMockOrderReadStore()
	customerID := uuid.New()
	store.names[customerID] = "Ana Flores"
	order := database.Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		CreatedBy:   uuid.New(),
		Status:      database.OrderStatusPENDING,
		OrderDate:   time.Now(),
		TotalAmount: testNumeric("3000.00"),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	store.orders[order.ID] = order

	router := setupOrderRouter(&mockOrderService{}, store, &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodGet, "/orders", nil, salesClaims())

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeOrderResponse(t, rr)
	if resp["total"].(float64) != 1 {
		t.Errorf("expected total 1, got %v", resp["total"])
	}
	orders := resp["orders"].([]interface{})
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	first := orders[0].(map[string]interface{})
	if first["customer_name"] != "Ana Flores" {
		t.Errorf("expected customer_name 'Ana Flores', got %v", first["customer_name"])
	}
}

func TestOrderListStatusFilter(t *testing.T) {
	store := newMockOrderReadStore()
	pending := database.Order{ID: uuid.New(), CustomerID: uuid.New(), Status: database.OrderStatusPENDING, TotalAmount: testNumeric("100.00")}
	cancelled := database.Order{ID: uuid.New(), CustomerID: uuid.New(), Status: database.OrderStatusCANCELLED, TotalAmount: testNumeric("200.00")}
	store.orders[pending.ID] = pending
	store.orders[cancelled.ID] = cancelled

	router := setupOrderRouter(&mockOrderService{}, store, &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodGet, "/orders?status=CANCELLED", nil, salesClaims())

	resp := decodeOrderResponse(t, rr)
	if resp["total"].(float64) != 1 {
		t.Errorf("expected total 1, got %v", resp["total"])
	}
}

// A status filter outside the known states is a client error, not a
// value to hand the database.
func TestOrderListUnknownStatusFilter(t *testing.T) {
	store := newMockOrderReadStore()
	router := setupOrderRouter(&mockOrderService{}, store, &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodGet, "/orders?status=SHIPPED", nil, salesClaims())

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeOrderResponse(t, rr)
	if resp["error"] != "invalid status filter" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

func TestOrderGet(t *testing.T) {
	store := newMockOrderReadStore()
	order := database.Order{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		CreatedBy:   uuid.New(),
		Status:      database.OrderStatusCONFIRMED,
		OrderDate:   time.Now(),
		TotalAmount: testNumeric("3000.00"),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	store.orders[order.ID] = order
	store.details[order.ID] = []database.ListOrderDetailsWithProductRow{
		{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   uuid.New(),
			Quantity:    2,
			UnitPrice:   testNumeric("1500.00"),
			ProductName: "Oak Dining Table",
		},
	}

	router := setupOrderRouter(&mockOrderService{}, store, &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodGet, "/orders/"+order.ID.String(), nil, salesClaims())

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeOrderResponse(t, rr)
	if resp["status"] != "CONFIRMED" {
		t.Errorf("expected status CONFIRMED, got %v", resp["status"])
	}
	items := resp["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0].(map[string]interface{})
	if item["product_name"] != "Oak Dining Table" {
		t.Errorf("expected product_name 'Oak Dining Table', got %v", item["product_name"])
	}
	if item["unit_price"] != "1500.00" {
		t.Errorf("expected unit_price 1500.00, got %v", item["unit_price"])
	}
}

func TestOrderGetNotFound(t *testing.T) {
	router := setupOrderRouter(&mockOrderService{}, newMockOrderReadStore(), &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodGet, "/orders/"+uuid.New().String(), nil, salesClaims())

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestOrderGetInvalidID(t *testing.T) {
	router := setupOrderRouter(&mockOrderService{}, newMockOrderReadStore(), &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodGet, "/orders/not-a-uuid", nil, salesClaims())

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

// --- Update ---

func TestOrderUpdate(t *testing.T) {
	events := &mockPublisher{}
	svc := &mockOrderService{
		updateFn: func(_ context.Context, req service.UpdateOrderRequest) (*service.OrderResult, error) {
			return testOrderResult(uuid.New(), database.OrderStatusCONFIRMED), nil
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), events)

	rr := doAuthRequest(t, router, http.MethodPut, "/orders/"+uuid.New().String(), validOrderBody(), salesClaims())

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d; body: %s", rr.Code, rr.Body.String())
	}

	if len(events.events) != 1 || events.events[0].event != "order.updated" {
		t.Errorf("expected order.updated event, got %+v", events.events)
	}
}

func TestOrderUpdateNotFound(t *testing.T) {
	svc := &mockOrderService{
		updateFn: func(_ context.Context, _ service.UpdateOrderRequest) (*service.OrderResult, error) {
			return nil, service.ErrOrderNotFound
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodPut, "/orders/"+uuid.New().String(), validOrderBody(), salesClaims())

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestOrderUpdateCancelledOrder(t *testing.T) {
	svc := &mockOrderService{
		updateFn: func(_ context.Context, _ service.UpdateOrderRequest) (*service.OrderResult, error) {
			return nil, service.ErrOrderAlreadyCancelled
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodPut, "/orders/"+uuid.New().String(), validOrderBody(), salesClaims())

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", rr.Code)
	}
}

// --- Cancel ---

func TestOrderCancel(t *testing.T) {
	claims := salesClaims()
	events := &mockPublisher{}

	var captured service.CancelOrderRequest
	svc := &mockOrderService{
		cancelFn: func(_ context.Context, req service.CancelOrderRequest) (*service.OrderResult, error) {
			captured = req
			return testOrderResult(uuid.New(), database.OrderStatusCANCELLED), nil
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), events)

	orderID := uuid.New()
	body := map[string]interface{}{
		"reason": "CUSTOMER_REQUEST",
		"note":   "changed their mind",
	}
	rr := doAuthRequest(t, router, http.MethodPost, "/orders/"+orderID.String()+"/cancel", body, claims)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d; body: %s", rr.Code, rr.Body.String())
	}

	if captured.OrderID != orderID {
		t.Errorf("expected order ID %s, got %s", orderID, captured.OrderID)
	}
	if captured.Reason != "CUSTOMER_REQUEST" {
		t.Errorf("expected reason CUSTOMER_REQUEST, got %s", captured.Reason)
	}
	if captured.CancelledBy != claims.UserID {
		t.Errorf("expected cancelled_by from token claims")
	}

	if len(events.events) != 1 || events.events[0].event != "order.cancelled" {
		t.Errorf("expected order.cancelled event, got %+v", events.events)
	}
}

func TestOrderCancelMissingReason(t *testing.T) {
	router := setupOrderRouter(&mockOrderService{}, newMockOrderReadStore(), &mockPublisher{})

	body := map[string]interface{}{"note": "no reason given"}
	rr := doAuthRequest(t, router, http.MethodPost, "/orders/"+uuid.New().String()+"/cancel", body, salesClaims())

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestOrderCancelInvalidReason(t *testing.T) {
	svc := &mockOrderService{
		cancelFn: func(_ context.Context, _ service.CancelOrderRequest) (*service.OrderResult, error) {
			return nil, service.ErrInvalidCancelReason
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	body := map[string]interface{}{"reason": "BORED"}
	rr := doAuthRequest(t, router, http.MethodPost, "/orders/"+uuid.New().String()+"/cancel", body, salesClaims())

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestOrderCancelAlreadyCancelled(t *testing.T) {
	svc := &mockOrderService{
		cancelFn: func(_ context.Context, _ service.CancelOrderRequest) (*service.OrderResult, error) {
			return nil, service.ErrOrderAlreadyCancelled
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	body := map[string]interface{}{"reason": "OTHER"}
	rr := doAuthRequest(t, router, http.MethodPost, "/orders/"+uuid.New().String()+"/cancel", body, salesClaims())

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", rr.Code)
	}
}

// --- Delete ---

func TestOrderDelete(t *testing.T) {
	events := &mockPublisher{}
	svc := &mockOrderService{
		deleteFn: func(_ context.Context, _ uuid.UUID) error {
			return nil
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), events)

	rr := doAuthRequest(t, router, http.MethodDelete, "/orders/"+uuid.New().String(), nil, salesClaims())

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rr.Code)
	}

	if len(events.events) != 1 || events.events[0].event != "order.deleted" {
		t.Errorf("expected order.deleted event, got %+v", events.events)
	}
}

func TestOrderDeleteNotFound(t *testing.T) {
	svc := &mockOrderService{
		deleteFn: func(_ context.Context, _ uuid.UUID) error {
			return service.ErrOrderNotFound
		},
	}
	router := setupOrderRouter(svc, newMockOrderReadStore(), &mockPublisher{})

	rr := doAuthRequest(t, router, http.MethodDelete, "/orders/"+uuid.New().String(), nil, salesClaims())

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}
