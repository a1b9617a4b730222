package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/furnistore/api/internal/database"
	"github.com/furnistore/api/internal/enum"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Errors returned by the order service.
var (
	ErrEmptyItems            = errors.New("items are required")
	ErrInvalidQuantity       = errors.New("quantity must be > 0")
	ErrInvalidProductID      = errors.New("invalid product_id")
	ErrInvalidCustomerID     = errors.New("invalid customer_id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidCancelReason   = errors.New("invalid cancel_reason")
	ErrProductNotFound       = errors.New("product not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")
	ErrCreatorInactive       = errors.New("creating user is inactive")
	ErrDuplicateProduct      = errors.New("duplicate product in items")
	ErrInvalidUnitPrice      = errors.New("invalid unit_price")
)

// InsufficientStockError reports a line item that asks for more units
// than the warehouse currently holds.
type InsufficientStockError struct {
	ProductName string
	Available   int32
	Requested   int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d available, %d requested",
		e.ProductName, e.Available, e.Requested)
}

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// OrderStore defines the DB methods needed by the order workflow.
// Satisfied by *database.Queries (and its WithTx variant).
type OrderStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (database.User, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (database.Customer, error)
	GetProductForUpdate(ctx context.Context, id uuid.UUID) (database.GetProductForUpdateRow, error)
	AdjustProductQuantity(ctx context.Context, arg database.AdjustProductQuantityParams) error
	IncrementCustomerOrders(ctx context.Context, id uuid.UUID) error
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	CreateOrderDetail(ctx context.Context, arg database.CreateOrderDetailParams) (database.OrderDetail, error)
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (database.Order, error)
	ListOrderDetailsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.OrderDetail, error)
	DeleteOrderDetailsByOrder(ctx context.Context, orderID uuid.UUID) error
	UpdateOrder(ctx context.Context, arg database.UpdateOrderParams) (database.Order, error)
	CancelOrder(ctx context.Context, arg database.CancelOrderParams) (database.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

// NewOrderStore creates an OrderStore from a DBTX (pool or tx).
// This allows the service to create store instances from transactions.
type NewOrderStore func(db database.DBTX) OrderStore

// OrderItemRequest is a single line in an order. UnitPrice is the
// negotiated price per unit; empty takes the product's listed price.
type OrderItemRequest struct {
	ProductID string
	Quantity  int32
	UnitPrice string
}

// CreateOrderRequest is the validated input for creating an order.
type CreateOrderRequest struct {
	CustomerID   string
	CreatedBy    uuid.UUID
	Status       string // PENDING or CONFIRMED; empty defaults to PENDING
	InternalNote string
	CustomerNote string
	Items        []OrderItemRequest
}

// UpdateOrderRequest replaces an order's line items and header fields.
type UpdateOrderRequest struct {
	OrderID      uuid.UUID
	CustomerID   string
	Status       string
	InternalNote string
	CustomerNote string
	Items        []OrderItemRequest
}

// CancelOrderRequest marks an order cancelled and returns its stock.
type CancelOrderRequest struct {
	OrderID     uuid.UUID
	Reason      string
	Note        string
	CancelledBy uuid.UUID
}

// OrderResult is an order together with its line items.
type OrderResult struct {
	Order   database.Order
	Details []database.OrderDetail
}

// OrderService handles order business logic.
type OrderService struct {
	pool     TxBeginner
	newStore NewOrderStore
}

// NewOrderService creates a new OrderService.
func NewOrderService(pool TxBeginner, newStore NewOrderStore) *OrderService {
	return &OrderService{pool: pool, newStore: newStore}
}

// reservedItem holds a validated line with its locked product data.
type reservedItem struct {
	productID uuid.UUID
	quantity  int32
	unitPrice decimal.Decimal
}

// CreateOrder validates stock, reserves it, and creates an order atomically.
// Product rows are locked FOR UPDATE so concurrent orders cannot oversell.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResult, error) {
	status, err := validateOpenStatus(req.Status)
	if err != nil {
		return nil, err
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrInvalidCustomerID
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	creator, err := store.GetUserByID(ctx, req.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCreatorInactive
		}
		return nil, fmt.Errorf("get creator: %w", err)
	}
	if !creator.IsActive {
		return nil, ErrCreatorInactive
	}

	if _, err := store.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}

	reserved, total, err := reserveItems(ctx, store, req.Items)
	if err != nil {
		return nil, err
	}

	order, err := store.CreateOrder(ctx, database.CreateOrderParams{
		CustomerID:   customerID,
		CreatedBy:    req.CreatedBy,
		Status:       status,
		TotalAmount:  decimalToNumeric(total),
		InternalNote: textOrNull(req.InternalNote),
		CustomerNote: textOrNull(req.CustomerNote),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	details, err := insertDetails(ctx, store, order.ID, reserved)
	if err != nil {
		return nil, err
	}

	if err := store.IncrementCustomerOrders(ctx, customerID); err != nil {
		return nil, fmt.Errorf("increment customer orders: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &OrderResult{Order: order, Details: details}, nil
}

// UpdateOrder replaces the order's items: current stock reservations are
// returned first, then the new item set is validated and reserved against
// the restored quantities, all within one transaction.
func (s *OrderService) UpdateOrder(ctx context.Context, req UpdateOrderRequest) (*OrderResult, error) {
	status, err := validateOpenStatus(req.Status)
	if err != nil {
		return nil, err
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrInvalidCustomerID
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	current, err := store.GetOrderForUpdate(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if current.Status == database.OrderStatusCANCELLED {
		return nil, ErrOrderAlreadyCancelled
	}

	if customerID != current.CustomerID {
		if _, err := store.GetCustomer(ctx, customerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrCustomerNotFound
			}
			return nil, fmt.Errorf("get customer: %w", err)
		}
	}

	if err := restoreStock(ctx, store, req.OrderID); err != nil {
		return nil, err
	}
	if err := store.DeleteOrderDetailsByOrder(ctx, req.OrderID); err != nil {
		return nil, fmt.Errorf("delete order details: %w", err)
	}

	reserved, total, err := reserveItems(ctx, store, req.Items)
	if err != nil {
		return nil, err
	}

	order, err := store.UpdateOrder(ctx, database.UpdateOrderParams{
		CustomerID:   customerID,
		Status:       status,
		TotalAmount:  decimalToNumeric(total),
		InternalNote: textOrNull(req.InternalNote),
		CustomerNote: textOrNull(req.CustomerNote),
		ID:           req.OrderID,
	})
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	details, err := insertDetails(ctx, store, order.ID, reserved)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &OrderResult{Order: order, Details: details}, nil
}

// CancelOrder marks the order cancelled and returns its reserved stock.
// The line items are kept for the record.
func (s *OrderService) CancelOrder(ctx context.Context, req CancelOrderRequest) (*OrderResult, error) {
	if !isValidCancelReason(req.Reason) {
		return nil, ErrInvalidCancelReason
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	current, err := store.GetOrderForUpdate(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if current.Status == database.OrderStatusCANCELLED {
		return nil, ErrOrderAlreadyCancelled
	}

	if err := restoreStock(ctx, store, req.OrderID); err != nil {
		return nil, err
	}

	order, err := store.CancelOrder(ctx, database.CancelOrderParams{
		CancelReason: database.NullCancelReason{CancelReason: database.CancelReason(req.Reason), Valid: true},
		CancelNote:   textOrNull(req.Note),
		CancelledBy:  pgtype.UUID{Bytes: req.CancelledBy, Valid: true},
		ID:           req.OrderID,
	})
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	details, err := store.ListOrderDetailsByOrder(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &OrderResult{Order: order, Details: details}, nil
}

// DeleteOrder removes the order and its line items permanently.
// Reserved stock is NOT returned; cancel the order first if the units
// should go back to the warehouse.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	if _, err := store.GetOrderForUpdate(ctx, orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("get order: %w", err)
	}
	if err := store.DeleteOrderDetailsByOrder(ctx, orderID); err != nil {
		return fmt.Errorf("delete order details: %w", err)
	}
	if err := store.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return tx.Commit(ctx)
}

// reserveItems locks each product row, checks stock, decrements it, and
// returns the reserved lines plus the order total.
func reserveItems(ctx context.Context, store OrderStore, items []OrderItemRequest) ([]reservedItem, decimal.Decimal, error) {
	total := decimal.Zero
	seen := make(map[uuid.UUID]bool, len(items))
	var reserved []reservedItem

	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("item[%d]: %w", i, ErrInvalidQuantity)
		}
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("item[%d]: %w", i, ErrInvalidProductID)
		}
		if seen[productID] {
			return nil, decimal.Zero, fmt.Errorf("item[%d]: %w", i, ErrDuplicateProduct)
		}
		seen[productID] = true

		product, err := store.GetProductForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, decimal.Zero, fmt.Errorf("item[%d]: %w", i, ErrProductNotFound)
			}
			return nil, decimal.Zero, fmt.Errorf("item[%d]: get product: %w", i, err)
		}
		if !product.IsActive {
			return nil, decimal.Zero, fmt.Errorf("item[%d]: %w", i, ErrProductNotFound)
		}
		if product.Quantity < item.Quantity {
			return nil, decimal.Zero, &InsufficientStockError{
				ProductName: product.Name,
				Available:   product.Quantity,
				Requested:   item.Quantity,
			}
		}

		unitPrice := numericToDecimal(product.Price)
		if item.UnitPrice != "" {
			unitPrice, err = decimal.NewFromString(item.UnitPrice)
			if err != nil || unitPrice.IsNegative() {
				return nil, decimal.Zero, fmt.Errorf("item[%d]: %w", i, ErrInvalidUnitPrice)
			}
		}
		total = total.Add(unitPrice.Mul(decimal.NewFromInt32(item.Quantity)))

		if err := store.AdjustProductQuantity(ctx, database.AdjustProductQuantityParams{
			Delta: -item.Quantity,
			ID:    productID,
		}); err != nil {
			return nil, decimal.Zero, fmt.Errorf("item[%d]: adjust stock: %w", i, err)
		}

		reserved = append(reserved, reservedItem{
			productID: productID,
			quantity:  item.Quantity,
			unitPrice: unitPrice,
		})
	}
	return reserved, total, nil
}

// restoreStock returns the quantities held by the order's current details.
func restoreStock(ctx context.Context, store OrderStore, orderID uuid.UUID) error {
	details, err := store.ListOrderDetailsByOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("list order details: %w", err)
	}
	for _, d := range details {
		if err := store.AdjustProductQuantity(ctx, database.AdjustProductQuantityParams{
			Delta: d.Quantity,
			ID:    d.ProductID,
		}); err != nil {
			return fmt.Errorf("restore stock: %w", err)
		}
	}
	return nil
}

func insertDetails(ctx context.Context, store OrderStore, orderID uuid.UUID, reserved []reservedItem) ([]database.OrderDetail, error) {
	var details []database.OrderDetail
	for _, r := range reserved {
		detail, err := store.CreateOrderDetail(ctx, database.CreateOrderDetailParams{
			OrderID:   orderID,
			ProductID: r.productID,
			Quantity:  r.quantity,
			UnitPrice: decimalToNumeric(r.unitPrice),
		})
		if err != nil {
			return nil, fmt.Errorf("create order detail: %w", err)
		}
		details = append(details, detail)
	}
	return details, nil
}

// --- Helpers ---

// validateOpenStatus accepts the statuses an order may be created with or
// edited to. Cancellation has its own path.
func validateOpenStatus(s string) (database.OrderStatus, error) {
	switch s {
	case "", enum.OrderStatusPending:
		return database.OrderStatusPENDING, nil
	case enum.OrderStatusConfirmed:
		return database.OrderStatusCONFIRMED, nil
	}
	return "", ErrInvalidStatus
}

func isValidCancelReason(s string) bool {
	switch s {
	case enum.CancelReasonCustomerRequest, enum.CancelReasonOutOfStock,
		enum.CancelReasonPaymentFailed, enum.CancelReasonOther:
		return true
	}
	return false
}

func textOrNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
