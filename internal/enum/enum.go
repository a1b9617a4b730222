package enum

// ── State machines (enum typed in DB) ──

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusCancelled = "CANCELLED"
)

const (
	CancelReasonCustomerRequest = "CUSTOMER_REQUEST"
	CancelReasonOutOfStock      = "OUT_OF_STOCK"
	CancelReasonPaymentFailed   = "PAYMENT_FAILED"
	CancelReasonOther           = "OTHER"
)

// ── Roles (enum typed in DB) ──

const (
	UserRoleDirector  = "DIRECTOR"
	UserRoleWarehouse = "WAREHOUSE"
	UserRoleSales     = "SALES"
)
