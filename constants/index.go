package constants

// Store member roles
const (
	ROLE_OWNER    = "OWNER"
	ROLE_ADMIN    = "ADMIN"
	ROLE_CASHIER  = "CASHIER"
	ROLE_DELIVERY = "DELIVERY"
)

// Order types
const (
	ORDER_TYPE_IMMEDIATE = "IMMEDIATE"
	ORDER_TYPE_SCHEDULED = "SCHEDULED"
)

// Order statuses
const (
	STATUS_PENDING    = "PENDING"
	STATUS_CONFIRMED  = "CONFIRMED"
	STATUS_PREPARING  = "PREPARING"
	STATUS_READY      = "READY"
	STATUS_ON_THE_WAY = "ON_THE_WAY"
	STATUS_DELIVERED  = "DELIVERED"
	STATUS_CANCELLED  = "CANCELLED"
)

// Payment
const (
	PAYMENT_CASH     = "CASH"
	PAYMENT_TRANSFER = "TRANSFER"

	PAYMENT_STATUS_PENDING   = "PENDING"
	PAYMENT_STATUS_CONFIRMED = "CONFIRMED"
)

// Cancellation
const (
	CANCELLED_BY_CUSTOMER = "CUSTOMER"
	CANCELLED_BY_STORE    = "STORE"

	REFUND_PENDING      = "PENDING"
	REFUND_NOT_REQUIRED = "NOT_REQUIRED"
)

// Shared response messages
const (
	ERROR_INTERNAL_ERROR        = "Internal server error"
	ERROR_INPUT                 = "Invalid input"
	ERROR_PARSE_DATA_TO_LOCALS  = "Cannot read parsed input"
	DATA_INPUT_IS_NOT_NUMBER    = "Parameter must be a number"
	MISSING_LOGIN_INPUT         = "Email and password are required"
	INVALID_CREDENTIALS         = "Invalid email or password"
	EMAIL_ALREADY_REGISTERED    = "Email already registered"
	STORE_NOT_FOUND             = "Store not found"
	ORDER_NOT_FOUND             = "Order not found"
	NO_STORE_ACCESS             = "You do not have access to this store"
	NO_PERMISSION               = "You do not have permission for this action"
	OUT_OF_COVERAGE             = "Delivery address is outside our coverage area"
	PRODUCTS_UNAVAILABLE        = "Some products are not available"
	SLOT_NOT_AVAILABLE          = "Selected time slot is not available"
	SLOT_FULL                   = "Selected time slot is full"
	DATE_NOT_AVAILABLE          = "Selected date is not available"
	CANCEL_WINDOW_EXPIRED       = "Cancellation window has expired"
	PAYMENT_ALREADY_CONFIRMED   = "Payment is already confirmed"
	LAST_ACTIVE_ZONE            = "Cannot delete the last active delivery zone"
	LAST_ACTIVE_SLOT            = "Cannot delete the last active delivery slot"
	DATE_ALREADY_BLOCKED        = "This date is already blocked"
	INVITATION_NOT_FOUND        = "Invitation not found"
	INVITATION_USED             = "This invitation has already been used"
	INVITATION_EXPIRED          = "This invitation has expired"
	INVITATION_PENDING_CONFLICT = "There is already a pending invitation for this email"
)
